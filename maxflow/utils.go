package maxflow

import (
	"sort"

	"github.com/rvasily/flowforge/netgraph"
)

// buildCapMap constructs a nested map of residual capacities from `g`:
// capMap[u][v] = capacity of arc u→v. Every vertex gets an inner map so the
// algorithms can create reverse arcs without nil checks.
//
// Complexity: O(V + E).
func buildCapMap(g *netgraph.Network) map[string]map[string]int64 {
	vertices := g.Vertices()
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]int64)
	}
	for _, u := range vertices {
		// Neighbors never fails for vertices reported by Vertices.
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			capMap[u][v] = g.Capacity(u, v)
		}
	}

	return capMap
}

// residualFromCapMap builds a fresh residual Network from capMap, keeping
// the full vertex set of the original network `g` (saturated vertices must
// stay addressable for cut extraction).
//
// Complexity: O(V + E_res).
func residualFromCapMap(capMap map[string]map[string]int64, g *netgraph.Network) *netgraph.Network {
	residual := g.CloneEmpty()
	for u, inner := range capMap {
		for v, capUV := range inner {
			if capUV > 0 {
				// Cannot fail: endpoints non-empty, u != v, capacity positive.
				_ = residual.AddEdge(u, v, capUV)
			}
		}
	}

	return residual
}

// Flows reconstructs the per-arc flow of the original network `g` from the
// residual network returned by a solver: flow(u→v) is the consumed part of
// the original capacity, clamped at zero when anti-parallel arcs cancel.
//
// Complexity: O(V + E).
func Flows(g, residual *netgraph.Network) map[Arc]int64 {
	out := make(map[Arc]int64)
	for _, u := range g.Vertices() {
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			f := g.Capacity(u, v) - residual.Capacity(u, v)
			if f < 0 {
				f = 0
			}
			out[Arc{From: u, To: v}] = f
		}
	}

	return out
}

// Reachable returns, in ascending order, the vertices reachable from
// `source` over positive residual capacity. After a max-flow run this is the
// source side of a minimum cut and serves as an infeasibility certificate.
//
// Complexity: O(V + E_res) plus O(k log k) for the final sort.
func Reachable(residual *netgraph.Network, source string) []string {
	if !residual.HasVertex(source) {
		return nil
	}
	visited := map[string]bool{source: true}
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		nbrs, _ := residual.Neighbors(u)
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	out := make([]string, 0, len(visited))
	for v := range visited {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// sortedTargets returns the keys of a residual adjacency row in ascending
// order. Traversals use it so that augmenting-path selection, and therefore
// the decoded flow assignment, is reproducible across runs.
func sortedTargets(row map[string]int64) []string {
	out := make([]string, 0, len(row))
	for v := range row {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Solve runs the algorithm selected by opts.Algorithm. An empty Algorithm
// falls back to Dinic.
func Solve(
	g *netgraph.Network,
	source, sink string,
	opts Options,
) (maxFlow int64, residual *netgraph.Network, err error) {
	switch opts.Algorithm {
	case AlgorithmDinic, "":
		return Dinic(g, source, sink, opts)
	case AlgorithmEdmondsKarp:
		return EdmondsKarp(g, source, sink, opts)
	default:
		return 0, nil, ErrUnknownAlgorithm
	}
}
