package maxflow

import (
	"math"

	"github.com/rvasily/flowforge/netgraph"
)

// Dinic computes the maximum flow from `source` to `sink` in the directed,
// capacitated network `g` using Dinic's algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a *netgraph.Network of remaining capacities, including the
//     reverse arcs created by pushed flow
//   - err      : ErrSourceNotFound or ErrSinkNotFound
//
// Steps:
//  1. Validate that `source` and `sink` exist in `g` (O(1)).
//  2. Build the initial capacity map via buildCapMap (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. BFS to build the level graph: distance from source per vertex (O(V + E)).
//     b. Build adjacency slices `next` restricted to level+1 arcs (O(E)).
//     c. DFS-based blocking-flow pushes until none remains, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//  4. Construct the final residual network via residualFromCapMap (O(V + E_res)).
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E) for capMap and the auxiliary level/next/iter maps.
func Dinic(
	g *netgraph.Network,
	source, sink string,
	opts Options,
) (maxFlow int64, residual *netgraph.Network, err error) {
	// 1) Validate presence of source and sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 2) Build initial capacity map: capMap[u][v] = capacity from u→v
	capMap := buildCapMap(g)

	// 3) Main loop: level graph + blocking flows
	augmentCount := 0
	for {
		// 3a) BFS to compute levels
		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range sortedTargets(capMap[u]) {
				if capMap[u][v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// 3b) If sink unreachable in level graph, we're done
		if level[sink] < 0 {
			break
		}

		// 3c) Build level-graph adjacency: next[u] = neighbors v at level+1
		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for _, v := range sortedTargets(nbrs) {
				if nbrs[v] > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// 3d) DFS-based blocking flow
		iter := make(map[string]int, len(next))
		for {
			pushed := dfsDinicPush(capMap, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 4) Construct the final residual network from capMap
	residual = residualFromCapMap(capMap, g)

	return maxFlow, residual, nil
}

// dfsDinicPush recursively pushes flow along the level graph.
// It updates capMap in place and returns the amount actually sent.
func dfsDinicPush(
	capMap map[string]map[string]int64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	// Reaching the sink means the whole available amount goes through
	if u == sink {
		return available
	}
	// Iterate over level-graph neighbors, resuming from iter[u]
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := dfsDinicPush(capMap, next, iter, v, sink, send)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed

			return pushed
		}
	}

	return 0
}
