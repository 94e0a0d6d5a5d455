package maxflow

import (
	"math"

	"github.com/rvasily/flowforge/netgraph"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow  : total flow value
//   - residual : residual-capacity network after flow
//   - err      : ErrSourceNotFound or ErrSinkNotFound
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	g *netgraph.Network,
	source, sink string,
	_ Options,
) (maxFlow int64, residual *netgraph.Network, err error) {
	// 1) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 2) Residual capacities, mutated in place
	capMap := buildCapMap(g)

	// 3) Find BFS augmenting paths until none remain
	for {
		path, bottle := bfsAugmentingPath(capMap, source, sink)
		if len(path) == 0 || bottle <= 0 {
			break
		}
		maxFlow += bottle

		// 4) Augment along the path
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			capMap[u][v] -= bottle
			capMap[v][u] += bottle
		}
	}

	return maxFlow, residualFromCapMap(capMap, g), nil
}

// bfsAugmentingPath finds the shortest (fewest-arc) path source→sink with
// positive residual capacity and returns it with its bottleneck capacity.
// Returns nil when no augmenting path exists.
func bfsAugmentingPath(
	capMap map[string]map[string]int64,
	source, sink string,
) ([]string, int64) {
	parent := make(map[string]string, len(capMap))
	bottle := map[string]int64{source: math.MaxInt64}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range sortedTargets(capMap[u]) {
			capUV := capMap[u][v]
			if visited[v] || capUV <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			b := bottle[u]
			if capUV < b {
				b = capUV
			}
			bottle[v] = b
			if v == sink {
				// Walk parents back to the source
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}

				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
