package maxflow

import "fmt"

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("maxflow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("maxflow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// ErrUnknownAlgorithm is returned by Solve for an unrecognized algorithm name.
var ErrUnknownAlgorithm = fmt.Errorf("maxflow: %w", errUnknownAlgorithm)
var errUnknownAlgorithm = fmt.Errorf("unknown algorithm")

// Algorithm selects which max-flow routine Solve dispatches to.
type Algorithm string

const (
	// AlgorithmDinic selects Dinic (level graph + blocking flows).
	AlgorithmDinic Algorithm = "dinic"

	// AlgorithmEdmondsKarp selects Edmonds–Karp (BFS augmenting paths).
	AlgorithmEdmondsKarp Algorithm = "edmonds-karp"
)

// Arc identifies a directed edge of the original network.
type Arc struct {
	From, To string
}

// Options configures the max-flow algorithms.
//   - Algorithm: which solver Solve dispatches to (default Dinic).
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N
//     augmentations; 0 means only when the blocking flow is exhausted.
type Options struct {
	Algorithm            Algorithm
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Algorithm:            AlgorithmDinic,
		LevelRebuildInterval: 0,
	}
}
