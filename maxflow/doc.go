// Package maxflow computes maximum flows on netgraph.Network instances and
// exposes the residual-graph views needed to decode per-arc flows and to
// extract the source side of a minimum cut.
//
// Two algorithms are provided:
//
//   - EdmondsKarp - BFS shortest augmenting paths. Time O(V·E²). Simple,
//     polynomial, a good default for small networks.
//   - Dinic - level graph + blocking flows. Time O(E·√V) on unit-capacity
//     networks and strong in practice on dense graphs.
//
// Solve dispatches on Options.Algorithm so callers can stay agnostic.
//
// Every entry point shares the same shape:
//
//	value, residual, err := maxflow.Dinic(g, source, sink, maxflow.DefaultOptions())
//
// The residual Network holds remaining forward capacities plus the reverse
// arcs created by pushed flow. Two helpers interpret it:
//
//	Flows(g, residual)     per-arc flow of the original network
//	Reachable(residual, s) vertices reachable from s over positive residual
//	                       capacity - the source side of a minimum cut
//
// Capacities are int64 and all arithmetic is exact; there is no epsilon
// anywhere in the feasibility logic.
//
// Errors:
//
//	ErrSourceNotFound - the source vertex is missing from the input network.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrUnknownAlgorithm - Options.Algorithm names no known solver.
package maxflow
