// Package netgraph provides the directed, integer-capacitated network
// container shared by the flow solver and the belts transformation layer.
//
// A Network is deliberately narrower than a general graph library:
//
//   - edges are always directed,
//   - capacities are non-negative int64 values (exact arithmetic, no
//     floating-point feasibility tolerances),
//   - parallel edges are aggregated on insertion,
//   - self-loops are rejected,
//   - vertex and neighbor enumeration is sorted, so every traversal over a
//     Network is reproducible across runs.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrNegativeCapacity  - edge capacity below zero.
//	ErrLoopNotAllowed    - edge from a vertex to itself.
package netgraph
