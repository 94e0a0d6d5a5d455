// Package belts decides whether a belt network with per-edge throughput
// bounds, per-node throughput caps and optional supply/demand endpoints
// admits a feasible routing, and reconstructs that routing when it exists.
//
// The input is a directed graph whose edges carry [lo, hi] bounds and whose
// nodes may carry a throughput cap. The package reduces it to a plain
// max-flow instance in three ordered steps:
//
//  1. Node splitting: every capped node v becomes v_IN → v_OUT with the cap
//     as the connecting capacity (splitting precedes lower-bound handling so
//     that split arcs participate in the accounting).
//  2. Lower-bound elimination: an edge u→v with bounds [lo, hi] keeps
//     capacity hi−lo, while lo units are accounted as forced flow - the head
//     gains a balance surplus, the tail a deficit.
//  3. Super terminals: per-node balance surpluses become S*→n arcs, deficits
//     become n→T* arcs. The instance is feasible exactly when the max flow
//     from S* to T* saturates every terminal arc, i.e. equals the summed
//     deficit (total demand).
//
// Declared sources push an exact supply into the network and the declared
// sink absorbs the summed supply. When no sources and no sink are declared,
// boundary nodes (no incoming edges, or no outgoing edges) are treated as
// free endpoints: a synthetic hub with unbounded arcs relaxes conservation
// there, so a bare chain of lower-bounded belts is still satisfiable.
//
// All quantities are int64 and the feasibility comparison is exact; there is
// no floating tolerance anywhere in this package.
//
// On success Solve reports per-edge flows (lower bound included) and the
// utilized throughput of every capped node. On failure it reports the
// source side of a minimum cut - the set of original node IDs reachable
// from S* in the residual network - together with the unmet demand.
package belts
