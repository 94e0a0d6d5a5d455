package belts

import "fmt"

// Status values reported by Solve.
const (
	// StatusOK marks a feasible routing.
	StatusOK = "ok"

	// StatusInfeasible marks an instance whose demand cannot be met; the
	// result then carries a minimum-cut certificate.
	StatusInfeasible = "infeasible"
)

// ErrNegativeQuantity is returned when a bound, cap or supply is below zero.
var ErrNegativeQuantity = fmt.Errorf("belts: %w", errNegativeQuantity)
var errNegativeQuantity = fmt.Errorf("negative quantity")

// ErrBoundsOrder is returned when an edge's lower bound exceeds its upper bound.
var ErrBoundsOrder = fmt.Errorf("belts: %w", errBoundsOrder)
var errBoundsOrder = fmt.Errorf("lower bound exceeds upper bound")

// ErrSelfLoop is returned when an edge starts and ends at the same node.
var ErrSelfLoop = fmt.Errorf("belts: %w", errSelfLoop)
var errSelfLoop = fmt.Errorf("self-loop edge")

// ErrUnknownNode is returned when an edge, cap, source or sink references a
// node absent from the declared node list.
var ErrUnknownNode = fmt.Errorf("belts: %w", errUnknownNode)
var errUnknownNode = fmt.Errorf("undeclared node referenced")

// ErrSinkIsSource is returned when the sink is also declared as a source.
var ErrSinkIsSource = fmt.Errorf("belts: %w", errSinkIsSource)
var errSinkIsSource = fmt.Errorf("sink is also a source")

// ErrReservedNodeID is returned when a node ID lands in the solver's
// reserved namespace: the synthetic terminal names or a `_IN`/`_OUT`
// suffix, which would collide with split-node vertices.
var ErrReservedNodeID = fmt.Errorf("belts: %w", errReservedNodeID)
var errReservedNodeID = fmt.Errorf("reserved node id")

// Edge is a directed belt segment. Flow on it must stay within [Lo, Hi];
// a nil Hi means the segment is unbounded above.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Lo   int64  `json:"lo,omitempty"`
	Hi   *int64 `json:"hi,omitempty"`
}

// Problem is one belts instance, decoded straight from the input JSON.
//
// Nodes is optional; when present it closes the ID universe and every
// reference outside it is rejected. NodeCaps limits per-node throughput.
// Sources/Sink declare exact supply endpoints; when both are absent,
// boundary nodes act as free endpoints (see package doc).
type Problem struct {
	Nodes    []string         `json:"nodes,omitempty"`
	Edges    []Edge           `json:"edges"`
	NodeCaps map[string]int64 `json:"node_caps,omitempty"`
	Sources  map[string]int64 `json:"sources,omitempty"`
	Sink     string           `json:"sink,omitempty"`
}

// EdgeFlow is the decoded flow on one original edge, lower bound included.
type EdgeFlow struct {
	From string `json:"from"`
	To   string `json:"to"`
	Flow int64  `json:"flow"`
}

// Result is the outcome of one belts solve.
//
// Status StatusOK populates MaxFlowPerMin, Flows and NodeUtilization;
// StatusInfeasible populates CutReachable and Deficit.
type Result struct {
	Status          string           `json:"status"`
	MaxFlowPerMin   int64            `json:"max_flow_per_min,omitempty"`
	Flows           []EdgeFlow       `json:"flows,omitempty"`
	NodeUtilization map[string]int64 `json:"node_utilization,omitempty"`
	CutReachable    []string         `json:"cut_reachable,omitempty"`
	Deficit         int64            `json:"deficit,omitempty"`
}
