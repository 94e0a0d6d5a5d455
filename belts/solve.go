package belts

import (
	"fmt"
	"sort"

	"github.com/rvasily/flowforge/maxflow"
	"github.com/rvasily/flowforge/netgraph"
)

// Solve validates, reduces and solves one belts instance.
//
// Feasibility is decided by an exact integer comparison: the instance is
// satisfiable iff the max flow from S* to T* equals the total accrued
// demand. A feasible result carries decoded per-edge flows (lower bounds
// re-added) and the utilization of every capped node; an infeasible one
// carries the minimum-cut certificate and the unmet demand.
//
// A solver error (unknown algorithm, malformed network) is returned as an
// error, never conflated with domain infeasibility.
func Solve(p *Problem, opts maxflow.Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	t := transform(p)

	value, residual, err := maxflow.Solve(t.net, superSource, superSink, opts)
	if err != nil {
		return nil, fmt.Errorf("belts: max-flow solve: %w", err)
	}

	if value != t.totalDemand {
		return &Result{
			Status:       StatusInfeasible,
			CutReachable: cutCertificate(t, residual),
			Deficit:      t.totalDemand - value,
		}, nil
	}

	flows := maxflow.Flows(t.net, residual)

	// Re-add lower bounds. Parallel original edges share one reduced arc;
	// its flow is assigned greedily in declaration order, capped per edge,
	// so every decoded value stays within its own [lo, hi].
	remaining := make(map[maxflow.Arc]int64, len(flows))
	for arc, f := range flows {
		remaining[arc] = f
	}
	edgeFlows := make([]EdgeFlow, 0, len(t.edges))
	for _, me := range t.edges {
		arc := maxflow.Arc{From: me.mappedFrom, To: me.mappedTo}
		take := remaining[arc]
		if take > me.span {
			take = me.span
		}
		remaining[arc] -= take
		if total := me.lo + take; total > 0 {
			edgeFlows = append(edgeFlows, EdgeFlow{From: me.from, To: me.to, Flow: total})
		}
	}

	var util map[string]int64
	if len(t.split) > 0 {
		util = make(map[string]int64, len(t.split))
		for _, n := range t.split {
			util[n] = flows[maxflow.Arc{From: n + inSuffix, To: n + outSuffix}]
		}
	}

	return &Result{
		Status:          StatusOK,
		MaxFlowPerMin:   t.totalSupply,
		Flows:           edgeFlows,
		NodeUtilization: util,
	}, nil
}

// cutCertificate maps the residual-reachable vertex set back to original
// node IDs: split halves collapse to their node, synthetic vertices drop.
func cutCertificate(t *transformed, residual *netgraph.Network) []string {
	seen := make(map[string]struct{})
	for _, v := range maxflow.Reachable(residual, superSource) {
		id, ok := t.orig[v]
		if !ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
