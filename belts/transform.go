package belts

import (
	"sort"

	"github.com/rvasily/flowforge/netgraph"
)

// Synthetic vertex names. They never leak into results: cut extraction maps
// every mapped vertex back to its original node ID and drops terminals.
const (
	superSource = "_SUPER_SOURCE_"
	superSink   = "_SUPER_SINK_"
	freeHub     = "_FREE_"
	inSuffix    = "_IN"
	outSuffix   = "_OUT"
)

// unboundedCap substitutes for a missing upper bound. Kept far below
// MaxInt64 so residual bookkeeping can never overflow.
const unboundedCap = int64(1) << 40

// mappedEdge records how one original edge landed in the reduced network.
type mappedEdge struct {
	from, to             string
	mappedFrom, mappedTo string
	lo                   int64
	span                 int64 // reduced capacity, hi − lo
}

// transformed is the solver-ready reduction of one Problem. It lives for a
// single solve and is discarded once the result is decoded.
type transformed struct {
	net         *netgraph.Network
	edges       []mappedEdge
	split       []string          // original IDs of split nodes, ascending
	orig        map[string]string // mapped vertex → original node ID
	totalSupply int64
	totalDemand int64
}

// transform reduces a validated Problem to a plain max-flow instance.
// Steps run in a fixed order: node splitting, then lower-bound elimination,
// then super-terminal wiring - split arcs must exist before balances accrue.
func transform(p *Problem) *transformed {
	t := &transformed{
		net:  netgraph.NewNetwork(),
		orig: make(map[string]string),
	}

	// Universe of original nodes: declared list plus everything referenced.
	nodeSet := make(map[string]struct{})
	for _, n := range p.Nodes {
		nodeSet[n] = struct{}{}
	}
	for _, e := range p.Edges {
		nodeSet[e.From] = struct{}{}
		nodeSet[e.To] = struct{}{}
	}
	for n := range p.Sources {
		nodeSet[n] = struct{}{}
	}
	if p.Sink != "" {
		nodeSet[p.Sink] = struct{}{}
	}

	// Without declared endpoints, boundary nodes act as free supply/demand
	// points: conservation is relaxed there through the hub below.
	derived := len(p.Sources) == 0 && p.Sink == ""
	hasIn := make(map[string]bool)
	hasOut := make(map[string]bool)
	for _, e := range p.Edges {
		hasOut[e.From] = true
		hasIn[e.To] = true
	}

	// 1) Node splitting. Declared supply endpoints and the sink keep their
	// single vertex; a cap there would not constrain a through-flow anyway.
	nodes := make([]string, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	in := make(map[string]string, len(nodes))
	out := make(map[string]string, len(nodes))
	for _, n := range nodes {
		capN, capped := p.NodeCaps[n]
		_, isSource := p.Sources[n]
		if capped && !isSource && n != p.Sink {
			in[n], out[n] = n+inSuffix, n+outSuffix
			_ = t.net.AddEdge(in[n], out[n], capN)
			t.split = append(t.split, n)
		} else {
			in[n], out[n] = n, n
			_ = t.net.AddVertex(n)
		}
		t.orig[in[n]] = n
		t.orig[out[n]] = n
	}

	// 2) Lower-bound elimination plus supply/demand accounting.
	balance := make(map[string]int64)

	srcNames := make([]string, 0, len(p.Sources))
	for n := range p.Sources {
		srcNames = append(srcNames, n)
	}
	sort.Strings(srcNames)
	for _, n := range srcNames {
		balance[in[n]] += p.Sources[n]
		t.totalSupply += p.Sources[n]
	}
	if p.Sink != "" {
		balance[out[p.Sink]] -= t.totalSupply
	}

	for _, e := range p.Edges {
		span := unboundedCap
		if e.Hi != nil {
			span = *e.Hi - e.Lo
		}
		mf, mt := out[e.From], in[e.To]
		_ = t.net.AddEdge(mf, mt, span)
		balance[mf] -= e.Lo
		balance[mt] += e.Lo
		t.edges = append(t.edges, mappedEdge{
			from: e.From, to: e.To,
			mappedFrom: mf, mappedTo: mt,
			lo: e.Lo, span: span,
		})
	}

	if derived {
		hub := false
		for _, n := range nodes {
			if !hasIn[n] {
				_ = t.net.AddEdge(freeHub, in[n], unboundedCap)
				hub = true
			}
			if !hasOut[n] {
				_ = t.net.AddEdge(out[n], freeHub, unboundedCap)
				hub = true
			}
		}
		if hub {
			t.orig[freeHub] = ""
		}
	}

	// 3) Super terminals: surpluses feed from S*, deficits drain into T*.
	_ = t.net.AddVertex(superSource)
	_ = t.net.AddVertex(superSink)
	balanced := make([]string, 0, len(balance))
	for n := range balance {
		balanced = append(balanced, n)
	}
	sort.Strings(balanced)
	for _, n := range balanced {
		switch bal := balance[n]; {
		case bal > 0:
			_ = t.net.AddEdge(superSource, n, bal)
		case bal < 0:
			_ = t.net.AddEdge(n, superSink, -bal)
			t.totalDemand += -bal
		}
	}

	return t
}
