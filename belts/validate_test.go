package belts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rvasily/flowforge/belts"
)

func validProblem() *belts.Problem {
	return &belts.Problem{
		Nodes: []string{"s1", "a", "k1"},
		Edges: []belts.Edge{
			{From: "s1", To: "a", Hi: hi(1000)},
			{From: "a", To: "k1", Lo: 50, Hi: hi(1000)},
		},
		NodeCaps: map[string]int64{"a": 500},
		Sources:  map[string]int64{"s1": 400},
		Sink:     "k1",
	}
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, validProblem().Validate())

	// An empty node list disables reference closure entirely.
	p := &belts.Problem{
		Edges: []belts.Edge{{From: "x", To: "y", Lo: 1, Hi: hi(2)}},
	}
	require.NoError(t, p.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *belts.Problem)
		want   error
	}{
		{
			name:   "self loop",
			mutate: func(p *belts.Problem) { p.Edges[0].To = "s1" },
			want:   belts.ErrSelfLoop,
		},
		{
			name:   "edge endpoint off the node list",
			mutate: func(p *belts.Problem) { p.Edges[1].To = "ghost" },
			want:   belts.ErrUnknownNode,
		},
		{
			name:   "negative lower bound",
			mutate: func(p *belts.Problem) { p.Edges[1].Lo = -1 },
			want:   belts.ErrNegativeQuantity,
		},
		{
			name:   "negative upper bound",
			mutate: func(p *belts.Problem) { p.Edges[0].Hi = hi(-5) },
			want:   belts.ErrNegativeQuantity,
		},
		{
			name:   "lo above hi",
			mutate: func(p *belts.Problem) { p.Edges[1].Lo = 2000 },
			want:   belts.ErrBoundsOrder,
		},
		{
			name:   "negative node cap",
			mutate: func(p *belts.Problem) { p.NodeCaps["a"] = -1 },
			want:   belts.ErrNegativeQuantity,
		},
		{
			name:   "node cap on unknown node",
			mutate: func(p *belts.Problem) { p.NodeCaps["ghost"] = 10 },
			want:   belts.ErrUnknownNode,
		},
		{
			name:   "negative supply",
			mutate: func(p *belts.Problem) { p.Sources["s1"] = -400 },
			want:   belts.ErrNegativeQuantity,
		},
		{
			name:   "unknown source",
			mutate: func(p *belts.Problem) { p.Sources["ghost"] = 1 },
			want:   belts.ErrUnknownNode,
		},
		{
			name:   "sink doubles as source",
			mutate: func(p *belts.Problem) { p.Sources["k1"] = 1 },
			want:   belts.ErrSinkIsSource,
		},
		{
			name:   "unknown sink",
			mutate: func(p *belts.Problem) { p.Sink = "ghost" },
			want:   belts.ErrUnknownNode,
		},
		{
			name:   "terminal name as node id",
			mutate: func(p *belts.Problem) { p.Nodes[1] = "_SUPER_SOURCE_" },
			want:   belts.ErrReservedNodeID,
		},
		{
			name:   "split suffix on node id",
			mutate: func(p *belts.Problem) { p.Nodes[1] = "a_IN" },
			want:   belts.ErrReservedNodeID,
		},
		{
			name: "split suffix on edge endpoint",
			mutate: func(p *belts.Problem) {
				p.Nodes = nil
				p.Edges[0].To = "a_OUT"
			},
			want: belts.ErrReservedNodeID,
		},
		{
			name: "hub name as node cap key",
			mutate: func(p *belts.Problem) {
				p.Nodes = nil
				p.NodeCaps["_FREE_"] = 10
			},
			want: belts.ErrReservedNodeID,
		},
		{
			name: "terminal name as source",
			mutate: func(p *belts.Problem) {
				p.Nodes = nil
				p.Sources["_SUPER_SINK_"] = 1
			},
			want: belts.ErrReservedNodeID,
		},
		{
			name: "split suffix on sink",
			mutate: func(p *belts.Problem) {
				p.Nodes = nil
				p.Sink = "k1_IN"
			},
			want: belts.ErrReservedNodeID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProblem()
			tc.mutate(p)
			require.ErrorIs(t, p.Validate(), tc.want)
		})
	}
}
