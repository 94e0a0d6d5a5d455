package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rvasily/flowforge/maxflow"
	"github.com/rvasily/flowforge/netgraph"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

// TestSingleEdge verifies that a single edge yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleEdge() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("A", "B", 7))

	mf, res, err := maxflow.Dinic(g, "A", "B", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
	require.False(s.T(), res.HasEdge("A", "B"), "forward edge should be saturated")
	require.True(s.T(), res.HasEdge("B", "A"), "reverse edge should carry the flow")
}

// TestMultiPath verifies max flow on two partially joined paths.
func (s *DinicSuite) TestMultiPath() {
	g := netgraph.NewNetwork()
	// Path1: A→B (5)
	require.NoError(s.T(), g.AddEdge("A", "B", 5))
	// Path2: A→C (4) → C→B (3)
	require.NoError(s.T(), g.AddEdge("A", "C", 4))
	require.NoError(s.T(), g.AddEdge("C", "B", 3))

	mf, _, err := maxflow.Dinic(g, "A", "B", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf) // 5 + 3
}

// TestBottleneckDiamond verifies flow through a shared middle edge.
func (s *DinicSuite) TestBottleneckDiamond() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("S", "A", 10))
	require.NoError(s.T(), g.AddEdge("S", "B", 10))
	require.NoError(s.T(), g.AddEdge("A", "M", 10))
	require.NoError(s.T(), g.AddEdge("B", "M", 10))
	require.NoError(s.T(), g.AddEdge("M", "T", 7))

	mf, _, err := maxflow.Dinic(g, "S", "T", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestMissingTerminals checks the sentinel errors for absent vertices.
func (s *DinicSuite) TestMissingTerminals() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("A", "B", 1))

	_, _, err := maxflow.Dinic(g, "X", "B", maxflow.DefaultOptions())
	require.ErrorIs(s.T(), err, maxflow.ErrSourceNotFound)
	_, _, err = maxflow.Dinic(g, "A", "Y", maxflow.DefaultOptions())
	require.ErrorIs(s.T(), err, maxflow.ErrSinkNotFound)
}

// TestDisconnectedSink yields zero flow and a source-side cut.
func (s *DinicSuite) TestDisconnectedSink() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("A", "B", 4))
	require.NoError(s.T(), g.AddVertex("T"))

	mf, res, err := maxflow.Dinic(g, "A", "T", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
	require.Equal(s.T(), []string{"A", "B"}, maxflow.Reachable(res, "A"))
}

// TestLevelRebuildIntervalStable ensures that the rebuild knob does not
// change the resulting flow value.
func (s *DinicSuite) TestLevelRebuildIntervalStable() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("S", "A", 3))
	require.NoError(s.T(), g.AddEdge("S", "B", 2))
	require.NoError(s.T(), g.AddEdge("A", "T", 2))
	require.NoError(s.T(), g.AddEdge("B", "T", 3))
	require.NoError(s.T(), g.AddEdge("A", "B", 1))

	base, _, err := maxflow.Dinic(g, "S", "T", maxflow.DefaultOptions())
	require.NoError(s.T(), err)

	opts := maxflow.DefaultOptions()
	opts.LevelRebuildInterval = 1
	rebuilt, _, err := maxflow.Dinic(g, "S", "T", opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), base, rebuilt)
}

// TestFlowsDecode checks per-arc flow reconstruction from the residual.
func (s *DinicSuite) TestFlowsDecode() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("S", "A", 5))
	require.NoError(s.T(), g.AddEdge("A", "T", 3))

	mf, res, err := maxflow.Dinic(g, "S", "T", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)

	flows := maxflow.Flows(g, res)
	require.Equal(s.T(), int64(3), flows[maxflow.Arc{From: "S", To: "A"}])
	require.Equal(s.T(), int64(3), flows[maxflow.Arc{From: "A", To: "T"}])
}

// TestCutCapacityMatchesFlow verifies that the cut crossing capacity equals
// the max-flow value (min-cut witness validity).
func (s *DinicSuite) TestCutCapacityMatchesFlow() {
	g := netgraph.NewNetwork()
	require.NoError(s.T(), g.AddEdge("S", "A", 4))
	require.NoError(s.T(), g.AddEdge("S", "B", 3))
	require.NoError(s.T(), g.AddEdge("A", "T", 2))
	require.NoError(s.T(), g.AddEdge("B", "T", 5))

	mf, res, err := maxflow.Dinic(g, "S", "T", maxflow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf) // 2 via A, 3 via B

	reach := maxflow.Reachable(res, "S")
	inCut := make(map[string]bool, len(reach))
	for _, v := range reach {
		inCut[v] = true
	}
	var crossing int64
	for _, u := range g.Vertices() {
		if !inCut[u] {
			continue
		}
		nbrs, nerr := g.Neighbors(u)
		require.NoError(s.T(), nerr)
		for _, v := range nbrs {
			if !inCut[v] {
				crossing += g.Capacity(u, v)
			}
		}
	}
	require.Equal(s.T(), mf, crossing)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
