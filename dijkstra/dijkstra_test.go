// Package dijkstra_test contains unit tests for the priority-frontier searches.
// These tests validate the engine under various configurations, including
// directed and undirected graphs, MaxDistance, InfEdgeThreshold, path
// reconstruction, and edge cases such as zero weights and self-loops.
package dijkstra_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/internal/fixture"
)

// diamond returns the directed graph 0→1(4), 0→2(1), 2→1(2), 1→3(1), 2→3(5).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewFromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 5},
	}, core.WithDirected(true))
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(2)
	_, err := dijkstra.Dijkstra(g, 5)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithTarget(9))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 1, -5)) // unreachable from 0, still rejected
	_, err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadMetric(t *testing.T) {
	_, err := dijkstra.Search(core.NewGraph(1), 0, dijkstra.Metric[float64]{Name: "broken"})
	assert.ErrorIs(t, err, dijkstra.ErrBadMetric)
}

func TestOptionPanics(t *testing.T) {
	opts := dijkstra.DefaultOptions()
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&opts) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN())(&opts) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&opts) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0)(&opts) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Diamond(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4}, res.Dist)
	assert.Nil(t, res.Prev, "prev must be nil without WithReturnPath")

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_StaleEntriesCounted(t *testing.T) {
	// Vertex 1 is pushed at 4 then improved to 3; vertex 3 at 6 then 4.
	// Both superseded entries are popped later and skipped.
	res, err := dijkstra.Dijkstra(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Stats{Pops: 6, Stale: 2, Relaxations: 5, Pushes: 6}, res.Stats)
}

func TestShortestPath(t *testing.T) {
	path, cost, err := dijkstra.ShortestPath(diamond(t), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
	assert.Equal(t, 4.0, cost)

	// Source equals target.
	path, cost, err = dijkstra.ShortestPath(diamond(t), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)
	assert.Zero(t, cost)

	// Edges are one-way.
	_, cost, err = dijkstra.ShortestPath(diamond(t), 3, 0)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.True(t, math.IsInf(cost, 1))
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	full, err := dijkstra.Dijkstra(diamond(t), 0)
	require.NoError(t, err)
	early, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithTarget(2))
	require.NoError(t, err)

	assert.Equal(t, 1.0, early.Dist[2])
	assert.Less(t, early.Stats.Pops, full.Stats.Pops)
}

func TestDijkstra_ZeroWeightCycleTerminates(t *testing.T) {
	g := core.NewGraph(3, core.WithLoops())
	require.NoError(t, g.AddEdge(0, 0, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, res.Dist)
	assert.Equal(t, 3, res.Stats.Pushes, "equal values never re-enter the frontier")
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[1])
	assert.True(t, math.IsInf(res.Dist[3], 1))
	assert.False(t, res.Reached(3))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Edges of weight ≥ 4 become walls: 0→1 and 2→3 vanish, routes survive via 2.
	res, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4}, res.Dist)

	res, err = dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[2])
	assert.False(t, res.Reached(1))
	assert.False(t, res.Reached(3))
}

func TestDijkstra_PathReconstruction(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 2, 0, 1}, res.Prev)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, path)
}

func TestNetworkDelay(t *testing.T) {
	// times = [[2,1,1],[2,3,1],[3,4,1]], n = 4, k = 2 (shifted to 0-based).
	g, err := core.NewFromEdges(4, []core.Edge{
		{From: 1, To: 0, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	delay, err := dijkstra.NetworkDelay(g, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, delay)

	_, err = dijkstra.NetworkDelay(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestSearch_HopCount(t *testing.T) {
	res, err := dijkstra.Search(diamond(t), 0, dijkstra.HopCount(), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2}, res.Dist)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
}

type recordingObserver struct {
	algorithms []string
	stats      []dijkstra.Stats
}

func (r *recordingObserver) ObserveSearch(algorithm string, s dijkstra.Stats) {
	r.algorithms = append(r.algorithms, algorithm)
	r.stats = append(r.stats, s)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	res, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithObserver(obs))
	require.NoError(t, err)
	_, _, err = dijkstra.MaxProbability(core.NewGraph(1), 0, 0, dijkstra.WithObserver(obs))
	require.NoError(t, err)

	assert.Equal(t, []string{"dijkstra", "max-probability"}, obs.algorithms)
	assert.Equal(t, res.Stats, obs.stats[0])
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG`)
	assert.Contains(t, out, `msg="search finished"`)
	assert.Contains(t, out, "algorithm=dijkstra pops=6 stale=2 relaxations=5 pushes=6")

	// Debug records are dropped by an Info-level handler.
	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// ------------------------------------------------------------------------
// 3. Fixture-driven scenarios
// ------------------------------------------------------------------------

func TestDijkstra_Fixtures(t *testing.T) {
	suite, err := fixture.Load("testdata/shortest_paths.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, suite.Scenarios)

	for _, sc := range suite.Scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			g, err := sc.Graph()
			require.NoError(t, err)

			res, err := dijkstra.Dijkstra(g, sc.Source)
			require.NoError(t, err)
			assert.Equal(t, sc.Want.Dist, res.Dist)

			if sc.Target == nil {
				return
			}
			path, cost, err := dijkstra.ShortestPath(g, sc.Source, *sc.Target)
			if sc.Want.Unreachable {
				assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sc.Want.Path, path)
			assert.Equal(t, sc.Want.Dist[*sc.Target], cost)
		})
	}
}
