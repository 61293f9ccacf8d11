package instrument_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/instrument"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// counter returns the value of the counter family name with the given
// algorithm label, or 0 if absent.
func counter(t *testing.T, reg prometheus.Gatherer, name, algorithm string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label(m, "algorithm") == algorithm {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

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

func TestCollector_Search(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := instrument.NewCollector(reg)

	for i := 0; i < 2; i++ {
		_, err := dijkstra.Dijkstra(diamond(t), 0, dijkstra.WithObserver(c))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, counter(t, reg, "wgraph_searches_total", "dijkstra"))
	assert.Equal(t, 12.0, counter(t, reg, "wgraph_search_pops_total", "dijkstra"))
	assert.Equal(t, 4.0, counter(t, reg, "wgraph_search_stale_total", "dijkstra"))
	assert.Equal(t, 10.0, counter(t, reg, "wgraph_search_relaxations_total", "dijkstra"))
	assert.Equal(t, 12.0, counter(t, reg, "wgraph_search_pushes_total", "dijkstra"))
	assert.Zero(t, counter(t, reg, "wgraph_searches_total", "max-probability"))
}

func TestCollector_SpanningTree(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := instrument.NewCollector(reg)

	g, err := core.NewFromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
	})
	require.NoError(t, err)

	_, _, err = prim_kruskal.Kruskal(g, prim_kruskal.WithObserver(c))
	require.NoError(t, err)

	assert.Equal(t, 1.0, counter(t, reg, "wgraph_spanning_trees_total", prim_kruskal.MethodKruskal))
	assert.Equal(t, 3.0, counter(t, reg, "wgraph_spanning_tree_edges_considered_total", prim_kruskal.MethodKruskal))
	assert.Equal(t, 1.0, counter(t, reg, "wgraph_spanning_tree_edges_rejected_total", prim_kruskal.MethodKruskal))
}

func TestNewCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	instrument.NewCollector(reg)
	assert.Panics(t, func() { instrument.NewCollector(reg) })
}
