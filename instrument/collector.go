// Package instrument exports search and spanning-tree statistics as
// Prometheus metrics.
//
// A Collector satisfies both dijkstra.Observer and prim_kruskal.Observer, so
// one value can be passed to WithObserver in either package:
//
//	reg := prometheus.NewRegistry()
//	c := instrument.NewCollector(reg)
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithObserver(c))
//
// Every metric is labelled by algorithm name.
package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

const namespace = "wgraph"

// Collector records Stats into counters and histograms registered on a
// caller-supplied Registerer.
type Collector struct {
	searches     *prometheus.CounterVec
	pops         *prometheus.CounterVec
	stale        *prometheus.CounterVec
	relaxations  *prometheus.CounterVec
	pushes       *prometheus.CounterVec
	popsPerQuery *prometheus.HistogramVec

	trees      *prometheus.CounterVec
	considered *prometheus.CounterVec
	rejected   *prometheus.CounterVec
}

var (
	_ dijkstra.Observer     = (*Collector)(nil)
	_ prim_kruskal.Observer = (*Collector)(nil)
)

// NewCollector creates the metrics and registers them on reg.
// Registering twice on the same Registerer panics, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	algo := []string{"algorithm"}

	return &Collector{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of completed priority-frontier searches.",
		}, algo),
		pops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_pops_total",
			Help:      "Total number of entries extracted from search frontiers.",
		}, algo),
		stale: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_stale_total",
			Help:      "Total number of superseded frontier entries skipped on extraction.",
		}, algo),
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_relaxations_total",
			Help:      "Total number of edges examined while expanding vertices.",
		}, algo),
		pushes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_pushes_total",
			Help:      "Total number of entries inserted into search frontiers.",
		}, algo),
		popsPerQuery: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_pops",
			Help:      "Frontier extractions per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, algo),
		trees: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spanning_trees_total",
			Help:      "Total number of spanning-tree runs, failed ones included.",
		}, algo),
		considered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spanning_tree_edges_considered_total",
			Help:      "Total number of edges examined by spanning-tree runs.",
		}, algo),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spanning_tree_edges_rejected_total",
			Help:      "Total number of examined edges that would have closed a cycle.",
		}, algo),
	}
}

// ObserveSearch implements dijkstra.Observer.
func (c *Collector) ObserveSearch(algorithm string, s dijkstra.Stats) {
	c.searches.WithLabelValues(algorithm).Inc()
	c.pops.WithLabelValues(algorithm).Add(float64(s.Pops))
	c.stale.WithLabelValues(algorithm).Add(float64(s.Stale))
	c.relaxations.WithLabelValues(algorithm).Add(float64(s.Relaxations))
	c.pushes.WithLabelValues(algorithm).Add(float64(s.Pushes))
	c.popsPerQuery.WithLabelValues(algorithm).Observe(float64(s.Pops))
}

// ObserveSpanningTree implements prim_kruskal.Observer.
func (c *Collector) ObserveSpanningTree(algorithm string, s prim_kruskal.Stats) {
	c.trees.WithLabelValues(algorithm).Inc()
	c.considered.WithLabelValues(algorithm).Add(float64(s.Considered))
	c.rejected.WithLabelValues(algorithm).Add(float64(s.Rejected))
}
