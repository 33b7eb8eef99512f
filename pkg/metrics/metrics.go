package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all Prometheus metrics exposed by the analytics engine.
type Registry struct {
	registry *prometheus.Registry

	// Graph metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	// Analysis metrics
	AnalysisRunsTotal     *prometheus.CounterVec
	MeasureDuration       *prometheus.HistogramVec
	MeasureFailuresTotal  *prometheus.CounterVec
	MeasureIterations     *prometheus.HistogramVec
	CommunitiesDetected   prometheus.Gauge
	PartitionModularity   prometheus.Gauge
	BetweennessSourcesRun prometheus.Counter
}

// NewRegistry creates a metrics registry backed by its own Prometheus
// registry, so multiple engines in one process never collide.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "hubrank_graph_nodes_total",
		Help: "Number of nodes in the graph under analysis",
	})

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "hubrank_graph_edges_total",
		Help: "Number of edges in the graph under analysis",
	})

	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubrank_analysis_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.MeasureDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hubrank_measure_duration_seconds",
			Help:    "Per-measure computation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"measure"},
	)

	r.MeasureFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubrank_measure_failures_total",
			Help: "Measures that returned no usable result",
		},
		[]string{"measure", "reason"},
	)

	r.MeasureIterations = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hubrank_measure_iterations",
			Help:    "Iterations used by power-iteration measures",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"measure"},
	)

	r.CommunitiesDetected = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "hubrank_communities_detected",
		Help: "Communities found by the most recent partition",
	})

	r.PartitionModularity = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "hubrank_partition_modularity",
		Help: "Modularity Q of the most recent partition",
	})

	r.BetweennessSourcesRun = promauto.With(r.registry).NewCounter(prometheus.CounterOpts{
		Name: "hubrank_betweenness_sources_total",
		Help: "Brandes source passes completed",
	})

	return r
}

// PrometheusRegistry exposes the underlying registry for HTTP handlers or
// push gateways owned by the host process.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordMeasure records one completed measure computation.
func (r *Registry) RecordMeasure(measure string, duration time.Duration) {
	r.MeasureDuration.WithLabelValues(measure).Observe(duration.Seconds())
}

// RecordMeasureFailure records a measure that produced no usable result.
func (r *Registry) RecordMeasureFailure(measure, reason string) {
	r.MeasureFailuresTotal.WithLabelValues(measure, reason).Inc()
}

// RecordIterations records the iteration count of a power-iteration measure.
func (r *Registry) RecordIterations(measure string, iterations int) {
	r.MeasureIterations.WithLabelValues(measure).Observe(float64(iterations))
}

// RecordRun records a completed analysis run.
func (r *Registry) RecordRun(status string) {
	r.AnalysisRunsTotal.WithLabelValues(status).Inc()
}

// UpdateGraphSize records the size of the graph under analysis.
func (r *Registry) UpdateGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// UpdatePartition records the outcome of community detection.
func (r *Registry) UpdatePartition(communities int, modularity float64) {
	r.CommunitiesDetected.Set(float64(communities))
	r.PartitionModularity.Set(modularity)
}
