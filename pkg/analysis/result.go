package analysis

import (
	"sort"
	"time"

	"github.com/interactome/hubrank/pkg/algorithms"
	"github.com/interactome/hubrank/pkg/graph"
)

// Measure names used in statuses, events, and metric labels.
const (
	MeasureDegree      = "degree_centrality"
	MeasureBetweenness = "betweenness_centrality"
	MeasureCloseness   = "closeness_centrality"
	MeasureEigenvector = "eigenvector_centrality"
	MeasurePageRank    = "pagerank"
	MeasureClustering  = "clustering_coefficient"
)

// MeasureStatus distinguishes a fully computed measure from a degraded one.
type MeasureStatus string

const (
	// StatusOK marks a measure computed to completion.
	StatusOK MeasureStatus = "ok"
	// StatusNonConverged marks a power-iteration measure that returned its
	// last iterate after exhausting the iteration budget.
	StatusNonConverged MeasureStatus = "non_converged"
	// StatusPartial marks a measure cancelled mid-computation; its values
	// cover only the work that finished.
	StatusPartial MeasureStatus = "partial"
	// StatusUnavailable marks a measure whose computation failed entirely;
	// its column holds sentinel zeros.
	StatusUnavailable MeasureStatus = "unavailable"
)

// Degraded reports whether the measure produced anything less than an
// exact, complete result.
func (s MeasureStatus) Degraded() bool {
	return s != StatusOK
}

// NodeMetrics is one row of the metrics table.
type NodeMetrics struct {
	NodeID                string  `json:"node_id"`
	Degree                int     `json:"degree"`
	DegreeCentrality      float64 `json:"degree_centrality"`
	BetweennessCentrality float64 `json:"betweenness_centrality"`
	ClosenessCentrality   float64 `json:"closeness_centrality"`
	EigenvectorCentrality float64 `json:"eigenvector_centrality"`
	PageRank              float64 `json:"pagerank"`
	ClusteringCoefficient float64 `json:"clustering_coefficient"`
	HubScore              float64 `json:"hub_score"`
}

// MetricsTable is the per-node metrics output, sorted descending by hub
// score with ties broken by ascending node id.
type MetricsTable []NodeMetrics

// sortRanked orders the table descending by hub score, ties ascending by
// node id, so rankings are deterministic.
func (t MetricsTable) sortRanked() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].HubScore != t[j].HubScore {
			return t[i].HubScore > t[j].HubScore
		}
		return t[i].NodeID < t[j].NodeID
	})
}

// Result is the full outcome of one analysis run. Statuses let downstream
// consumers distinguish "computed" from "approximate/partial" per measure.
type Result struct {
	RunID    string                   `json:"run_id"`
	Table    MetricsTable             `json:"table"`
	Statuses map[string]MeasureStatus `json:"statuses"`
	Warnings []string                 `json:"warnings,omitempty"`

	GraphStats       graph.Statistics `json:"graph_stats"`
	ComponentCount   int              `json:"component_count"`
	LargestComponent int              `json:"largest_component"`

	// Per-measure leaderboards, sized by the configured top-N.
	TopByDegree      []algorithms.RankedNode `json:"top_by_degree,omitempty"`
	TopByBetweenness []algorithms.RankedNode `json:"top_by_betweenness,omitempty"`
	TopByPageRank    []algorithms.RankedNode `json:"top_by_pagerank,omitempty"`

	// Descriptive statistics only; TopHubs never filters by them.
	HubScoreP95 float64 `json:"hub_score_p95"`
	DegreeP95   float64 `json:"degree_p95"`

	Elapsed time.Duration `json:"elapsed"`
}

// Degraded reports whether any measure fell short of an exact, complete
// result.
func (r *Result) Degraded() bool {
	for _, status := range r.Statuses {
		if status.Degraded() {
			return true
		}
	}
	return false
}

// TopHubs returns the first n rows of the ranked metrics table. It applies
// no percentile filtering.
func TopHubs(table MetricsTable, n int) MetricsTable {
	if n < 0 {
		n = 0
	}
	if n > len(table) {
		n = len(table)
	}
	top := make(MetricsTable, n)
	copy(top, table[:n])
	return top
}

// quantile computes the q-quantile (0..1) of values with linear
// interpolation between order statistics.
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(pos)
	frac := pos - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
