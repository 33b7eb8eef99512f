package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/interactome/hubrank/pkg/algorithms"
	"github.com/interactome/hubrank/pkg/config"
	"github.com/interactome/hubrank/pkg/graph"
	"github.com/interactome/hubrank/pkg/logging"
	"github.com/interactome/hubrank/pkg/metrics"
)

// Analyzer runs the full measure suite over an immutable graph snapshot.
// The graph is never mutated, so every measure reads it concurrently
// without locking.
type Analyzer struct {
	cfg      config.AnalysisConfig
	logger   logging.Logger
	observer Observer
	registry *metrics.Registry
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger attaches a structured logger.
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// WithObserver attaches a progress observer.
func WithObserver(observer Observer) Option {
	return func(a *Analyzer) { a.observer = observer }
}

// WithMetrics attaches a Prometheus metrics registry.
func WithMetrics(registry *metrics.Registry) Option {
	return func(a *Analyzer) { a.registry = registry }
}

// New creates an Analyzer after validating the configuration.
func New(cfg config.AnalysisConfig, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:      cfg,
		logger:   logging.NewNopLogger(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// ComputeAllMetrics computes every per-node measure over the graph and
// aggregates the composite hub score. The independent measures run
// concurrently; a failure inside one measure never aborts the others, its
// column is zero-filled and flagged StatusUnavailable instead. An empty
// graph produces an empty table and no error.
func (a *Analyzer) ComputeAllMetrics(ctx context.Context, g *graph.Graph) (*Result, error) {
	start := time.Now()

	result := &Result{
		RunID:      uuid.NewString(),
		Statuses:   make(map[string]MeasureStatus),
		GraphStats: g.GetStatistics(),
	}

	logger := a.logger.With(logging.RunID(result.RunID))
	logger.Info("analysis run started",
		logging.Nodes(result.GraphStats.NodeCount),
		logging.Edges(result.GraphStats.EdgeCount))

	if a.registry != nil {
		a.registry.UpdateGraphSize(result.GraphStats.NodeCount, result.GraphStats.EdgeCount)
	}

	components := algorithms.ConnectedComponents(g)
	result.ComponentCount = len(components)
	result.LargestComponent = algorithms.LargestComponent(components)

	var (
		mu          sync.Mutex
		degreeCent  map[string]float64
		closeness   map[string]float64
		clustering  map[string]float64
		betweenness *algorithms.BetweennessResult
		eigenvector *algorithms.SpectralResult
		pagerank    *algorithms.PageRankResult
	)

	group := new(errgroup.Group)

	group.Go(a.runMeasure(&mu, result, MeasureDegree, func() MeasureStatus {
		degreeCent = algorithms.DegreeCentrality(g)
		return StatusOK
	}))

	group.Go(a.runMeasure(&mu, result, MeasureClustering, func() MeasureStatus {
		clustering = algorithms.ClusteringCoefficients(g)
		return StatusOK
	}))

	group.Go(a.runMeasure(&mu, result, MeasureCloseness, func() MeasureStatus {
		closeness = algorithms.ClosenessCentrality(g)
		return StatusOK
	}))

	group.Go(a.runMeasure(&mu, result, MeasureBetweenness, func() MeasureStatus {
		opts := algorithms.BetweennessOptions{
			Sampled:    a.cfg.Betweenness.Sampled,
			SampleSize: a.cfg.Betweenness.SampleSize,
			Seed:       a.cfg.Betweenness.Seed,
			Workers:    a.cfg.Betweenness.Workers,
		}
		res, err := algorithms.BetweennessCentrality(ctx, g, opts)
		if err != nil {
			a.warn(&mu, result, MeasureBetweenness, err.Error())
			return StatusUnavailable
		}
		betweenness = res
		if a.registry != nil {
			a.registry.BetweennessSourcesRun.Add(float64(res.SourcesDone))
		}
		if !res.Complete {
			a.warn(&mu, result, MeasureBetweenness,
				fmt.Sprintf("betweenness cancelled after %d of %d sources", res.SourcesDone, res.SourcesTotal))
			return StatusPartial
		}
		return StatusOK
	}))

	group.Go(a.runMeasure(&mu, result, MeasureEigenvector, func() MeasureStatus {
		res := algorithms.EigenvectorCentrality(g, algorithms.SpectralOptions{
			Tolerance:     a.cfg.Eigenvector.Tolerance,
			MaxIterations: a.cfg.Eigenvector.MaxIterations,
		})
		eigenvector = res
		if a.registry != nil {
			a.registry.RecordIterations(MeasureEigenvector, res.Iterations)
		}
		if !res.Converged {
			a.warn(&mu, result, MeasureEigenvector,
				fmt.Sprintf("eigenvector centrality did not converge within %d iterations", res.Iterations))
			return StatusNonConverged
		}
		return StatusOK
	}))

	group.Go(a.runMeasure(&mu, result, MeasurePageRank, func() MeasureStatus {
		res := algorithms.PageRank(g, algorithms.PageRankOptions{
			DampingFactor: a.cfg.PageRank.DampingFactor,
			Tolerance:     a.cfg.PageRank.Tolerance,
			MaxIterations: a.cfg.PageRank.MaxIterations,
		})
		pagerank = res
		if a.registry != nil {
			a.registry.RecordIterations(MeasurePageRank, res.Iterations)
		}
		if !res.Converged {
			a.warn(&mu, result, MeasurePageRank,
				fmt.Sprintf("pagerank did not converge within %d iterations", res.Iterations))
			return StatusNonConverged
		}
		return StatusOK
	}))

	_ = group.Wait()

	result.Table = a.assembleTable(g, tableInputs{
		degreeCent:  degreeCent,
		closeness:   closeness,
		clustering:  clustering,
		betweenness: betweenness,
		eigenvector: eigenvector,
		pagerank:    pagerank,
		statuses:    result.Statuses,
	})

	result.TopByDegree = algorithms.TopNodes(degreeCent, a.cfg.TopHubs)
	if betweenness != nil {
		result.TopByBetweenness = algorithms.TopNodes(betweenness.Scores, a.cfg.TopHubs)
	}
	if pagerank != nil {
		result.TopByPageRank = algorithms.TopNodes(pagerank.Scores, a.cfg.TopHubs)
	}

	hubScores := make([]float64, 0, len(result.Table))
	degrees := make([]float64, 0, len(result.Table))
	for _, row := range result.Table {
		hubScores = append(hubScores, row.HubScore)
		degrees = append(degrees, float64(row.Degree))
	}
	result.HubScoreP95 = quantile(hubScores, 0.95)
	result.DegreeP95 = quantile(degrees, 0.95)

	result.Elapsed = time.Since(start)

	status := "ok"
	if result.Degraded() {
		status = "degraded"
	}
	if a.registry != nil {
		a.registry.RecordRun(status)
	}
	logger.Info("analysis run finished",
		logging.String("status", status),
		logging.Count(len(result.Table)),
		logging.Latency(result.Elapsed))

	return result, nil
}

// runMeasure wraps one measure computation with observer events, timing,
// and panic isolation.
func (a *Analyzer) runMeasure(mu *sync.Mutex, result *Result, measure string, fn func() MeasureStatus) func() error {
	return func() error {
		a.observer.StageStarted(measure)
		start := time.Now()

		status := StatusUnavailable
		func() {
			defer func() {
				if r := recover(); r != nil {
					status = StatusUnavailable
					a.warn(mu, result, measure, fmt.Sprintf("%s failed: %v", measure, r))
					if a.registry != nil {
						a.registry.RecordMeasureFailure(measure, "panic")
					}
				}
			}()
			status = fn()
		}()

		elapsed := time.Since(start)
		mu.Lock()
		result.Statuses[measure] = status
		mu.Unlock()

		if a.registry != nil {
			a.registry.RecordMeasure(measure, elapsed)
		}
		a.observer.StageCompleted(measure, elapsed)
		return nil
	}
}

// warn records a warning on the result and forwards it to the observer.
func (a *Analyzer) warn(mu *sync.Mutex, result *Result, stage, message string) {
	mu.Lock()
	result.Warnings = append(result.Warnings, message)
	mu.Unlock()
	a.observer.Warning(stage, message)
}

type tableInputs struct {
	degreeCent  map[string]float64
	closeness   map[string]float64
	clustering  map[string]float64
	betweenness *algorithms.BetweennessResult
	eigenvector *algorithms.SpectralResult
	pagerank    *algorithms.PageRankResult
	statuses    map[string]MeasureStatus
}

// assembleTable merges per-measure maps into one row per node, computes the
// composite hub score, and ranks the table. The hub score averages the
// max-normalised values of degree, betweenness, eigenvector, and pagerank;
// a measure that failed entirely is excluded from the average rather than
// dragged in as zero.
func (a *Analyzer) assembleTable(g *graph.Graph, in tableInputs) MetricsTable {
	nodeIDs := g.NodeIDs()
	table := make(MetricsTable, 0, len(nodeIDs))

	betweennessScores := map[string]float64{}
	if in.betweenness != nil {
		betweennessScores = in.betweenness.Scores
	}
	eigenScores := map[string]float64{}
	if in.eigenvector != nil {
		eigenScores = in.eigenvector.Scores
	}
	pagerankScores := map[string]float64{}
	if in.pagerank != nil {
		pagerankScores = in.pagerank.Scores
	}

	for _, id := range nodeIDs {
		table = append(table, NodeMetrics{
			NodeID:                id,
			Degree:                g.Degree(id),
			DegreeCentrality:      in.degreeCent[id],
			BetweennessCentrality: betweennessScores[id],
			ClosenessCentrality:   in.closeness[id],
			EigenvectorCentrality: eigenScores[id],
			PageRank:              pagerankScores[id],
			ClusteringCoefficient: in.clustering[id],
		})
	}

	type hubMeasure struct {
		name   string
		values map[string]float64
	}
	composed := []hubMeasure{
		{MeasureDegree, in.degreeCent},
		{MeasureBetweenness, betweennessScores},
		{MeasureEigenvector, eigenScores},
		{MeasurePageRank, pagerankScores},
	}

	available := make([]hubMeasure, 0, len(composed))
	for _, m := range composed {
		if in.statuses[m.name] == StatusUnavailable || m.values == nil {
			continue
		}
		available = append(available, m)
	}

	if len(available) > 0 {
		maxima := make(map[string]float64, len(available))
		for _, m := range available {
			for _, v := range m.values {
				if v > maxima[m.name] {
					maxima[m.name] = v
				}
			}
		}

		for i := range table {
			sum := 0.0
			for _, m := range available {
				if max := maxima[m.name]; max > 0 {
					sum += m.values[table[i].NodeID] / max
				}
			}
			table[i].HubScore = sum / float64(len(available))
		}
	}

	table.sortRanked()
	return table
}
