package algorithms

import (
	"math"

	"github.com/interactome/hubrank/pkg/graph"
)

// SpectralOptions configures a power-iteration method.
type SpectralOptions struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultEigenvectorOptions returns the standard eigenvector centrality
// configuration.
func DefaultEigenvectorOptions() SpectralOptions {
	return SpectralOptions{
		Tolerance:     1e-6,
		MaxIterations: 1000,
	}
}

// SpectralResult contains the scores of a power-iteration method.
// Converged is false when MaxIterations was exhausted before the tolerance
// was met; Scores then holds the last iterate, which is a best-effort
// warning condition rather than a failure.
type SpectralResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// EigenvectorCentrality computes eigenvector centrality by power iteration
// on the weighted adjacency operator: each node's new score is the weighted
// sum of its neighbours' scores, L2-normalised after every multiply. The
// iteration stops when the maximum per-node change drops below the
// tolerance. On disconnected graphs each component converges toward its own
// dominant eigenvector; isolated singleton nodes score 0.
func EigenvectorCentrality(g *graph.Graph, opts SpectralOptions) *SpectralResult {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)

	result := &SpectralResult{
		Scores:    make(map[string]float64, n),
		Converged: true,
	}
	if n == 0 {
		return result
	}

	scores := make(map[string]float64, n)
	initial := 1.0 / float64(n)
	for _, id := range nodeIDs {
		scores[id] = initial
	}

	next := make(map[string]float64, n)
	result.Converged = false

	for result.Iterations < opts.MaxIterations {
		result.Iterations++

		for _, id := range nodeIDs {
			sum := 0.0
			for neighbor, weight := range g.Neighbors(id) {
				sum += weight * scores[neighbor]
			}
			next[id] = sum
		}

		norm := 0.0
		for _, id := range nodeIDs {
			norm += next[id] * next[id]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// No edges at all: the zero vector is already stable
			scores, next = next, scores
			result.Converged = true
			break
		}
		for _, id := range nodeIDs {
			next[id] /= norm
		}

		maxDiff := 0.0
		for _, id := range nodeIDs {
			if diff := math.Abs(next[id] - scores[id]); diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, next = next, scores

		if maxDiff < opts.Tolerance {
			result.Converged = true
			break
		}
	}

	result.Scores = scores
	return result
}
