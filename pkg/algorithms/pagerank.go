package algorithms

import (
	"math"

	"github.com/interactome/hubrank/pkg/graph"
)

// PageRankOptions configures the PageRank algorithm.
type PageRankOptions struct {
	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // L1 convergence threshold
}

// DefaultPageRankOptions returns the standard PageRank configuration.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult contains PageRank scores for all nodes.
type PageRankResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// PageRank computes the random-surfer stationary distribution over the
// undirected graph. Each iteration every node distributes its current score
// to neighbours in proportion to edge weight over total incident weight;
// zero-degree (dangling) nodes spread their mass uniformly across all
// nodes. The resulting vector sums to 1 within floating tolerance.
func PageRank(g *graph.Graph, opts PageRankOptions) *PageRankResult {
	nodeIDs := g.NodeIDs()
	n := len(nodeIDs)

	result := &PageRankResult{
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

	outWeight := make(map[string]float64, n)
	for _, id := range nodeIDs {
		outWeight[id] = g.WeightedDegree(id)
	}

	next := make(map[string]float64, n)
	base := (1.0 - opts.DampingFactor) / float64(n)
	result.Converged = false

	for result.Iterations < opts.MaxIterations {
		result.Iterations++

		danglingMass := 0.0
		for _, id := range nodeIDs {
			if outWeight[id] == 0 {
				danglingMass += scores[id]
			}
			next[id] = 0.0
		}

		for _, id := range nodeIDs {
			if outWeight[id] == 0 {
				continue
			}
			share := scores[id] / outWeight[id]
			for neighbor, weight := range g.Neighbors(id) {
				next[neighbor] += share * weight
			}
		}

		danglingShare := danglingMass / float64(n)
		for _, id := range nodeIDs {
			next[id] = base + opts.DampingFactor*(next[id]+danglingShare)
		}

		l1Diff := 0.0
		for _, id := range nodeIDs {
			l1Diff += math.Abs(next[id] - scores[id])
		}

		scores, next = next, scores

		if l1Diff < opts.Tolerance {
			result.Converged = true
			break
		}
	}

	// Guard against drift: renormalise so the vector sums to exactly 1
	sum := 0.0
	for _, score := range scores {
		sum += score
	}
	if sum > 0 {
		for id := range scores {
			scores[id] /= sum
		}
	}

	result.Scores = scores
	return result
}
