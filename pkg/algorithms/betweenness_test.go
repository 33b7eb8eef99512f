package algorithms

import (
	"context"
	"testing"

	"github.com/interactome/hubrank/pkg/graph"
)

func exactBetweenness(t *testing.T, g *graph.Graph) *BetweennessResult {
	t.Helper()

	result, err := BetweennessCentrality(context.Background(), g, DefaultBetweennessOptions())
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}
	if !result.Complete {
		t.Fatalf("Expected complete result, got %d/%d sources", result.SourcesDone, result.SourcesTotal)
	}
	return result
}

// TestBetweennessCentrality_Path tests hand-computed raw scores on the
// 4-node path: the interior nodes each sit on two shortest paths
func TestBetweennessCentrality_Path(t *testing.T) {
	g := pathGraph(t)
	result := exactBetweenness(t, g)

	expected := map[string]float64{"A": 0, "B": 2, "C": 2, "D": 0}
	for id, want := range expected {
		if !approxEqual(result.Scores[id], want, 1e-9) {
			t.Errorf("Expected betweenness %f for %s, got %f", want, id, result.Scores[id])
		}
	}
}

// TestBetweennessCentrality_Star tests that the center of a star carries all
// (n-1)(n-2)/2 leaf pairs and leaves carry none
func TestBetweennessCentrality_Star(t *testing.T) {
	g := buildTestGraph(t, [][2]string{
		{"hub", "A"}, {"hub", "B"}, {"hub", "C"}, {"hub", "D"}, {"hub", "E"},
	})
	result := exactBetweenness(t, g)

	// n=6: center betweenness = 5*4/2 = 10
	if !approxEqual(result.Scores["hub"], 10.0, 1e-9) {
		t.Errorf("Expected betweenness 10 for star center, got %f", result.Scores["hub"])
	}
	for _, leaf := range []string{"A", "B", "C", "D", "E"} {
		if !approxEqual(result.Scores[leaf], 0.0, 1e-9) {
			t.Errorf("Expected betweenness 0 for leaf %s, got %f", leaf, result.Scores[leaf])
		}
	}
}

// TestBetweennessCentrality_MultiplePaths tests shortest-path splitting: in a
// 4-cycle each opposite pair has two equal paths, so each relay carries half
func TestBetweennessCentrality_MultiplePaths(t *testing.T) {
	g := buildTestGraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"},
	})
	result := exactBetweenness(t, g)

	for id, score := range result.Scores {
		if !approxEqual(score, 0.5, 1e-9) {
			t.Errorf("Expected betweenness 0.5 for %s in 4-cycle, got %f", id, score)
		}
	}
}

// TestBetweennessCentrality_SampledAllSources tests that a sample covering
// every node reproduces the exact result
func TestBetweennessCentrality_SampledAllSources(t *testing.T) {
	g := pathGraph(t)
	exact := exactBetweenness(t, g)

	opts := DefaultBetweennessOptions()
	opts.Sampled = true
	opts.SampleSize = g.NodeCount()
	opts.Seed = 7

	sampled, err := BetweennessCentrality(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Sampled betweenness failed: %v", err)
	}

	for id, want := range exact.Scores {
		if !approxEqual(sampled.Scores[id], want, 1e-9) {
			t.Errorf("Full-sample run differs from exact for %s: %f vs %f", id, sampled.Scores[id], want)
		}
	}
}

// TestBetweennessCentrality_SampledDeterministic tests that the same seed
// selects the same sources
func TestBetweennessCentrality_SampledDeterministic(t *testing.T) {
	g := completeGraph(t, 8, "n")
	if err := g.AddEdge("n0", "bridge"); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	if err := g.AddEdge("bridge", "m0"); err != nil {
		t.Fatalf("AddEdge failed: %v", err)
	}
	addClique(t, g, 8, "m")

	opts := DefaultBetweennessOptions()
	opts.Sampled = true
	opts.SampleSize = 5
	opts.Seed = 42

	first, err := BetweennessCentrality(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("First sampled run failed: %v", err)
	}
	second, err := BetweennessCentrality(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Second sampled run failed: %v", err)
	}

	for id, want := range first.Scores {
		if second.Scores[id] != want {
			t.Errorf("Same seed produced different score for %s: %f vs %f", id, want, second.Scores[id])
		}
	}
}

// TestBetweennessCentrality_SampledInvalidSize tests sample size validation
func TestBetweennessCentrality_SampledInvalidSize(t *testing.T) {
	opts := DefaultBetweennessOptions()
	opts.Sampled = true
	opts.SampleSize = 0

	if _, err := BetweennessCentrality(context.Background(), pathGraph(t), opts); err == nil {
		t.Fatal("Expected error for non-positive sample size")
	}
}

// TestBetweennessCentrality_Cancelled tests that a cancelled context yields a
// partial result instead of blocking
func TestBetweennessCentrality_Cancelled(t *testing.T) {
	g := completeGraph(t, 6, "n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := BetweennessCentrality(ctx, g, DefaultBetweennessOptions())
	if err != nil {
		t.Fatalf("Cancelled run must still return a result: %v", err)
	}
	if result.Complete {
		t.Error("Expected Complete=false for cancelled run")
	}
	if result.SourcesDone >= result.SourcesTotal {
		t.Errorf("Expected fewer finished sources than total, got %d/%d", result.SourcesDone, result.SourcesTotal)
	}
}

// TestBetweennessCentrality_Empty tests the empty graph
func TestBetweennessCentrality_Empty(t *testing.T) {
	result, err := BetweennessCentrality(context.Background(), graph.New(), DefaultBetweennessOptions())
	if err != nil {
		t.Fatalf("BetweennessCentrality failed: %v", err)
	}
	if !result.Complete || len(result.Scores) != 0 {
		t.Errorf("Expected complete empty result, got %+v", result)
	}
}
