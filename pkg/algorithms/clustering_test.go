package algorithms

import (
	"testing"

	"github.com/interactome/hubrank/pkg/graph"
)

// TestCountTriangles_Triangle tests the smallest non-trivial case
func TestCountTriangles_Triangle(t *testing.T) {
	g := buildTestGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})

	result := CountTriangles(g)
	if result.GlobalCount != 1 {
		t.Errorf("Expected 1 triangle, got %d", result.GlobalCount)
	}
	for _, id := range []string{"A", "B", "C"} {
		if result.PerNode[id] != 1 {
			t.Errorf("Expected node %s in 1 triangle, got %d", id, result.PerNode[id])
		}
		if result.ClusteringCoefficients[id] != 1.0 {
			t.Errorf("Expected clustering 1.0 for %s, got %f", id, result.ClusteringCoefficients[id])
		}
	}
}

// TestCountTriangles_Complete tests K5: C(5,3)=10 triangles, each node in
// C(4,2)=6 of them
func TestCountTriangles_Complete(t *testing.T) {
	g := completeGraph(t, 5, "n")

	result := CountTriangles(g)
	if result.GlobalCount != 10 {
		t.Errorf("Expected 10 triangles in K5, got %d", result.GlobalCount)
	}
	for id, count := range result.PerNode {
		if count != 6 {
			t.Errorf("Expected node %s in 6 triangles, got %d", id, count)
		}
	}
}

// TestCountTriangles_TriangleFree tests a path: no triangles, all
// coefficients 0
func TestCountTriangles_TriangleFree(t *testing.T) {
	g := pathGraph(t)

	result := CountTriangles(g)
	if result.GlobalCount != 0 {
		t.Errorf("Expected 0 triangles on a path, got %d", result.GlobalCount)
	}
	for id, coef := range result.ClusteringCoefficients {
		if coef != 0.0 {
			t.Errorf("Expected clustering 0 for %s on a path, got %f", id, coef)
		}
	}
}

// TestClusteringCoefficients_Partial tests a triangle with a pendant: the
// attachment node has 3 neighbor pairs of which 1 is connected
func TestClusteringCoefficients_Partial(t *testing.T) {
	g := buildTestGraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, {"A", "D"},
	})

	coefficients := ClusteringCoefficients(g)
	if !approxEqual(coefficients["A"], 1.0/3.0, 1e-12) {
		t.Errorf("Expected clustering 1/3 for attachment node, got %f", coefficients["A"])
	}
	// Degree-1 pendant has no neighbor pairs
	if coefficients["D"] != 0.0 {
		t.Errorf("Expected clustering 0 for pendant, got %f", coefficients["D"])
	}
}

// TestAverageClusteringCoefficient tests the mean including zero terms
func TestAverageClusteringCoefficient(t *testing.T) {
	g := buildTestGraph(t, [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, {"A", "D"},
	})

	// (1/3 + 1 + 1 + 0) / 4
	want := (1.0/3.0 + 2.0) / 4.0
	got := AverageClusteringCoefficient(g)
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("Expected average clustering %f, got %f", want, got)
	}

	if AverageClusteringCoefficient(graph.New()) != 0.0 {
		t.Error("Expected average clustering 0 for empty graph")
	}
}
