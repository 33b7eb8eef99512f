package algorithms

import (
	"testing"

	"github.com/interactome/hubrank/pkg/graph"
)

// TestDegreeCentrality_EmptyGraph tests degree centrality on an empty graph
func TestDegreeCentrality_EmptyGraph(t *testing.T) {
	result := DegreeCentrality(graph.New())
	if len(result) != 0 {
		t.Errorf("Expected 0 scores for empty graph, got %d", len(result))
	}
}

// TestDegreeCentrality_SingleNode tests the N=1 edge case
func TestDegreeCentrality_SingleNode(t *testing.T) {
	g := graph.New()
	if err := g.AddNode("A"); err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}

	result := DegreeCentrality(g)
	if result["A"] != 0.0 {
		t.Errorf("Expected degree centrality 0 for single node, got %f", result["A"])
	}
}

// TestDegreeCentrality_Star tests the star topology: the center touches
// every other node, leaves touch exactly one
func TestDegreeCentrality_Star(t *testing.T) {
	g := buildTestGraph(t, [][2]string{
		{"hub", "A"}, {"hub", "B"}, {"hub", "C"}, {"hub", "D"},
	})

	result := DegreeCentrality(g)

	if result["hub"] != 1.0 {
		t.Errorf("Expected centrality 1.0 for star center, got %f", result["hub"])
	}
	for _, leaf := range []string{"A", "B", "C", "D"} {
		if result[leaf] != 0.25 {
			t.Errorf("Expected centrality 0.25 for leaf %s, got %f", leaf, result[leaf])
		}
	}
}

// TestDegreeCentrality_Bounds verifies every value lies in [0,1]
func TestDegreeCentrality_Bounds(t *testing.T) {
	g := pathGraph(t)
	for id, value := range DegreeCentrality(g) {
		if value < 0 || value > 1 {
			t.Errorf("Degree centrality of %s out of [0,1]: %f", id, value)
		}
	}
}
