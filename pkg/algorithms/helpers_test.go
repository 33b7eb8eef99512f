package algorithms

import (
	"math"
	"testing"

	"github.com/interactome/hubrank/pkg/graph"
)

// buildTestGraph creates a graph from unweighted edge pairs
func buildTestGraph(t *testing.T, edges [][2]string) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s) failed: %v", e[0], e[1], err)
		}
	}
	return g
}

// pathGraph creates the 4-node path A-B-C-D
func pathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return buildTestGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
}

// completeGraph creates K_n over nodes "n0".."n<n-1>"
func completeGraph(t *testing.T, n int, prefix string) *graph.Graph {
	t.Helper()

	g := graph.New()
	addClique(t, g, n, prefix)
	return g
}

// addClique adds a clique of n nodes with the given id prefix
func addClique(t *testing.T, g *graph.Graph, n int, prefix string) []string {
	t.Helper()

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + string(rune('0'+i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				t.Fatalf("AddEdge failed: %v", err)
			}
		}
	}
	return ids
}

// approxEqual compares floats within tolerance
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
