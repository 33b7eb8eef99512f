package algorithms

import "github.com/interactome/hubrank/pkg/graph"

// TriangleCountResult holds triangle counting results including per-node
// counts, the global triangle count, and clustering coefficients.
type TriangleCountResult struct {
	PerNode                map[string]int
	GlobalCount            int
	ClusteringCoefficients map[string]float64
}

// CountTriangles counts triangles in the graph. For each node u it iterates
// over unordered pairs (v,w) of u's neighbors; if v and w are themselves
// connected, that is a triangle through u. Each triangle is counted once per
// participating node, so GlobalCount = sum(PerNode) / 3.
// Clustering coefficients are computed in the same pass: per-node triangles
// divided by deg(u)*(deg(u)-1)/2 possible neighbor pairs, 0 when deg(u) < 2.
func CountTriangles(g *graph.Graph) *TriangleCountResult {
	nodeIDs := g.NodeIDs()

	perNode := make(map[string]int, len(nodeIDs))
	for _, u := range nodeIDs {
		neighbors := g.Neighbors(u)
		neighborsSlice := make([]string, 0, len(neighbors))
		for v := range neighbors {
			neighborsSlice = append(neighborsSlice, v)
		}

		count := 0
		for i := 0; i < len(neighborsSlice); i++ {
			for j := i + 1; j < len(neighborsSlice); j++ {
				if g.HasEdge(neighborsSlice[i], neighborsSlice[j]) {
					count++
				}
			}
		}
		perNode[u] = count
	}

	// Each triangle is seen from all three of its vertices
	total := 0
	for _, c := range perNode {
		total += c
	}

	coefficients := make(map[string]float64, len(nodeIDs))
	for _, u := range nodeIDs {
		k := g.Degree(u)
		if k < 2 {
			coefficients[u] = 0.0
			continue
		}
		possible := k * (k - 1) / 2
		coefficients[u] = float64(perNode[u]) / float64(possible)
	}

	return &TriangleCountResult{
		PerNode:                perNode,
		GlobalCount:            total / 3,
		ClusteringCoefficients: coefficients,
	}
}

// ClusteringCoefficients computes the local clustering coefficient for all
// nodes: the fraction of a node's neighbor pairs that are themselves
// connected.
func ClusteringCoefficients(g *graph.Graph) map[string]float64 {
	return CountTriangles(g).ClusteringCoefficients
}

// AverageClusteringCoefficient computes the mean local clustering
// coefficient over all nodes, 0 for an empty graph.
func AverageClusteringCoefficient(g *graph.Graph) float64 {
	coefficients := ClusteringCoefficients(g)
	if len(coefficients) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, coef := range coefficients {
		sum += coef
	}
	return sum / float64(len(coefficients))
}
