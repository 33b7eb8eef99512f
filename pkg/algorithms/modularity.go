package algorithms

import "github.com/interactome/hubrank/pkg/graph"

// Modularity computes Q = sum_c (e_c/E - (d_c/2E)^2) for an arbitrary
// node -> community assignment: e_c is the number of edges internal to
// community c, d_c the sum of member degrees, and E the total edge count.
// An edgeless graph has modularity 0 under any partition.
func Modularity(g *graph.Graph, partition map[string]int) float64 {
	totalEdges := float64(g.EdgeCount())
	if totalEdges == 0 {
		return 0.0
	}

	internal := make(map[int]float64)
	degSum := make(map[int]float64)

	for _, u := range g.NodeIDs() {
		community, ok := partition[u]
		if !ok {
			continue
		}
		degSum[community] += float64(g.Degree(u))

		for v := range g.Neighbors(u) {
			if u >= v {
				continue
			}
			if other, assigned := partition[v]; assigned && other == community {
				internal[community]++
			}
		}
	}

	q := 0.0
	for _, e := range internal {
		q += e / totalEdges
	}
	for _, d := range degSum {
		half := d / (2 * totalEdges)
		q -= half * half
	}
	return q
}
