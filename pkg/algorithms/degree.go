package algorithms

import "github.com/interactome/hubrank/pkg/graph"

// DegreeCentrality computes degree centrality for all nodes: the fraction of
// other nodes each node is directly connected to, degree(u) / (N-1).
// A single-node graph yields 0 for its one node.
func DegreeCentrality(g *graph.Graph) map[string]float64 {
	nodeIDs := g.NodeIDs()
	centrality := make(map[string]float64, len(nodeIDs))

	n := len(nodeIDs)
	for _, id := range nodeIDs {
		if n > 1 {
			centrality[id] = float64(g.Degree(id)) / float64(n-1)
		} else {
			centrality[id] = 0.0
		}
	}

	return centrality
}
