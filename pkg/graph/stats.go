package graph

// Statistics summarises the structural shape of a graph. Density is the
// fraction of possible undirected edges present.
type Statistics struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	AverageDegree float64 `json:"average_degree"`
	Density       float64 `json:"density"`
}

// GetStatistics computes summary statistics for the graph.
func (g *Graph) GetStatistics() Statistics {
	stats := Statistics{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
	}

	n := float64(stats.NodeCount)
	if stats.NodeCount > 0 {
		stats.AverageDegree = 2 * float64(stats.EdgeCount) / n
	}
	if stats.NodeCount > 1 {
		stats.Density = 2 * float64(stats.EdgeCount) / (n * (n - 1))
	}
	return stats
}
