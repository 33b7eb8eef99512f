package algorithms

import (
	"container/list"

	"github.com/interactome/hubrank/pkg/graph"
)

// ClosenessCentrality computes closeness centrality per connected component
// using the Wasserman-Faust formula: for node u in a component of size c,
// closeness(u) = (c-1) / sum of BFS hop distances from u within the
// component. Every component is treated the same way; nodes are never
// compared across components. Singleton components score 0.
func ClosenessCentrality(g *graph.Graph) map[string]float64 {
	closeness := make(map[string]float64, g.NodeCount())

	for _, component := range ConnectedComponents(g) {
		c := len(component)
		if c <= 1 {
			for _, id := range component {
				closeness[id] = 0.0
			}
			continue
		}

		for _, source := range component {
			total := 0
			for _, dist := range bfsDistances(g, source) {
				total += dist
			}
			if total > 0 {
				closeness[source] = float64(c-1) / float64(total)
			} else {
				closeness[source] = 0.0
			}
		}
	}

	return closeness
}

// bfsDistances returns unweighted hop distances from source to every
// reachable node, excluding the source itself.
func bfsDistances(g *graph.Graph, source string) map[string]int {
	distance := map[string]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(string)
		if !ok {
			continue
		}

		for neighbor := range g.Neighbors(v) {
			if _, seen := distance[neighbor]; !seen {
				distance[neighbor] = distance[v] + 1
				queue.PushBack(neighbor)
			}
		}
	}

	delete(distance, source)
	return distance
}
