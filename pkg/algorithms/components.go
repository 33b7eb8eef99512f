package algorithms

import (
	"container/list"
	"sort"

	"github.com/interactome/hubrank/pkg/graph"
)

// ConnectedComponents finds all connected components via BFS. Each component
// is sorted by node id and components are ordered by their smallest member,
// so the output is deterministic for a given graph.
func ConnectedComponents(g *graph.Graph) [][]string {
	nodeIDs := g.NodeIDs()
	visited := make(map[string]bool, len(nodeIDs))
	components := make([][]string, 0)

	for _, start := range nodeIDs {
		if visited[start] {
			continue
		}

		component := make([]string, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			component = append(component, v)

			for neighbor := range g.Neighbors(v) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		sort.Strings(component)
		components = append(components, component)
	}

	return components
}

// LargestComponent returns the node count of the largest connected component.
func LargestComponent(components [][]string) int {
	largest := 0
	for _, c := range components {
		if len(c) > largest {
			largest = len(c)
		}
	}
	return largest
}
