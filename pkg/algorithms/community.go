package algorithms

import (
	"sort"

	"github.com/interactome/hubrank/pkg/graph"
)

// Community represents one detected community.
type Community struct {
	ID    int
	Nodes []string
	Size  int
}

// CommunityResult contains the detected partition. Community ids are opaque
// and stable only within one run; they are assigned 0..k-1 in order of each
// community's smallest member so repeated runs on the same graph agree.
type CommunityResult struct {
	Communities   []*Community
	NodeCommunity map[string]int
	Modularity    float64
}

// CommunityCount returns the number of detected communities.
func (r *CommunityResult) CommunityCount() int {
	return len(r.Communities)
}

// communityPair is an unordered pair of working community ids, stored with
// a < b.
type communityPair struct {
	a, b int
}

// GreedyModularity partitions the graph by greedy modularity maximisation:
// every node starts in its own singleton community, and the pair of
// communities whose merge yields the largest modularity increase is merged
// until no merge improves Q. Ties among equally-improving merges are broken
// by the smallest pair of working community ids. This is a greedy local
// search, not a global optimum; alternative merge orders can produce
// different but equally valid partitions. The merge loop is sequential by
// nature and never mutates the input graph.
func GreedyModularity(g *graph.Graph) *CommunityResult {
	nodeIDs := g.NodeIDs()
	totalEdges := float64(g.EdgeCount())

	// Working state: each node begins as its own community
	members := make(map[int][]string, len(nodeIDs))
	degSum := make(map[int]float64, len(nodeIDs))
	internal := make(map[int]float64, len(nodeIDs))
	index := make(map[string]int, len(nodeIDs))
	for i, id := range nodeIDs {
		index[id] = i
		members[i] = []string{id}
		degSum[i] = float64(g.Degree(id))
		internal[i] = 0.0
	}

	// Inter-community edge counts; only connected pairs can improve Q
	between := make(map[communityPair]float64)
	for _, u := range nodeIDs {
		for v := range g.Neighbors(u) {
			if u < v {
				between[pairOf(index[u], index[v])]++
			}
		}
	}

	if totalEdges > 0 {
		for {
			pairs := make([]communityPair, 0, len(between))
			for p := range between {
				pairs = append(pairs, p)
			}
			sort.Slice(pairs, func(i, j int) bool {
				if pairs[i].a != pairs[j].a {
					return pairs[i].a < pairs[j].a
				}
				return pairs[i].b < pairs[j].b
			})

			bestDelta := 0.0
			var bestPair communityPair
			found := false
			for _, p := range pairs {
				delta := between[p]/totalEdges - degSum[p.a]*degSum[p.b]/(2*totalEdges*totalEdges)
				if delta > bestDelta {
					bestDelta = delta
					bestPair = p
					found = true
				}
			}
			if !found {
				break
			}

			mergeCommunities(bestPair.a, bestPair.b, members, degSum, internal, between)
		}
	}

	return buildCommunityResult(members, degSum, internal, totalEdges)
}

func pairOf(a, b int) communityPair {
	if a > b {
		a, b = b, a
	}
	return communityPair{a: a, b: b}
}

// mergeCommunities folds community b into community a, rewiring b's
// inter-community edge counts onto a.
func mergeCommunities(a, b int, members map[int][]string, degSum, internal map[int]float64, between map[communityPair]float64) {
	internal[a] += internal[b] + between[communityPair{a: a, b: b}]
	degSum[a] += degSum[b]
	members[a] = append(members[a], members[b]...)

	delete(between, communityPair{a: a, b: b})
	delete(internal, b)
	delete(degSum, b)
	delete(members, b)

	for p, count := range between {
		var other int
		switch b {
		case p.a:
			other = p.b
		case p.b:
			other = p.a
		default:
			continue
		}
		delete(between, p)
		if other == a {
			internal[a] += count
			continue
		}
		between[pairOf(a, other)] += count
	}
}

// buildCommunityResult renumbers the surviving working communities into
// contiguous ids ordered by smallest member, and computes the partition's
// modularity.
func buildCommunityResult(members map[int][]string, degSum, internal map[int]float64, totalEdges float64) *CommunityResult {
	working := make([]int, 0, len(members))
	for id := range members {
		working = append(working, id)
	}
	for _, id := range working {
		sort.Strings(members[id])
	}
	sort.Slice(working, func(i, j int) bool {
		return members[working[i]][0] < members[working[j]][0]
	})

	result := &CommunityResult{
		Communities:   make([]*Community, 0, len(working)),
		NodeCommunity: make(map[string]int),
	}

	for newID, oldID := range working {
		nodes := members[oldID]
		community := &Community{
			ID:    newID,
			Nodes: nodes,
			Size:  len(nodes),
		}
		for _, node := range nodes {
			result.NodeCommunity[node] = newID
		}
		result.Communities = append(result.Communities, community)

		if totalEdges > 0 {
			halfDeg := degSum[oldID] / (2 * totalEdges)
			result.Modularity += internal[oldID]/totalEdges - halfDeg*halfDeg
		}
	}

	return result
}
