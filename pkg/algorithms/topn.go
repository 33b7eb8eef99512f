package algorithms

import (
	"container/heap"
	"sort"
)

// RankedNode represents a node with its score under some measure.
type RankedNode struct {
	NodeID string  `json:"node_id"`
	Score  float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode. Keeping at most N
// elements with the weakest candidate at the root gives O(n log k) top-N
// selection. Equal scores rank the larger node id as weaker, so the root is
// always the exact element a better candidate should displace.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].NodeID > h[j].NodeID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the top n nodes by score, descending, with ties broken
// by ascending node id for determinism.
func TopNodes(scores map[string]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for nodeID, score := range scores {
		rn := RankedNode{NodeID: nodeID, Score: score}

		if h.Len() < n {
			heap.Push(&h, rn)
		} else if score > h[0].Score || (score == h[0].Score && nodeID < h[0].NodeID) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].NodeID < result[j].NodeID
	})

	return result
}
