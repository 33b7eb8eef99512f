package analysis

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interactome/hubrank/pkg/graph"
)

func twoClusterGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	left := []string{"a1", "a2", "a3", "a4"}
	right := []string{"b1", "b2", "b3", "b4"}
	for _, group := range [][]string{left, right} {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				require.NoError(t, g.AddEdge(group[i], group[j]))
			}
		}
	}
	require.NoError(t, g.AddEdge("a1", "b1"))
	return g
}

func TestDetectCommunities(t *testing.T) {
	a := newTestAnalyzer(t)
	g := twoClusterGraph(t)

	detection, err := a.DetectCommunities(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, 2, detection.Partition.CommunityCount())
	assert.Greater(t, detection.Partition.Modularity, 0.0)

	// One assignment per node, sorted by node id
	require.Len(t, detection.Table, g.NodeCount())
	assert.True(t, sort.SliceIsSorted(detection.Table, func(i, j int) bool {
		return detection.Table[i].NodeID < detection.Table[j].NodeID
	}))
	for _, row := range detection.Table {
		assert.Equal(t, detection.Partition.NodeCommunity[row.NodeID], row.CommunityID)
	}
}

func TestDetectCommunities_Cancelled(t *testing.T) {
	a := newTestAnalyzer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.DetectCommunities(ctx, twoClusterGraph(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCommunities_EmptyGraph(t *testing.T) {
	a := newTestAnalyzer(t)

	detection, err := a.DetectCommunities(context.Background(), graph.New())
	require.NoError(t, err)
	assert.Zero(t, detection.Partition.CommunityCount())
	assert.Empty(t, detection.Table)
}
