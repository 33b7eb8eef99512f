package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	a := newTestAnalyzer(t)
	g := twoClusterGraph(t)

	result, err := a.ComputeAllMetrics(context.Background(), g)
	require.NoError(t, err)
	detection, err := a.DetectCommunities(context.Background(), g)
	require.NoError(t, err)

	report := BuildReport(result, detection, 3)

	assert.Contains(t, report, "INTERACTION NETWORK ANALYSIS SUMMARY")
	assert.Contains(t, report, "Run ID: "+result.RunID)
	assert.Contains(t, report, "Nodes: 8  Edges: 13")
	assert.Contains(t, report, "TOP 3 HUB NODES")
	assert.Contains(t, report, result.Table[0].NodeID)
	assert.Contains(t, report, "COMMUNITIES: 2")
	assert.NotContains(t, report, "Degraded measures:", "healthy run must not list degraded measures")
}

func TestBuildReport_Degraded(t *testing.T) {
	a := newTestAnalyzer(t)
	g := twoClusterGraph(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := a.ComputeAllMetrics(ctx, g)
	require.NoError(t, err)
	require.True(t, result.Degraded())

	report := BuildReport(result, nil, 5)
	assert.Contains(t, report, "Degraded measures:")
	assert.Contains(t, report, MeasureBetweenness)
	assert.NotContains(t, report, "COMMUNITIES", "nil communities must omit the section")
}

func TestBuildReport_TopNLargerThanTable(t *testing.T) {
	a := newTestAnalyzer(t)
	g := twoClusterGraph(t)

	result, err := a.ComputeAllMetrics(context.Background(), g)
	require.NoError(t, err)

	report := BuildReport(result, nil, 100)
	assert.Contains(t, report, "TOP 8 HUB NODES")
}
