package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsTable_SortRanked(t *testing.T) {
	table := MetricsTable{
		{NodeID: "beta", HubScore: 0.5},
		{NodeID: "alpha", HubScore: 0.5},
		{NodeID: "gamma", HubScore: 0.9},
	}
	table.sortRanked()

	assert.Equal(t, "gamma", table[0].NodeID)
	assert.Equal(t, "alpha", table[1].NodeID, "ties break by ascending node id")
	assert.Equal(t, "beta", table[2].NodeID)
}

func TestTopHubs_Bounds(t *testing.T) {
	table := MetricsTable{
		{NodeID: "a", HubScore: 0.9},
		{NodeID: "b", HubScore: 0.4},
	}

	assert.Len(t, TopHubs(table, 1), 1)
	assert.Len(t, TopHubs(table, 5), 2)
	assert.Empty(t, TopHubs(table, 0))
	assert.Empty(t, TopHubs(table, -3))

	// The returned slice is a copy; mutating it leaves the table alone
	top := TopHubs(table, 2)
	top[0].NodeID = "mutated"
	assert.Equal(t, "a", table[0].NodeID)
}

func TestMeasureStatus_Degraded(t *testing.T) {
	assert.False(t, StatusOK.Degraded())
	assert.True(t, StatusNonConverged.Degraded())
	assert.True(t, StatusPartial.Degraded())
	assert.True(t, StatusUnavailable.Degraded())
}

func TestResult_Degraded(t *testing.T) {
	r := &Result{Statuses: map[string]MeasureStatus{
		MeasureDegree:   StatusOK,
		MeasurePageRank: StatusOK,
	}}
	assert.False(t, r.Degraded())

	r.Statuses[MeasureBetweenness] = StatusPartial
	assert.True(t, r.Degraded())
}

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 0.0, quantile(nil, 0.95))
	assert.Equal(t, 1.0, quantile(values, 0))
	assert.Equal(t, 4.0, quantile(values, 1))
	assert.InDelta(t, 2.5, quantile(values, 0.5), 1e-12)
	// 0.95 * 3 = 2.85: interpolate between 3 and 4
	assert.InDelta(t, 3.85, quantile(values, 0.95), 1e-12)

	// Input order must not matter and the input must not be mutated
	assert.Equal(t, []float64{4, 1, 3, 2}, values)
}
