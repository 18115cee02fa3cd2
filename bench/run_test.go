package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	timings := []Timing{
		{Threads: 1, Points: 100, Run: 1, Seconds: 2.0},
		{Threads: 1, Points: 100, Run: 2, Seconds: 4.0},
		{Threads: 2, Points: 100, Run: 1, Seconds: 1.5},
		{Threads: 2, Points: 100, Run: 2, Seconds: 1.5},
		{Threads: 4, Points: 100, Run: 1, Seconds: 1.0},
	}

	metrics := Aggregate(timings)
	require.Len(t, metrics, 3)

	assert.Equal(t, 1, metrics[0].Threads)
	assert.InDelta(t, 3.0, metrics[0].MeanSeconds, 1e-9)
	assert.InDelta(t, 1.0, metrics[0].Speedup, 1e-9)
	assert.InDelta(t, 1.0, metrics[0].Efficiency, 1e-9)

	assert.Equal(t, 2, metrics[1].Threads)
	assert.InDelta(t, 1.5, metrics[1].MeanSeconds, 1e-9)
	assert.InDelta(t, 2.0, metrics[1].Speedup, 1e-9)
	assert.InDelta(t, 1.0, metrics[1].Efficiency, 1e-9)

	assert.Equal(t, 4, metrics[2].Threads)
	assert.InDelta(t, 3.0, metrics[2].Speedup, 1e-9)
	assert.InDelta(t, 0.75, metrics[2].Efficiency, 1e-9)
}

func TestAggregateWithoutSingleThreadBaseline(t *testing.T) {
	timings := []Timing{
		{Threads: 4, Points: 100, Run: 1, Seconds: 1.0},
		{Threads: 2, Points: 100, Run: 1, Seconds: 2.0},
	}

	metrics := Aggregate(timings)
	require.Len(t, metrics, 2)

	// The smallest measured thread count becomes the baseline.
	assert.Equal(t, 2, metrics[0].Threads)
	assert.InDelta(t, 1.0, metrics[0].Speedup, 1e-9)
	assert.Equal(t, 4, metrics[1].Threads)
	assert.InDelta(t, 2.0, metrics[1].Speedup, 1e-9)
}

func TestWriteReports(t *testing.T) {
	timings := []Timing{{Threads: 2, Points: 100, Run: 1, Seconds: 0.5}}

	var tw strings.Builder
	require.NoError(t, WriteTimings(&tw, timings))
	assert.Equal(t, "nthreads,npoints,run_index,time\n2,100,1,0.500000\n", tw.String())

	var mw strings.Builder
	require.NoError(t, WriteMetrics(&mw, Aggregate(timings)))
	assert.Equal(t, "nthreads,npoints,mean_time,acceleration,efficiency\n2,100,0.500000,1.000000,0.500000\n", mw.String())
}

func TestCollectRunsTheSuite(t *testing.T) {
	s := &Suite{Name: "quick", Npoints: 16, Threads: []int{1, 2}, Runs: 2}

	timings, err := s.Collect()
	require.NoError(t, err)
	require.Len(t, timings, 4)

	for _, tm := range timings {
		assert.Equal(t, 16, tm.Points)
		assert.Greater(t, tm.Seconds, 0.0)
	}
	assert.Equal(t, 1, timings[0].Threads)
	assert.Equal(t, 1, timings[0].Run)
	assert.Equal(t, 2, timings[3].Threads)
	assert.Equal(t, 2, timings[3].Run)
}
