package rl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunningMeanStats_Eviction(t *testing.T) {
	stats := NewRunningMeanStats(3)

	for _, x := range []float64{1, 2, 3, 4} {
		stats.Append(x)
	}

	// Window holds [2, 3, 4]
	assert.Equal(t, 3, stats.Len())
	assert.InDelta(t, 3.0, stats.Get(), 1e-12)
}

func TestRunningMeanStats_PartialWindow(t *testing.T) {
	stats := NewRunningMeanStats(10)

	stats.Append(2)
	stats.Append(4)

	assert.Equal(t, 2, stats.Len())
	assert.InDelta(t, 3.0, stats.Get(), 1e-12)
}

func TestRunningMeanStats_EmptyIsNaN(t *testing.T) {
	stats := NewRunningMeanStats(5)
	assert.True(t, math.IsNaN(stats.Get()))
}

func TestRunningMeanStats_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewRunningMeanStats(0) })
	assert.Panics(t, func() { NewRunningMeanStats(-1) })
}
