package rl

import "math"

// RunningMeanStats tracks the arithmetic mean over a bounded FIFO window of
// samples. Appending past capacity evicts the oldest sample.
//
// Typically used to smooth episode returns for logging.
type RunningMeanStats struct {
	capacity int
	samples  []float64 // ring buffer
	head     int       // index of the oldest sample
	count    int
}

// NewRunningMeanStats creates a tracker with a window of n samples.
// Panics if n is not positive.
func NewRunningMeanStats(n int) *RunningMeanStats {
	if n <= 0 {
		panic("NewRunningMeanStats: window size must be positive")
	}
	return &RunningMeanStats{
		capacity: n,
		samples:  make([]float64, n),
	}
}

// Append adds a sample, evicting the oldest one if the window is full.
func (s *RunningMeanStats) Append(x float64) {
	if s.count < s.capacity {
		s.samples[(s.head+s.count)%s.capacity] = x
		s.count++
		return
	}
	s.samples[s.head] = x
	s.head = (s.head + 1) % s.capacity
}

// Get returns the mean of the current window.
// Returns NaN when no samples have been appended, matching the behavior of
// a mean over an empty collection.
func (s *RunningMeanStats) Get() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	var sum float64
	for i := 0; i < s.count; i++ {
		sum += s.samples[(s.head+i)%s.capacity]
	}
	return sum / float64(s.count)
}

// Len returns the number of samples currently in the window.
func (s *RunningMeanStats) Len() int {
	return s.count
}
