package rl

import "fmt"

// Annealer linearly interpolates a scalar hyperparameter from a start value
// to an end value over a fixed number of steps. The value reaches endValue
// at step numSteps and never leaves the configured range.
type Annealer struct {
	steps    int
	numSteps int
	slope    float64 // (end - start) / numSteps
	start    float64
}

// NewAnnealer creates a linear annealer. Panics if numSteps is not positive.
func NewAnnealer(startValue, endValue float64, numSteps int) *Annealer {
	if numSteps <= 0 {
		panic(fmt.Sprintf("NewAnnealer: numSteps must be positive, got %d", numSteps))
	}
	return &Annealer{
		numSteps: numSteps,
		slope:    (endValue - startValue) / float64(numSteps),
		start:    startValue,
	}
}

// Step advances the annealer by one step, capped at numSteps.
func (a *Annealer) Step() {
	if a.steps < a.numSteps {
		a.steps++
	}
}

// Get returns the current annealed value.
// Panics if called before the first Step.
func (a *Annealer) Get() float64 {
	if a.steps == 0 || a.steps > a.numSteps {
		panic(fmt.Sprintf("Annealer.Get: steps %d out of range (0, %d]", a.steps, a.numSteps))
	}
	return a.slope*float64(a.steps) + a.start
}

// Steps returns the number of steps taken so far.
func (a *Annealer) Steps() int {
	return a.steps
}
