package rl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnealer_LinearProgress(t *testing.T) {
	annealer := NewAnnealer(0, 10, 5)

	annealer.Step()
	assert.InDelta(t, 2.0, annealer.Get(), 1e-12)

	for i := 0; i < 4; i++ {
		annealer.Step()
	}
	assert.InDelta(t, 10.0, annealer.Get(), 1e-12)
}

func TestAnnealer_CapsAtNumSteps(t *testing.T) {
	annealer := NewAnnealer(1, 0, 4)

	for i := 0; i < 100; i++ {
		annealer.Step()
	}

	assert.Equal(t, 4, annealer.Steps())
	assert.InDelta(t, 0.0, annealer.Get(), 1e-12)
}

func TestAnnealer_Decreasing(t *testing.T) {
	annealer := NewAnnealer(1.0, 0.01, 10)

	prev := 2.0
	for i := 0; i < 10; i++ {
		annealer.Step()
		v := annealer.Get()
		assert.Less(t, v, prev, "value must decrease at step %d", i+1)
		prev = v
	}
	assert.InDelta(t, 0.01, annealer.Get(), 1e-12)
}

func TestAnnealer_GetBeforeStepPanics(t *testing.T) {
	annealer := NewAnnealer(0, 1, 3)
	assert.Panics(t, func() { annealer.Get() })
}

func TestAnnealer_InvalidNumSteps(t *testing.T) {
	assert.Panics(t, func() { NewAnnealer(0, 1, 0) })
	assert.Panics(t, func() { NewAnnealer(0, 1, -5) })
}
