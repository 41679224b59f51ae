package rl

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/optim"
)

// LRSweeper steps an optimizer's learning rate through a fixed ordered
// sequence of values, advancing one position every interval steps.
//
// Once the last value is reached the sweeper stays there: further steps
// keep the final learning rate instead of running the index past the end
// of the sequence.
type LRSweeper struct {
	optimizer optim.Optimizer
	values    []float32
	interval  int
	steps     int
	index     int
	lr        float32
}

// NewLRSweeper creates a sweeper and immediately applies the first value to
// the optimizer. Panics if values is empty or interval is not positive.
func NewLRSweeper(optimizer optim.Optimizer, values []float32, interval int) *LRSweeper {
	if len(values) == 0 {
		panic("NewLRSweeper: values must not be empty")
	}
	if interval <= 0 {
		panic(fmt.Sprintf("NewLRSweeper: interval must be positive, got %d", interval))
	}

	s := &LRSweeper{
		optimizer: optimizer,
		values:    append([]float32(nil), values...),
		interval:  interval,
	}
	s.setLR()
	return s
}

// Step advances the step counter. Every interval steps the sweeper moves to
// the next value and reassigns the optimizer's learning rate; at the last
// value it stays put.
func (s *LRSweeper) Step() {
	s.steps++
	if s.steps%s.interval != 0 {
		return
	}
	if s.index < len(s.values)-1 {
		s.index++
		s.setLR()
	}
}

func (s *LRSweeper) setLR() {
	s.lr = s.values[s.index]
	s.optimizer.SetLR(s.lr)
}

// Get returns the last learning rate assigned to the optimizer.
func (s *LRSweeper) Get() float32 {
	return s.lr
}

// Steps returns the number of steps taken so far.
func (s *LRSweeper) Steps() int {
	return s.steps
}
