// Copyright 2025 Tauq ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rl provides training utilities for quantile-regression
// reinforcement-learning agents.
//
// The package covers the numeric core of a distributional RL training loop:
//   - QuantileHuberLoss and HuberLoss for TD-error objectives
//   - EvaluateQuantileAtAction for per-action quantile selection
//   - UpdateParams and DisableGradients for gradient-update plumbing
//   - RunningMeanStats, Annealer, and LRSweeper for loop bookkeeping
//
// Example:
//
//	backend.Tape().StartRecording()
//	current := rl.EvaluateQuantileAtAction(onlineNet.Forward(states), actions)
//	tdErrors := target.Sub(current)
//	loss := rl.QuantileHuberLoss(tdErrors, taus, 1.0)
//	rl.UpdateParams(optimizer, loss, []nn.Module[B]{onlineNet}, rl.UpdateOpts{GradClip: 10})
package rl

import (
	"github.com/tauq-ml/tauq/internal/autodiff"
	"github.com/tauq-ml/tauq/internal/nn"
	"github.com/tauq-ml/tauq/internal/optim"
	"github.com/tauq-ml/tauq/internal/rl"
	"github.com/tauq-ml/tauq/internal/tensor"
)

// Losses

// HuberLoss computes the element-wise Huber loss of the TD errors.
// kappa must be positive.
func HuberLoss[B tensor.Backend](tdErrors *tensor.Tensor[float32, B], kappa float32) *tensor.Tensor[float32, B] {
	return rl.HuberLoss(tdErrors, kappa)
}

// QuantileHuberLoss computes the quantile Huber loss used to train
// distributional value estimators. Returns a 0-D scalar tensor.
//
// Shapes:
//   - tdErrors: (batch, num_taus, num_target_taus)
//   - taus: (batch, num_taus, 1), broadcast along the last axis
func QuantileHuberLoss[B tensor.Backend](
	tdErrors, taus *tensor.Tensor[float32, B],
	kappa float32,
) *tensor.Tensor[float32, B] {
	return rl.QuantileHuberLoss(tdErrors, taus, kappa)
}

// Quantile selection

// EvaluateQuantileAtAction gathers, for each batch element, the quantile
// slice corresponding to the chosen action.
//
// quantiles has shape (batch, num_taus, num_actions), actions has shape
// (batch, 1); the result has shape (batch, num_taus, 1).
func EvaluateQuantileAtAction[B tensor.Backend](
	quantiles *tensor.Tensor[float32, B],
	actions *tensor.Tensor[int32, B],
) *tensor.Tensor[float32, B] {
	return rl.EvaluateQuantileAtAction(quantiles, actions)
}

// Gradient updates

// UpdateOpts controls a single gradient update.
type UpdateOpts = rl.UpdateOpts

// UpdateParams performs one gradient update from a scalar loss: clears
// accumulated gradients, backpropagates, optionally clips each network's
// gradient norm, then applies one optimizer step.
func UpdateParams[B autodiff.BackwardCapable](
	optimizer optim.Optimizer,
	loss *tensor.Tensor[float32, B],
	networks []nn.Module[B],
	opts UpdateOpts,
) {
	rl.UpdateParams(optimizer, loss, networks, opts)
}

// DisableGradients marks every parameter of the network as non-trainable.
// This is how target networks stay fixed between syncs.
func DisableGradients[B tensor.Backend](network nn.Module[B]) {
	rl.DisableGradients(network)
}

// Loop bookkeeping

// RunningMeanStats tracks the arithmetic mean over a bounded FIFO window.
type RunningMeanStats = rl.RunningMeanStats

// NewRunningMeanStats creates a tracker with a window of n samples.
func NewRunningMeanStats(n int) *RunningMeanStats {
	return rl.NewRunningMeanStats(n)
}

// Annealer linearly interpolates a scalar hyperparameter over a fixed number
// of steps.
type Annealer = rl.Annealer

// NewAnnealer creates a linear annealer.
func NewAnnealer(startValue, endValue float64, numSteps int) *Annealer {
	return rl.NewAnnealer(startValue, endValue, numSteps)
}

// LRSweeper steps an optimizer's learning rate through a fixed ordered
// sequence of values.
type LRSweeper = rl.LRSweeper

// NewLRSweeper creates a sweeper and immediately applies the first value to
// the optimizer.
func NewLRSweeper(optimizer optim.Optimizer, values []float32, interval int) *LRSweeper {
	return rl.NewLRSweeper(optimizer, values, interval)
}
