// Copyright 2025 Tauq ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation
// (backpropagation) using a gradient tape. It wraps any backend to add
// autodiff capabilities.
//
// Example:
//
//	import (
//	    "github.com/tauq-ml/tauq/autodiff"
//	    "github.com/tauq-ml/tauq/backend/cpu"
//	    "github.com/tauq-ml/tauq/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//
//	    backend.Tape().StartRecording()
//	    x := tensor.Randn[float32](tensor.Shape{2, 3}, backend)
//	    loss := x.Mul(x).Mean()
//
//	    grads := autodiff.Backward(loss, backend)
//	    _ = grads[x.Raw()]
//	}
package autodiff

import (
	"github.com/tauq-ml/tauq/internal/autodiff"
	"github.com/tauq-ml/tauq/internal/tensor"
)

// Backend is the autodiff-enabled backend.
type Backend[B tensor.Backend] = autodiff.AutodiffBackend[B]

// New creates a new autodiff backend wrapping the given backend.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable interface for backends that support backpropagation.
type BackwardCapable = autodiff.BackwardCapable

// Backward computes gradients via backpropagation.
//
// Returns a map from each input RawTensor to its gradient.
func Backward[T tensor.DType, B BackwardCapable](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
