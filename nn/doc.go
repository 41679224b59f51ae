// Copyright 2025 Tauq ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Tauq framework.
//
// The package exposes modules (Linear, ReLU, Sequential), trainable
// parameters, and weight initialization functions.
//
// Example:
//
//	import (
//	    "github.com/tauq-ml/tauq/autodiff"
//	    "github.com/tauq-ml/tauq/backend/cpu"
//	    "github.com/tauq-ml/tauq/nn"
//	)
//
//	type B = *autodiff.Backend[*cpu.Backend]
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    model := nn.NewSequential[B](
//	        nn.NewLinear(4, 64, backend),
//	        nn.NewReLU[B](),
//	        nn.NewLinear(64, 8, backend),
//	    )
//	    _ = model
//	}
package nn
