// Copyright 2025 Tauq ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// The CPU backend implements every operation of the tensor.Backend interface
// without cgo or external dependencies: element-wise arithmetic with
// broadcasting, matrix multiplication, comparisons, gather/where indexing,
// reductions, and dtype casts.
//
// Example:
//
//	import (
//	    "github.com/tauq-ml/tauq/backend/cpu"
//	    "github.com/tauq-ml/tauq/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
package cpu
