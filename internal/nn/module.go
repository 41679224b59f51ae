// Package nn implements neural network modules.
//
// This package provides the building blocks used by the training utilities:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters with gradient tracking and freezing
//   - Linear: Fully connected layer
//   - ReLU activation
//   - Sequential: Container for stacking layers
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/tauq-ml/tauq/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build architectures:
//
//	model := nn.NewSequential[B](
//	    nn.NewLinear(4, 64, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(64, 8, backend),
//	)
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without parameters
	// (e.g. activations) return an empty slice.
	Parameters() []*Parameter[B]
}
