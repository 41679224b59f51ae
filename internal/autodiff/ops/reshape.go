package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// ReshapeOp represents a shape change that preserves element order:
// Reshape, Unsqueeze and Squeeze all record this op.
//
// Backward:
//
//	grad_x = reshape(grad_out, x.shape)
//
// Recording matters even for "view" operations: the backend materializes a
// new tensor, and without the op on tape the gradient would stop at the
// reshaped copy instead of flowing back to the original parameter.
type ReshapeOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(x, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward reshapes the gradient back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradX := backend.Reshape(outputGrad, op.inputs[0].Shape())
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *ReshapeOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *ReshapeOp) Output() *tensor.RawTensor {
	return op.output
}
