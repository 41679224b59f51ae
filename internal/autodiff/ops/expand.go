package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// ExpandOp represents a broadcast to a larger shape: output = expand(x, shape).
//
// Backward:
//
//	Each input element was replicated across the expanded dimensions, so its
//	gradient is the sum of the output gradients over those dimensions:
//	grad_x = reduceBroadcast(grad_out, x.shape)
type ExpandOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(x, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward sums the gradient back to the input shape.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradX := reduceBroadcast(outputGrad, op.inputs[0].Shape(), backend)
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *ExpandOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *ExpandOp) Output() *tensor.RawTensor {
	return op.output
}
