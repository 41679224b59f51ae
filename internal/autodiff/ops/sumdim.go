package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// SumDimOp represents a sum reduction along one dimension.
//
// Forward:
//
//	y = sum(x, dim, keepDim)
//
// Backward:
//
//	Each input element contributes with weight 1, so the gradient is the
//	output gradient broadcast back to the input shape. With keepDim=false
//	the reduced dimension is restored first so broadcasting lines up.
type SumDimOp struct {
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{
		inputs:  []*tensor.RawTensor{x},
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the output gradient back to the input shape.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	grad := outputGrad
	if !op.keepDim {
		grad = unsqueezeDim(grad, op.dim, backend)
	}
	gradX := broadcastTo(grad, x.Shape(), backend)
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}
