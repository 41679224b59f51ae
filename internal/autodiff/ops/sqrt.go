package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// SqrtOp represents an element-wise square root: output = √x.
//
// Backward pass:
//
//	grad_x = outputGrad / (2 * √x) = outputGrad / (2 * output)
type SqrtOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // √x
}

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(x, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient for square root.
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var twice *tensor.RawTensor
	switch op.output.DType() {
	case tensor.Float64:
		twice = backend.MulScalar(op.output, float64(2))
	default:
		twice = backend.MulScalar(op.output, float32(2))
	}
	gradX := backend.Div(outputGrad, twice)
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *SqrtOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor √x.
func (op *SqrtOp) Output() *tensor.RawTensor {
	return op.output
}
