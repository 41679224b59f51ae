package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// AbsOp represents an element-wise absolute value: output = |x|.
//
// Backward pass:
//
//	grad_x = outputGrad * sign(x)
//
// The gradient at x == 0 is defined as 0, matching the subgradient
// convention most frameworks use.
type AbsOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // |x|
}

// NewAbsOp creates a new AbsOp.
func NewAbsOp(x, output *tensor.RawTensor) *AbsOp {
	return &AbsOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient for absolute value.
func (op *AbsOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	zeros := zerosLike(x, backend.Device())
	gradZeros := zerosLike(outputGrad, backend.Device())

	// where(x > 0, grad, where(x < 0, -grad, 0))
	negGrad := negate(outputGrad, backend)
	negativeBranch := backend.Where(backend.Lower(x, zeros), negGrad, gradZeros)
	gradX := backend.Where(backend.Greater(x, zeros), outputGrad, negativeBranch)

	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *AbsOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor |x|.
func (op *AbsOp) Output() *tensor.RawTensor {
	return op.output
}
