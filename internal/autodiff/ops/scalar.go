package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// Scalar operations share one op type: the scalar is a constant, so the
// gradient only depends on which arithmetic was applied.

// scalarKind identifies the arithmetic applied by a ScalarOp.
type scalarKind int

const (
	scalarMul scalarKind = iota
	scalarAdd
	scalarSub
	scalarDiv
)

// ScalarOp represents an element-wise operation with a scalar constant.
//
// Backward pass:
//   - mul: grad_x = outputGrad * scalar
//   - add: grad_x = outputGrad
//   - sub: grad_x = outputGrad
//   - div: grad_x = outputGrad / scalar
type ScalarOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
	scalar any
	kind   scalarKind
}

// NewMulScalarOp creates an op for output = x * scalar.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return newScalarOp(x, output, scalar, scalarMul)
}

// NewAddScalarOp creates an op for output = x + scalar.
func NewAddScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return newScalarOp(x, output, scalar, scalarAdd)
}

// NewSubScalarOp creates an op for output = x - scalar.
func NewSubScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return newScalarOp(x, output, scalar, scalarSub)
}

// NewDivScalarOp creates an op for output = x / scalar.
func NewDivScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return newScalarOp(x, output, scalar, scalarDiv)
}

func newScalarOp(x, output *tensor.RawTensor, scalar any, kind scalarKind) *ScalarOp {
	return &ScalarOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
		scalar: scalar,
		kind:   kind,
	}
}

// Backward computes the input gradient.
func (op *ScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var gradX *tensor.RawTensor
	switch op.kind {
	case scalarMul:
		gradX = backend.MulScalar(outputGrad, op.scalar)
	case scalarDiv:
		gradX = backend.DivScalar(outputGrad, op.scalar)
	default: // add, sub: gradient passes through unchanged
		gradX = outputGrad.Clone()
	}
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *ScalarOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *ScalarOp) Output() *tensor.RawTensor {
	return op.output
}
