package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// WhereOp represents a conditional selection: output = where(cond, x, y).
//
// Backward:
//
//	grad_x = where(cond, grad_out, 0)
//	grad_y = where(cond, 0, grad_out)
//
// The condition tensor has no gradient (it's boolean).
type WhereOp struct {
	condition *tensor.RawTensor // bool tensor
	x         *tensor.RawTensor // "true" branch values
	y         *tensor.RawTensor // "false" branch values
	output    *tensor.RawTensor
}

// NewWhereOp creates a new where operation.
func NewWhereOp(condition, x, y, output *tensor.RawTensor) *WhereOp {
	return &WhereOp{
		condition: condition,
		x:         x,
		y:         y,
		output:    output,
	}
}

// Inputs returns the input tensors (x and y).
// The condition is not included as it has no gradient.
func (op *WhereOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.x, op.y}
}

// Output returns the output tensor.
func (op *WhereOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes gradients for x and y. Gradient flows to x only where the
// condition was true, to y only where it was false; broadcast inputs get
// their gradients summed back to the original shape.
func (op *WhereOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	zeros := zerosLike(outputGrad, backend.Device())

	gradX := backend.Where(op.condition, outputGrad, zeros)
	gradX = reduceBroadcast(gradX, op.x.Shape(), backend)

	gradY := backend.Where(op.condition, zeros, outputGrad)
	gradY = reduceBroadcast(gradY, op.y.Shape(), backend)

	return []*tensor.RawTensor{gradX, gradY}
}
