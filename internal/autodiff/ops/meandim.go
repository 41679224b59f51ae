package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// MeanDimOp represents a mean reduction along one dimension.
//
// Forward:
//
//	y = mean(x, dim, keepDim)
//
// Backward:
//
//	Like SumDimOp, but each element contributed with weight 1/n where n is
//	the size of the reduced dimension:
//	grad_x = broadcast(grad_y, x.shape) / n
type MeanDimOp struct {
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewMeanDimOp creates a new MeanDimOp.
func NewMeanDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *MeanDimOp {
	return &MeanDimOp{
		inputs:  []*tensor.RawTensor{x},
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the scaled output gradient back to the input shape.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]

	dim := op.dim
	if dim < 0 {
		dim += len(x.Shape())
	}
	n := x.Shape()[dim]

	grad := outputGrad
	if !op.keepDim {
		grad = unsqueezeDim(grad, dim, backend)
	}
	gradX := broadcastTo(grad, x.Shape(), backend)

	switch gradX.DType() {
	case tensor.Float64:
		gradX = backend.DivScalar(gradX, float64(n))
	default:
		gradX = backend.DivScalar(gradX, float32(n))
	}

	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *MeanDimOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *MeanDimOp) Output() *tensor.RawTensor {
	return op.output
}
