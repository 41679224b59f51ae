package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// SumOp represents a full reduction to a 0-D scalar: y = sum(x).
//
// Backward:
//
//	grad_x[i] = grad_y for every i.
type SumOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // 0-D
}

// NewSumOp creates a new SumOp.
func NewSumOp(x, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward broadcasts the scalar gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradX := fillLike(op.inputs[0], scalarValue(outputGrad))
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the 0-D output tensor.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}

// MeanOp represents a full reduction to a 0-D scalar: y = mean(x).
//
// Backward:
//
//	grad_x[i] = grad_y / numElements for every i.
type MeanOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // 0-D
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(x, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward spreads the scalar gradient uniformly over the input.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	gradX := fillLike(x, scalarValue(outputGrad)/float64(x.NumElements()))
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *MeanOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the 0-D output tensor.
func (op *MeanOp) Output() *tensor.RawTensor {
	return op.output
}

// scalarValue reads the single element of a 0-D (or one-element) tensor.
func scalarValue(t *tensor.RawTensor) float64 {
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0])
	case tensor.Float64:
		return t.AsFloat64()[0]
	default:
		panic("scalarValue: unsupported dtype " + t.DType().String())
	}
}

// fillLike creates a tensor with x's shape and dtype filled with value.
func fillLike(x *tensor.RawTensor, value float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), x.Device())
	if err != nil {
		panic("fillLike: " + err.Error())
	}
	switch x.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		v := float32(value)
		for i := range data {
			data[i] = v
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = value
		}
	default:
		panic("fillLike: unsupported dtype " + x.DType().String())
	}
	return result
}
