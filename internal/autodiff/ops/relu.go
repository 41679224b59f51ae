package ops

import "github.com/tauq-ml/tauq/internal/tensor"

// ReLUForward computes max(0, x) into a fresh tensor.
func ReLUForward(x *tensor.RawTensor, device tensor.Device) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), device)
	if err != nil {
		panic("ReLUForward: " + err.Error())
	}

	switch x.DType() {
	case tensor.Float32:
		xData := x.AsFloat32()
		resData := result.AsFloat32()
		for i, v := range xData {
			if v > 0 {
				resData[i] = v
			}
		}
	case tensor.Float64:
		xData := x.AsFloat64()
		resData := result.AsFloat64()
		for i, v := range xData {
			if v > 0 {
				resData[i] = v
			}
		}
	default:
		panic("ReLUForward: unsupported dtype " + x.DType().String())
	}

	return result
}

// ReLUOp represents a rectified linear unit activation: output = max(0, x).
//
// Backward:
//
//	grad_x = grad_out where x > 0, else 0.
type ReLUOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // max(0, x)
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(x, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward masks the gradient where the input was non-positive.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	zeros := zerosLike(x, backend.Device())
	mask := backend.Greater(x, zeros)
	gradX := backend.Where(mask, outputGrad, zerosLike(outputGrad, backend.Device()))
	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *ReLUOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor max(0, x).
func (op *ReLUOp) Output() *tensor.RawTensor {
	return op.output
}
