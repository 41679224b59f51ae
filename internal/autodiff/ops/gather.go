package ops

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// GatherOp represents a gather operation that selects elements along a dimension.
//
// Forward: output = Gather(input, dim, index)
//
// Backward:
//
//	Scatter-add gradOutput into a zero gradInput at the positions named by
//	index. Multiple indices pointing at the same position accumulate.
//
// Example:
//
//	input: [10, 20, 30, 40]
//	index: [2, 0, 3] along dim=0
//	output: [30, 10, 40]
//	gradInput: [dL/d10, 0, dL/d30, dL/d40]
type GatherOp struct {
	input  *tensor.RawTensor
	dim    int
	index  *tensor.RawTensor // int32 indices
	output *tensor.RawTensor
}

// NewGatherOp creates a new gather operation.
func NewGatherOp(input *tensor.RawTensor, dim int, index, output *tensor.RawTensor) *GatherOp {
	return &GatherOp{
		input:  input,
		dim:    dim,
		index:  index,
		output: output,
	}
}

// Inputs returns the input tensor. The index tensor has no gradient.
func (op *GatherOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *GatherOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward scatter-adds the output gradient back to the input positions.
func (op *GatherOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inputShape := op.input.Shape()
	ndim := len(inputShape)

	dim := op.dim
	if dim < 0 {
		dim += ndim
	}

	gradInput, err := tensor.NewRaw(inputShape, outputGrad.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("GatherOp.Backward: %v", err))
	}

	indices := op.index.AsInt32()
	switch outputGrad.DType() {
	case tensor.Float32:
		scatterAdd(gradInput.AsFloat32(), outputGrad.AsFloat32(), indices, outputGrad.Shape(), inputShape, dim)
	case tensor.Float64:
		scatterAdd(gradInput.AsFloat64(), outputGrad.AsFloat64(), indices, outputGrad.Shape(), inputShape, dim)
	default:
		panic(fmt.Sprintf("GatherOp.Backward: unsupported dtype %s", outputGrad.DType()))
	}

	return []*tensor.RawTensor{gradInput}
}

// scatterAdd accumulates src into dst at positions given by indices along dim.
// srcShape and the index shape are identical by the gather contract.
func scatterAdd[T float32 | float64](dst, src []T, indices []int32, srcShape, dstShape tensor.Shape, dim int) {
	ndim := len(srcShape)
	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	for i := range src {
		coords := make([]int, ndim)
		temp := i
		for d := 0; d < ndim; d++ {
			coords[d] = temp / srcStrides[d]
			temp %= srcStrides[d]
		}

		idx := int(indices[i])
		if idx < 0 || idx >= dstShape[dim] {
			panic(fmt.Sprintf("scatterAdd: index %d out of bounds [0, %d)", idx, dstShape[dim]))
		}

		dstIdx := 0
		for d := 0; d < ndim; d++ {
			if d == dim {
				dstIdx += idx * dstStrides[d]
			} else {
				dstIdx += coords[d] * dstStrides[d]
			}
		}

		dst[dstIdx] += src[i]
	}
}
