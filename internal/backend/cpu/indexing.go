package cpu

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// Gather selects elements along dim using an index tensor, like
// torch.gather(input, dim, index).
//
// The index tensor must have dtype int32 and its shape must match the input
// shape except at the gather dimension, where it can differ.
//
// Example:
//
//	input: (32, 8, 4) quantiles per action
//	index: (32, 8, 1) chosen action per batch row
//	dim:   2
//	output: (32, 8, 1) where output[i,j,k] = input[i,j,index[i,j,k]]
func (cpu *CPUBackend) Gather(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	if index.DType() != tensor.Int32 {
		panic(fmt.Sprintf("gather: index tensor must have dtype int32, got %s", index.DType()))
	}

	ndim := len(x.Shape())
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("gather: invalid dim %d for %dD tensor", dim, ndim))
	}

	indexShape := index.Shape()
	if len(indexShape) != ndim {
		panic(fmt.Sprintf("gather: index rank %d != input rank %d", len(indexShape), ndim))
	}
	for i := 0; i < ndim; i++ {
		if i != dim && indexShape[i] != x.Shape()[i] {
			panic(fmt.Sprintf("gather: index shape mismatch at dim %d: %d != %d",
				i, indexShape[i], x.Shape()[i]))
		}
	}

	result, err := tensor.NewRaw(indexShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("gather: failed to create result tensor: %v", err))
	}

	indices := index.AsInt32()
	switch x.DType() {
	case tensor.Float32:
		gatherData(result.AsFloat32(), x.AsFloat32(), indices, x.Shape(), indexShape, dim)
	case tensor.Float64:
		gatherData(result.AsFloat64(), x.AsFloat64(), indices, x.Shape(), indexShape, dim)
	case tensor.Int32:
		gatherData(result.AsInt32(), x.AsInt32(), indices, x.Shape(), indexShape, dim)
	case tensor.Int64:
		gatherData(result.AsInt64(), x.AsInt64(), indices, x.Shape(), indexShape, dim)
	default:
		panic(fmt.Sprintf("gather: unsupported dtype %s", x.DType()))
	}

	return result
}

func gatherData[T float32 | float64 | int32 | int64](dst, src []T, indices []int32, srcShape, dstShape tensor.Shape, dim int) {
	ndim := len(srcShape)
	dstStrides := dstShape.ComputeStrides()
	srcStrides := srcShape.ComputeStrides()

	for i := range dst {
		// Convert flat index to multi-dimensional index
		multiIdx := make([]int, ndim)
		remaining := i
		for d := 0; d < ndim; d++ {
			multiIdx[d] = remaining / dstStrides[d]
			remaining %= dstStrides[d]
		}

		indexVal := int(indices[i])
		if indexVal < 0 || indexVal >= srcShape[dim] {
			panic(fmt.Sprintf("gather: index %d out of bounds [0, %d) at position %d",
				indexVal, srcShape[dim], i))
		}

		srcIdx := 0
		for d := 0; d < ndim; d++ {
			if d == dim {
				srcIdx += indexVal * srcStrides[d]
			} else {
				srcIdx += multiIdx[d] * srcStrides[d]
			}
		}

		dst[i] = src[srcIdx]
	}
}

// Where performs conditional element selection, like
// torch.where(condition, x, y). Broadcasting is supported across all three
// tensors.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must have dtype bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype: %s vs %s", x.DType(), y.DType()))
	}

	xyShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(condition.Shape(), xyShape)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: failed to create result tensor: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := computeBroadcastStridesForShape(condition.Shape(), outShape)
	xStrides := computeBroadcastStridesForShape(x.Shape(), outShape)
	yStrides := computeBroadcastStridesForShape(y.Shape(), outShape)
	condData := condition.AsBool()

	switch x.DType() {
	case tensor.Float32:
		whereData(result.AsFloat32(), condData, x.AsFloat32(), y.AsFloat32(),
			outShape, outStrides, condStrides, xStrides, yStrides)
	case tensor.Float64:
		whereData(result.AsFloat64(), condData, x.AsFloat64(), y.AsFloat64(),
			outShape, outStrides, condStrides, xStrides, yStrides)
	case tensor.Int32:
		whereData(result.AsInt32(), condData, x.AsInt32(), y.AsInt32(),
			outShape, outStrides, condStrides, xStrides, yStrides)
	case tensor.Int64:
		whereData(result.AsInt64(), condData, x.AsInt64(), y.AsInt64(),
			outShape, outStrides, condStrides, xStrides, yStrides)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}

	return result
}

func whereData[T float32 | float64 | int32 | int64](dst []T, cond []bool, x, y []T,
	outShape tensor.Shape, outStrides, condStrides, xStrides, yStrides []int,
) {
	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		condIdx := computeFlatIndex(i, outStrides, condStrides)
		if cond[condIdx] {
			dst[i] = x[computeFlatIndex(i, outStrides, xStrides)]
		} else {
			dst[i] = y[computeFlatIndex(i, outStrides, yStrides)]
		}
	}
}
