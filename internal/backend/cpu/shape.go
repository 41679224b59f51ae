package cpu

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// Shape manipulation operations.

// Expand broadcasts a tensor to a larger shape. Only size-1 dimensions can
// expand, and dimensions can be prepended on the left. The result is
// materialized as a new contiguous tensor.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	inShape := x.Shape()
	if len(shape) < len(inShape) {
		panic(fmt.Sprintf("expand: target rank %d < input rank %d", len(shape), len(inShape)))
	}

	offset := len(shape) - len(inShape)
	for i, s := range inShape {
		if s != 1 && s != shape[offset+i] {
			panic(fmt.Sprintf("expand: cannot expand dim %d from %d to %d", i, s, shape[offset+i]))
		}
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("expand: failed to create result tensor: %v", err))
	}

	outStrides := shape.ComputeStrides()
	inStrides := computeBroadcastStridesForShape(inShape, shape)
	n := shape.NumElements()

	switch x.DType() {
	case tensor.Float32:
		expandData(result.AsFloat32(), x.AsFloat32(), n, outStrides, inStrides)
	case tensor.Float64:
		expandData(result.AsFloat64(), x.AsFloat64(), n, outStrides, inStrides)
	case tensor.Int32:
		expandData(result.AsInt32(), x.AsInt32(), n, outStrides, inStrides)
	case tensor.Int64:
		expandData(result.AsInt64(), x.AsInt64(), n, outStrides, inStrides)
	case tensor.Bool:
		expandData(result.AsBool(), x.AsBool(), n, outStrides, inStrides)
	default:
		panic(fmt.Sprintf("expand: unsupported dtype %s", x.DType()))
	}

	return result
}

func expandData[T any](dst, src []T, n int, outStrides, inStrides []int) {
	for i := 0; i < n; i++ {
		dst[i] = src[computeFlatIndex(i, outStrides, inStrides)]
	}
}

// Unsqueeze inserts a size-1 dimension at the given position.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim + 1
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: invalid dim %d for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)

	return cpu.Reshape(x, newShape)
}

// Squeeze removes a size-1 dimension at the given position.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("squeeze: invalid dim %d for %dD tensor", dim, ndim))
	}
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dim %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, ndim-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)

	return cpu.Reshape(x, newShape)
}
