package cpu

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// Reduction operations.

// Sum computes the sum of all elements, returning a 0-dimensional tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var total float64
		for _, v := range x.AsFloat32() {
			total += float64(v)
		}
		result.AsFloat32()[0] = float32(total)
	case tensor.Float64:
		var total float64
		for _, v := range x.AsFloat64() {
			total += v
		}
		result.AsFloat64()[0] = total
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// Mean computes the arithmetic mean of all elements, returning a
// 0-dimensional tensor.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	n := x.Shape().NumElements()
	if n == 0 {
		panic("mean: cannot reduce an empty tensor")
	}

	result := cpu.Sum(x)
	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] /= float32(n)
	case tensor.Float64:
		result.AsFloat64()[0] /= float64(n)
	}

	return result
}

// SumDim sums along a single dimension. With keepDim the reduced dimension
// is kept with size 1, otherwise it is removed from the output shape.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("sumDim", x, dim, keepDim, false)
}

// MeanDim averages along a single dimension. With keepDim the reduced
// dimension is kept with size 1, otherwise it is removed from the output
// shape.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("meanDim", x, dim, keepDim, true)
}

func (cpu *CPUBackend) reduceDim(name string, x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: invalid dim %d for %dD tensor", name, dim, ndim))
	}

	outShape := reducedShape(shape, dim, keepDim)

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	// Split the index space into outer (dims before dim), the reduced dim,
	// and inner (dims after dim). Input layout is row-major, so
	// flat = (outer*dimSize + d)*inner + i.
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	dimSize := shape[dim]
	inner := 1
	for i := dim + 1; i < ndim; i++ {
		inner *= shape[i]
	}

	switch x.DType() {
	case tensor.Float32:
		reduceDimData(result.AsFloat32(), x.AsFloat32(), outer, dimSize, inner, mean)
	case tensor.Float64:
		reduceDimData(result.AsFloat64(), x.AsFloat64(), outer, dimSize, inner, mean)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func reduceDimData[T float32 | float64](dst, src []T, outer, dimSize, inner int, mean bool) {
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var total float64
			base := o * dimSize * inner
			for d := 0; d < dimSize; d++ {
				total += float64(src[base+d*inner+i])
			}
			if mean {
				total /= float64(dimSize)
			}
			dst[o*inner+i] = T(total)
		}
	}
}

func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, s := range shape {
		if i != dim {
			out = append(out, s)
		}
	}
	return out
}
