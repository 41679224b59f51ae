package cpu

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// Cast converts a tensor to a different dtype. Bool casts to 1/0, numeric
// casts truncate toward zero.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32(), func(v float32) float64 { return float64(v) })
	case tensor.Float64:
		castFrom(result, x.AsFloat64(), func(v float64) float64 { return v })
	case tensor.Int32:
		castFrom(result, x.AsInt32(), func(v int32) float64 { return float64(v) })
	case tensor.Int64:
		castFrom(result, x.AsInt64(), func(v int64) float64 { return float64(v) })
	case tensor.Bool:
		castFrom(result, x.AsBool(), func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return result
}

func castFrom[T any](dst *tensor.RawTensor, src []T, toFloat func(T) float64) {
	switch dst.DType() {
	case tensor.Float32:
		out := dst.AsFloat32()
		for i, v := range src {
			out[i] = float32(toFloat(v))
		}
	case tensor.Float64:
		out := dst.AsFloat64()
		for i, v := range src {
			out[i] = toFloat(v)
		}
	case tensor.Int32:
		out := dst.AsInt32()
		for i, v := range src {
			out[i] = int32(toFloat(v))
		}
	case tensor.Int64:
		out := dst.AsInt64()
		for i, v := range src {
			out[i] = int64(toFloat(v))
		}
	case tensor.Bool:
		out := dst.AsBool()
		for i, v := range src {
			out[i] = toFloat(v) != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dst.DType()))
	}
}
