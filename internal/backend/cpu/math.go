package cpu

import (
	"fmt"
	"math"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// Math operations - element-wise unary functions.

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("abs: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		xData := x.AsFloat32()
		resultData := result.AsFloat32()
		for i, v := range xData {
			if v < 0 {
				resultData[i] = -v
			} else {
				resultData[i] = v
			}
		}
	case tensor.Float64:
		xData := x.AsFloat64()
		resultData := result.AsFloat64()
		for i, v := range xData {
			resultData[i] = math.Abs(v)
		}
	default:
		panic(fmt.Sprintf("abs: unsupported dtype %s", x.DType()))
	}

	return result
}

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sqrt: failed to create result tensor: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		xData := x.AsFloat32()
		resultData := result.AsFloat32()
		for i, v := range xData {
			resultData[i] = float32(math.Sqrt(float64(v)))
		}
	case tensor.Float64:
		xData := x.AsFloat64()
		resultData := result.AsFloat64()
		for i, v := range xData {
			resultData[i] = math.Sqrt(v)
		}
	default:
		panic(fmt.Sprintf("sqrt: unsupported dtype %s", x.DType()))
	}

	return result
}
