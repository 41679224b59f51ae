package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}

	// NewRaw zero-initializes memory
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var one T
	switch any(one).(type) {
	case bool:
		one = any(true).(T)
	case float32:
		one = any(float32(1)).(T)
	case float64:
		one = any(float64(1)).(T)
	case int32:
		one = any(int32(1)).(T)
	case int64:
		one = any(int64(1)).(T)
	case uint8:
		one = any(uint8(1)).(T)
	}
	return Full[T, B](shape, one, b)
}

// Full creates a tensor filled with the given value.
//
// Example:
//
//	kappas := tensor.Full[float32](Shape{32, 8, 8}, 1.0, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from a standard normal
// distribution. Only float32 and float64 are supported.
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)

	switch data := any(t.Data()).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(rand.NormFloat64())
		}
	case []float64:
		for i := range data {
			data[i] = rand.NormFloat64()
		}
	default:
		panic("randn: only float32 and float64 are supported")
	}

	return t
}

// Arange creates a 1-D tensor with values [start, start+1, ..., end-1].
//
// Example:
//
//	idx := tensor.Arange[int32](0, 8, backend) // [0, 1, ..., 7]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var n int
	switch any(start).(type) {
	case float32:
		n = int(any(end).(float32) - any(start).(float32))
	case float64:
		n = int(any(end).(float64) - any(start).(float64))
	case int32:
		n = int(any(end).(int32) - any(start).(int32))
	case int64:
		n = int(any(end).(int64) - any(start).(int64))
	default:
		panic("arange: unsupported type")
	}
	if n <= 0 {
		panic(fmt.Sprintf("arange: end must be greater than start, got [%v, %v)", start, end))
	}

	t := Zeros[T, B](Shape{n}, b)

	switch data := any(t.Data()).(type) {
	case []float32:
		s := any(start).(float32)
		for i := range data {
			data[i] = s + float32(i)
		}
	case []float64:
		s := any(start).(float64)
		for i := range data {
			data[i] = s + float64(i)
		}
	case []int32:
		s := any(start).(int32)
		for i := range data {
			data[i] = s + int32(i)
		}
	case []int64:
		s := any(start).(int64)
		for i := range data {
			data[i] = s + int64(i)
		}
	}

	return t
}

// Linspace creates a 1-D float tensor with n evenly spaced values in
// [start, end]. Useful for building fixed quantile fraction grids.
//
// Example:
//
//	taus := tensor.Linspace[float32](0.0625, 0.9375, 8, backend)
func Linspace[T DType, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	if n <= 0 {
		panic(fmt.Sprintf("linspace: n must be positive, got %d", n))
	}

	t := Zeros[T, B](Shape{n}, b)

	switch data := any(t.Data()).(type) {
	case []float32:
		s := any(start).(float32)
		e := any(end).(float32)
		if n == 1 {
			data[0] = s
			break
		}
		step := (e - s) / float32(n-1)
		for i := range data {
			data[i] = s + float32(i)*step
		}
	case []float64:
		s := any(start).(float64)
		e := any(end).(float64)
		if n == 1 {
			data[0] = s
			break
		}
		step := (e - s) / float64(n-1)
		for i := range data {
			data[i] = s + float64(i)*step
		}
	default:
		panic("linspace: only float32 and float64 are supported")
	}

	return t
}
