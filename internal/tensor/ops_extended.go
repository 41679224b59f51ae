package tensor

// Extended operation methods: scalar arithmetic, elementwise math,
// comparisons, indexing, reductions, and dtype casts. Each delegates to the
// backend, which may record the operation for autodiff.

// MulScalar multiplies each element by a scalar.
//
// Example:
//
//	half := errors.MulScalar(0.5)
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// AddScalar adds a scalar to each element.
func (t *Tensor[T, B]) AddScalar(scalar T) *Tensor[T, B] {
	result := t.backend.AddScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// SubScalar subtracts a scalar from each element.
func (t *Tensor[T, B]) SubScalar(scalar T) *Tensor[T, B] {
	result := t.backend.SubScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides each element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar T) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Abs computes the element-wise absolute value.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	result := t.backend.Abs(t.raw)
	return New[T, B](result, t.backend)
}

// Sqrt computes the element-wise square root.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	result := t.backend.Sqrt(t.raw)
	return New[T, B](result, t.backend)
}

// Greater returns a bool tensor with a[i] > b[i].
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Greater(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Gt is a shorthand alias for Greater.
func (t *Tensor[T, B]) Gt(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.Greater(other)
}

// Lower returns a bool tensor with a[i] < b[i].
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.Lower(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Lt is a shorthand alias for Lower.
func (t *Tensor[T, B]) Lt(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.Lower(other)
}

// GreaterEqual returns a bool tensor with a[i] >= b[i].
func (t *Tensor[T, B]) GreaterEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.GreaterEqual(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Ge is a shorthand alias for GreaterEqual.
func (t *Tensor[T, B]) Ge(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.GreaterEqual(other)
}

// LowerEqual returns a bool tensor with a[i] <= b[i].
func (t *Tensor[T, B]) LowerEqual(other *Tensor[T, B]) *Tensor[bool, B] {
	result := t.backend.LowerEqual(t.raw, other.raw)
	return New[bool, B](result, t.backend)
}

// Le is a shorthand alias for LowerEqual.
func (t *Tensor[T, B]) Le(other *Tensor[T, B]) *Tensor[bool, B] {
	return t.LowerEqual(other)
}

// Gather selects elements along dim using an index tensor.
//
// The index tensor must have the same rank as the input and matching sizes
// on every dimension except dim. The output has the index tensor's shape.
//
// Example (quantiles at chosen actions):
//
//	q := tensor.Randn[float32](Shape{32, 8, 4}, backend) // (batch, taus, actions)
//	idx := ...                                           // (32, 8, 1) int32
//	sa := q.Gather(2, idx)                               // (32, 8, 1)
func (t *Tensor[T, B]) Gather(dim int, index *Tensor[int32, B]) *Tensor[T, B] {
	result := t.backend.Gather(t.raw, dim, index.raw)
	return New[T, B](result, t.backend)
}

// Expand broadcasts the tensor to the given shape without copying semantics
// of size-1 dimensions.
func (t *Tensor[T, B]) Expand(shape Shape) *Tensor[T, B] {
	result := t.backend.Expand(t.raw, shape)
	return New[T, B](result, t.backend)
}

// Sum reduces all elements to a 0-D scalar tensor.
func (t *Tensor[T, B]) Sum() *Tensor[T, B] {
	result := t.backend.Sum(t.raw)
	return New[T, B](result, t.backend)
}

// Mean reduces all elements to their arithmetic mean as a 0-D scalar tensor.
func (t *Tensor[T, B]) Mean() *Tensor[T, B] {
	result := t.backend.Mean(t.raw)
	return New[T, B](result, t.backend)
}

// SumDim sums along a dimension. With keepDim the reduced dimension is kept
// as size 1; otherwise it is removed.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.SumDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// MeanDim averages along a dimension. With keepDim the reduced dimension is
// kept as size 1; otherwise it is removed.
func (t *Tensor[T, B]) MeanDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.MeanDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// Int32 casts the tensor to int32.
func (t *Tensor[T, B]) Int32() *Tensor[int32, B] {
	result := t.backend.Cast(t.raw, Int32)
	return New[int32, B](result, t.backend)
}

// Float32 casts the tensor to float32.
func (t *Tensor[T, B]) Float32() *Tensor[float32, B] {
	result := t.backend.Cast(t.raw, Float32)
	return New[float32, B](result, t.backend)
}

// Float64 casts the tensor to float64.
func (t *Tensor[T, B]) Float64() *Tensor[float64, B] {
	result := t.backend.Cast(t.raw, Float64)
	return New[float64, B](result, t.backend)
}
