package tensor

// Unsqueeze adds a dimension of size 1 at the given position.
//
// Example:
//
//	actions := ... // Shape: [32, 1]
//	idx := actions.Unsqueeze(2) // Shape: [32, 1, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the given position.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Where performs conditional element selection with broadcasting:
// result[i] = x[i] if cond[i] else y[i].
//
// This is the workhorse of piecewise losses:
//
//	loss := tensor.Where(absErr.Le(kappas), quadratic, linear)
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	result := x.backend.Where(cond.raw, x.raw, y.raw)
	return New[T, B](result, x.backend)
}
