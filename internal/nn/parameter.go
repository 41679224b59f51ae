package nn

import (
	"github.com/tauq-ml/tauq/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors that require gradient computation during training.
// A parameter can be frozen, which excludes it from optimizer updates; this
// is how target networks are kept fixed between syncs.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad() // after backward pass
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B] // computed during backward pass
	frozen bool                       // excluded from optimizer updates
}

// NewParameter creates a new trainable parameter.
//
// The tensor should be initialized before creating the Parameter.
// Gradient is allocated during the first backward pass.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient tensor, or nil if no gradient has been
// computed yet.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
// This is typically called by the optimizer or during the backward pass.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
// Call before each training iteration to avoid accumulating gradients
// from previous iterations.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}

// Freeze marks the parameter as non-trainable. Frozen parameters keep their
// values during optimizer steps and accumulate no gradients.
func (p *Parameter[B]) Freeze() {
	p.frozen = true
	p.grad = nil
}

// Unfreeze marks the parameter as trainable again.
func (p *Parameter[B]) Unfreeze() {
	p.frozen = false
}

// Frozen reports whether the parameter is excluded from training.
func (p *Parameter[B]) Frozen() bool {
	return p.frozen
}
