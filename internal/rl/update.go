package rl

import (
	"github.com/tauq-ml/tauq/internal/autodiff"
	"github.com/tauq-ml/tauq/internal/nn"
	"github.com/tauq-ml/tauq/internal/optim"
	"github.com/tauq-ml/tauq/internal/tensor"
)

// UpdateOpts controls a single gradient update.
type UpdateOpts struct {
	// RetainGraph keeps the recorded tape after the update so another
	// backward pass can reuse it. When false the tape is cleared.
	RetainGraph bool

	// GradClip, when positive, clips each network's gradient global L2 norm
	// to this value before the optimizer step.
	GradClip float32
}

// UpdateParams performs one gradient update from a scalar loss:
// clears accumulated gradients, backpropagates through the recorded tape,
// optionally clips each network's gradient norm, then applies one optimizer
// step.
//
// Side effects: mutates optimizer state and network parameters, and clears
// the tape unless opts.RetainGraph is set.
//
// Example:
//
//	backend.Tape().StartRecording()
//	loss := rl.QuantileHuberLoss(tdErrors, taus, 1.0)
//	rl.UpdateParams(optimizer, loss, []nn.Module[B]{net}, rl.UpdateOpts{GradClip: 10})
func UpdateParams[B autodiff.BackwardCapable](
	optimizer optim.Optimizer,
	loss *tensor.Tensor[float32, B],
	networks []nn.Module[B],
	opts UpdateOpts,
) {
	optimizer.ZeroGrad()

	backend := loss.Backend()
	grads := autodiff.Backward(loss, backend)

	if opts.GradClip > 0 {
		for _, network := range networks {
			optim.ClipGradNorm(network.Parameters(), grads, opts.GradClip)
		}
	}

	optimizer.Step(grads)

	if !opts.RetainGraph {
		backend.GetTape().Clear()
	}
}

// DisableGradients marks every parameter of the network as non-trainable.
// Frozen parameters keep their values during optimizer steps; this is how
// target networks stay fixed between syncs.
func DisableGradients[B tensor.Backend](network nn.Module[B]) {
	for _, param := range network.Parameters() {
		param.Freeze()
	}
}
