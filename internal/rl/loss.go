// Package rl implements training utilities for quantile-regression
// reinforcement-learning agents: the quantile Huber loss, per-action
// quantile selection, gradient-update plumbing, and the small scalar
// trackers and schedulers used by a training loop.
package rl

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// HuberLoss computes the element-wise Huber loss of the TD errors:
//
//	0.5 * e²                  when |e| <= kappa
//	kappa * (|e| - 0.5*kappa) otherwise
//
// The two branches agree at |e| = kappa, so the loss is continuous.
// kappa must be positive.
func HuberLoss[B tensor.Backend](tdErrors *tensor.Tensor[float32, B], kappa float32) *tensor.Tensor[float32, B] {
	if kappa <= 0 {
		panic(fmt.Sprintf("HuberLoss: kappa must be positive, got %v", kappa))
	}

	backend := tdErrors.Backend()

	absErrors := tdErrors.Abs()
	quadratic := tdErrors.Mul(tdErrors).MulScalar(0.5)
	linear := absErrors.SubScalar(0.5 * kappa).MulScalar(kappa)

	kappas := tensor.Full[float32](tdErrors.Shape(), kappa, backend)
	return tensor.Where(absErrors.Le(kappas), quadratic, linear)
}

// QuantileHuberLoss computes the quantile Huber loss used to train
// distributional value estimators.
//
// The element-wise Huber loss is weighted by |tau - 1{e<0}| / kappa, summed
// over the quantile dimension and averaged over the rest:
//
//	loss = mean( sum_dim1( |tau - 1{e<0}| * huber(e) / kappa ) )
//
// Shapes:
//   - tdErrors: (batch, num_taus, num_target_taus)
//   - taus: (batch, num_taus, 1), broadcast along the last axis
//
// The indicator is computed from detached errors so the weighting acts as a
// constant in the gradient. taus must not require gradients; passing a
// gradient-tracked taus tensor panics.
//
// Returns a 0-D scalar tensor.
func QuantileHuberLoss[B tensor.Backend](
	tdErrors, taus *tensor.Tensor[float32, B],
	kappa float32,
) *tensor.Tensor[float32, B] {
	if taus.RequiresGrad() {
		panic("QuantileHuberLoss: taus must not require gradients")
	}
	if len(tdErrors.Shape()) != 3 {
		panic(fmt.Sprintf("QuantileHuberLoss: expected 3D td errors (batch, num_taus, num_target_taus), got shape %v", tdErrors.Shape()))
	}

	backend := tdErrors.Backend()

	elementWiseHuber := HuberLoss(tdErrors, kappa)

	// 1{e < 0} from detached errors: the comparison and cast are not taped,
	// so the mask is a constant in the gradient
	detached := tdErrors.Detach()
	zeros := tensor.Zeros[float32](detached.Shape(), backend)
	indicator := detached.Lt(zeros).Float32()

	weight := taus.Sub(indicator).Abs()
	elementWiseQuantileHuber := weight.Mul(elementWiseHuber).DivScalar(kappa)

	return elementWiseQuantileHuber.SumDim(1, false).Mean()
}
