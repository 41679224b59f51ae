package optim

import (
	"math"

	"github.com/tauq-ml/tauq/internal/nn"
	"github.com/tauq-ml/tauq/internal/tensor"
)

// ClipGradNorm clips the gradients of the given parameters so their global
// L2 norm does not exceed maxNorm, like torch.nn.utils.clip_grad_norm_.
//
// The norm is computed over all gradients together, as if they were
// concatenated into a single vector. If the total norm exceeds maxNorm,
// every gradient is scaled by maxNorm / (totalNorm + 1e-6).
//
// Gradients are modified in place in the grads map. Frozen parameters and
// parameters without gradients are ignored.
//
// Returns the total norm before clipping.
func ClipGradNorm[B tensor.Backend](
	params []*nn.Parameter[B],
	grads map[*tensor.RawTensor]*tensor.RawTensor,
	maxNorm float32,
) float32 {
	var sumSquares float64
	clipped := make([]*tensor.RawTensor, 0, len(params))

	for _, param := range params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}
		clipped = append(clipped, grad)
		for _, g := range grad.AsFloat32() {
			sumSquares += float64(g) * float64(g)
		}
	}

	totalNorm := float32(math.Sqrt(sumSquares))
	if totalNorm <= maxNorm || len(clipped) == 0 {
		return totalNorm
	}

	scale := maxNorm / (totalNorm + 1e-6)
	for _, grad := range clipped {
		data := grad.AsFloat32()
		for i := range data {
			data[i] *= scale
		}
	}

	return totalNorm
}
