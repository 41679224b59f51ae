package rl

import (
	"fmt"

	"github.com/tauq-ml/tauq/internal/tensor"
)

// EvaluateQuantileAtAction gathers, for each batch element, the quantile
// slice corresponding to the chosen action.
//
// Shapes:
//   - quantiles: (batch, num_taus, num_actions)
//   - actions: (batch, 1) int32 action indices
//
// Returns a (batch, num_taus, 1) tensor where out[i, j, 0] equals
// quantiles[i, j, actions[i]].
func EvaluateQuantileAtAction[B tensor.Backend](
	quantiles *tensor.Tensor[float32, B],
	actions *tensor.Tensor[int32, B],
) *tensor.Tensor[float32, B] {
	qShape := quantiles.Shape()
	if len(qShape) != 3 {
		panic(fmt.Sprintf("EvaluateQuantileAtAction: expected 3D quantiles (batch, num_taus, num_actions), got shape %v", qShape))
	}
	if qShape[0] != actions.Shape()[0] {
		panic(fmt.Sprintf("EvaluateQuantileAtAction: batch size mismatch: quantiles %d vs actions %d",
			qShape[0], actions.Shape()[0]))
	}

	batchSize, numTaus := qShape[0], qShape[1]

	// (batch, 1) -> (batch, 1, 1) -> (batch, num_taus, 1)
	actionIndex := actions.Unsqueeze(2).Expand(tensor.Shape{batchSize, numTaus, 1})

	return quantiles.Gather(2, actionIndex)
}
