package rl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tauq-ml/tauq/internal/autodiff"
	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/tensor"
)

func TestEvaluateQuantileAtAction(t *testing.T) {
	backend := autodiff.New(cpu.New())

	// quantiles[b, i, a] = 100*b + 10*i + a, so values identify their origin
	batchSize, numTaus, numActions := 2, 3, 4
	data := make([]float32, batchSize*numTaus*numActions)
	for b := 0; b < batchSize; b++ {
		for i := 0; i < numTaus; i++ {
			for a := 0; a < numActions; a++ {
				data[(b*numTaus+i)*numActions+a] = float32(100*b + 10*i + a)
			}
		}
	}

	quantiles, err := tensor.FromSlice(data, tensor.Shape{batchSize, numTaus, numActions}, backend)
	require.NoError(t, err)

	actions, err := tensor.FromSlice([]int32{1, 3}, tensor.Shape{2, 1}, backend)
	require.NoError(t, err)

	result := EvaluateQuantileAtAction(quantiles, actions)

	require.True(t, result.Shape().Equal(tensor.Shape{batchSize, numTaus, 1}),
		"expected shape (batch, num_taus, 1), got %v", result.Shape())

	// Batch 0 chose action 1, batch 1 chose action 3
	resultData := result.Data()
	want := []float32{1, 11, 21, 103, 113, 123}
	for i, w := range want {
		assert.InDelta(t, w, resultData[i], 1e-6, "mismatch at flat index %d", i)
	}
}

func TestEvaluateQuantileAtAction_BatchMismatch(t *testing.T) {
	backend := autodiff.New(cpu.New())

	quantiles := tensor.Zeros[float32](tensor.Shape{2, 3, 4}, backend)
	actions := tensor.Zeros[int32](tensor.Shape{3, 1}, backend)

	assert.Panics(t, func() { EvaluateQuantileAtAction(quantiles, actions) })
}

// Gradients must flow only to the gathered entries.
func TestEvaluateQuantileAtAction_Gradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().Clear()
	backend.Tape().StartRecording()
	defer backend.Tape().StopRecording()

	quantiles, err := tensor.FromSlice(
		[]float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2}, backend)
	require.NoError(t, err)
	actions, err := tensor.FromSlice([]int32{1}, tensor.Shape{1, 1}, backend)
	require.NoError(t, err)

	selected := EvaluateQuantileAtAction(quantiles, actions) // picks column 1
	loss := selected.Sum()

	grads := autodiff.Backward(loss, backend)
	grad := grads[quantiles.Raw()]
	require.NotNil(t, grad, "no gradient for quantiles")

	// d(sum of column 1)/dq = [0, 1, 0, 1]
	assert.Equal(t, []float32{0, 1, 0, 1}, grad.AsFloat32())
}
