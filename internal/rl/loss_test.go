package rl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tauq-ml/tauq/internal/autodiff"
	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/tensor"
)

type Backend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

// huber computes the reference Huber loss for a single value.
func huber(e, kappa float32) float32 {
	abs := float32(math.Abs(float64(e)))
	if abs <= kappa {
		return 0.5 * e * e
	}
	return kappa * (abs - 0.5*kappa)
}

func TestHuberLoss_Values(t *testing.T) {
	backend := autodiff.New(cpu.New())

	data := []float32{-2.0, -1.0, -0.5, 0.0, 0.5, 1.0, 2.0}
	errors, err := tensor.FromSlice(data, tensor.Shape{7}, backend)
	require.NoError(t, err)

	loss := HuberLoss(errors, 1.0)
	lossData := loss.Data()

	for i, e := range data {
		assert.InDelta(t, huber(e, 1.0), lossData[i], 1e-6, "mismatch at index %d (e=%v)", i, e)
		assert.GreaterOrEqual(t, lossData[i], float32(0), "loss must be non-negative at index %d", i)
	}
}

// Both branches of the piecewise definition must agree at |e| = kappa.
func TestHuberLoss_BranchAgreement(t *testing.T) {
	backend := autodiff.New(cpu.New())
	kappa := float32(2.0)

	errors, err := tensor.FromSlice([]float32{kappa, -kappa}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	loss := HuberLoss(errors, kappa)
	want := 0.5 * kappa * kappa

	assert.InDelta(t, want, loss.Data()[0], 1e-6)
	assert.InDelta(t, want, loss.Data()[1], 1e-6)
}

func TestHuberLoss_InvalidKappa(t *testing.T) {
	backend := autodiff.New(cpu.New())
	errors, err := tensor.FromSlice([]float32{1}, tensor.Shape{1}, backend)
	require.NoError(t, err)

	assert.Panics(t, func() { HuberLoss(errors, 0) })
	assert.Panics(t, func() { HuberLoss(errors, -1) })
}

func TestQuantileHuberLoss_KnownValue(t *testing.T) {
	backend := autodiff.New(cpu.New())
	kappa := float32(1.0)

	// batch=1, num_taus=2, num_target_taus=2
	errData := []float32{-0.5, 1.5, 0.25, -2.0}
	tausData := []float32{0.25, 0.75}

	errors, err := tensor.FromSlice(errData, tensor.Shape{1, 2, 2}, backend)
	require.NoError(t, err)
	taus, err := tensor.FromSlice(tausData, tensor.Shape{1, 2, 1}, backend)
	require.NoError(t, err)

	loss := QuantileHuberLoss(errors, taus, kappa)
	require.Empty(t, loss.Shape(), "loss must be a 0-D scalar")

	// Reference: weight |tau - 1{e<0}| * huber(e) / kappa, sum over taus,
	// mean over the rest.
	var colSums [2]float32
	for i := 0; i < 2; i++ { // tau index
		for j := 0; j < 2; j++ { // target tau index
			e := errData[i*2+j]
			indicator := float32(0)
			if e < 0 {
				indicator = 1
			}
			weight := float32(math.Abs(float64(tausData[i] - indicator)))
			colSums[j] += weight * huber(e, kappa) / kappa
		}
	}
	want := (colSums[0] + colSums[1]) / 2

	assert.InDelta(t, want, loss.Item(), 1e-5)
}

func TestQuantileHuberLoss_ZeroErrors(t *testing.T) {
	backend := autodiff.New(cpu.New())

	errors := tensor.Zeros[float32](tensor.Shape{4, 8, 8}, backend)
	taus := tensor.Full[float32](tensor.Shape{4, 8, 1}, 0.5, backend)

	loss := QuantileHuberLoss(errors, taus, 1.0)

	assert.Empty(t, loss.Shape())
	assert.InDelta(t, 0.0, loss.Item(), 1e-7)
}

func TestQuantileHuberLoss_NonNegative(t *testing.T) {
	backend := autodiff.New(cpu.New())

	errors := tensor.Randn[float32](tensor.Shape{8, 4, 4}, backend)
	taus := tensor.Full[float32](tensor.Shape{8, 4, 1}, 0.3, backend)

	loss := QuantileHuberLoss(errors, taus, 1.0)
	assert.GreaterOrEqual(t, loss.Item(), float32(0))
}

func TestQuantileHuberLoss_RejectsGradTrackedTaus(t *testing.T) {
	backend := autodiff.New(cpu.New())

	errors := tensor.Zeros[float32](tensor.Shape{1, 2, 2}, backend)
	taus := tensor.Full[float32](tensor.Shape{1, 2, 1}, 0.5, backend).RequireGrad()

	assert.Panics(t, func() { QuantileHuberLoss(errors, taus, 1.0) })
}
