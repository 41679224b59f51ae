package optim

import (
	"math"
	"testing"

	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/nn"
	"github.com/tauq-ml/tauq/internal/tensor"
)

func TestClipGradNormScales(t *testing.T) {
	param := newParam(t, "w", []float32{0, 0})
	grad := newGrad(t, []float32{3.0, 4.0}) // norm 5
	grads := map[*tensor.RawTensor]*tensor.RawTensor{param.Tensor().Raw(): grad}

	norm := ClipGradNorm([]*nn.Parameter[*cpu.CPUBackend]{param}, grads, 1.0)

	if diff := math.Abs(float64(norm - 5.0)); diff > 1e-6 {
		t.Errorf("returned norm = %v, want 5.0", norm)
	}

	// Scaled to maxNorm / (norm + 1e-6)
	data := grad.AsFloat32()
	wantScale := 1.0 / (5.0 + 1e-6)
	for i, orig := range []float32{3.0, 4.0} {
		want := orig * float32(wantScale)
		if diff := math.Abs(float64(data[i] - want)); diff > 1e-6 {
			t.Errorf("grad[%d] = %v, want %v", i, data[i], want)
		}
	}
}

func TestClipGradNormBelowThreshold(t *testing.T) {
	param := newParam(t, "w", []float32{0, 0})
	grad := newGrad(t, []float32{0.3, 0.4}) // norm 0.5
	grads := map[*tensor.RawTensor]*tensor.RawTensor{param.Tensor().Raw(): grad}

	norm := ClipGradNorm([]*nn.Parameter[*cpu.CPUBackend]{param}, grads, 1.0)

	if diff := math.Abs(float64(norm - 0.5)); diff > 1e-6 {
		t.Errorf("returned norm = %v, want 0.5", norm)
	}

	// Untouched when under the threshold
	data := grad.AsFloat32()
	if data[0] != 0.3 || data[1] != 0.4 {
		t.Errorf("gradients modified below threshold: %v", data)
	}
}

func TestClipGradNormGlobal(t *testing.T) {
	// Two parameters contribute to a single global norm
	p1 := newParam(t, "a", []float32{0})
	p2 := newParam(t, "b", []float32{0})
	g1 := newGrad(t, []float32{3.0})
	g2 := newGrad(t, []float32{4.0})
	grads := map[*tensor.RawTensor]*tensor.RawTensor{
		p1.Tensor().Raw(): g1,
		p2.Tensor().Raw(): g2,
	}

	norm := ClipGradNorm([]*nn.Parameter[*cpu.CPUBackend]{p1, p2}, grads, 2.5)

	if diff := math.Abs(float64(norm - 5.0)); diff > 1e-6 {
		t.Errorf("global norm = %v, want 5.0", norm)
	}
	if got := g1.AsFloat32()[0]; math.Abs(float64(got-1.5)) > 1e-5 {
		t.Errorf("g1 = %v, want 1.5", got)
	}
	if got := g2.AsFloat32()[0]; math.Abs(float64(got-2.0)) > 1e-5 {
		t.Errorf("g2 = %v, want 2.0", got)
	}
}

func TestClipGradNormIgnoresFrozen(t *testing.T) {
	p1 := newParam(t, "a", []float32{0})
	p2 := newParam(t, "b", []float32{0})
	p2.Freeze()
	g1 := newGrad(t, []float32{3.0})
	g2 := newGrad(t, []float32{4.0})
	grads := map[*tensor.RawTensor]*tensor.RawTensor{
		p1.Tensor().Raw(): g1,
		p2.Tensor().Raw(): g2,
	}

	norm := ClipGradNorm([]*nn.Parameter[*cpu.CPUBackend]{p1, p2}, grads, 100)

	// Only p1's gradient counts
	if diff := math.Abs(float64(norm - 3.0)); diff > 1e-6 {
		t.Errorf("norm = %v, want 3.0", norm)
	}
}

func TestClipGradNormNoGrads(t *testing.T) {
	param := newParam(t, "w", []float32{0})
	norm := ClipGradNorm([]*nn.Parameter[*cpu.CPUBackend]{param},
		map[*tensor.RawTensor]*tensor.RawTensor{}, 1.0)

	if norm != 0 {
		t.Errorf("norm with no gradients = %v, want 0", norm)
	}
}
