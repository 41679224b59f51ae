package optim

import (
	"testing"

	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/nn"
	"github.com/tauq-ml/tauq/internal/tensor"
)

func newParam(t *testing.T, name string, values []float32) *nn.Parameter[*cpu.CPUBackend] {
	t.Helper()
	backend := cpu.New()
	pt, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return nn.NewParameter(name, pt)
}

func newGrad(t *testing.T, values []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(values)}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat32(), values)
	return raw
}

func TestSGDStep(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, "w", []float32{1.0, 2.0, 3.0})
	grad := newGrad(t, []float32{0.5, -0.5, 1.0})

	optimizer := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{param}, SGDConfig{LR: 0.1}, backend)
	optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{param.Tensor().Raw(): grad})

	want := []float32{0.95, 2.05, 2.9}
	got := param.Tensor().Data()
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("param[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSGDMomentum(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, "w", []float32{0.0})
	grads := map[*tensor.RawTensor]*tensor.RawTensor{
		param.Tensor().Raw(): newGrad(t, []float32{1.0}),
	}

	optimizer := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{param}, SGDConfig{LR: 0.1, Momentum: 0.9}, backend)

	// Step 1: velocity = 1, param = -0.1
	optimizer.Step(grads)
	if got := param.Tensor().Data()[0]; got != -0.1 {
		t.Errorf("after step 1: param = %v, want -0.1", got)
	}

	// Step 2: velocity = 0.9 + 1 = 1.9, param = -0.1 - 0.19 = -0.29
	optimizer.Step(grads)
	got := param.Tensor().Data()[0]
	if diff := got + 0.29; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("after step 2: param = %v, want -0.29", got)
	}
}

func TestSGDSkipsFrozen(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, "w", []float32{1.0})
	param.Freeze()

	optimizer := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{param}, SGDConfig{LR: 0.1}, backend)
	optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{
		param.Tensor().Raw(): newGrad(t, []float32{100.0}),
	})

	if got := param.Tensor().Data()[0]; got != 1.0 {
		t.Errorf("frozen param changed: got %v, want 1.0", got)
	}
}

func TestSGDSkipsMissingGrad(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, "w", []float32{1.0})

	optimizer := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{param}, SGDConfig{LR: 0.1}, backend)
	optimizer.Step(map[*tensor.RawTensor]*tensor.RawTensor{})

	if got := param.Tensor().Data()[0]; got != 1.0 {
		t.Errorf("param without gradient changed: got %v, want 1.0", got)
	}
}

func TestSGDDefaultLR(t *testing.T) {
	backend := cpu.New()
	optimizer := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{}, SGDConfig{}, backend)
	if got := optimizer.GetLR(); got != 0.01 {
		t.Errorf("default LR = %v, want 0.01", got)
	}

	optimizer.SetLR(0.5)
	if got := optimizer.GetLR(); got != 0.5 {
		t.Errorf("after SetLR: %v, want 0.5", got)
	}
}
