package autodiff

import (
	"math"
	"testing"

	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/tensor"
)

func approxEqual(got, want, tol float32) bool {
	return math.Abs(float64(got-want)) <= float64(tol)
}

// d(x*x)/dx = 2x
func TestBackwardSquare(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatal(err)
	}

	y := x.Mul(x).Sum()
	grads := Backward(y, backend)

	grad := grads[x.Raw()]
	if grad == nil {
		t.Fatal("no gradient for x")
	}
	want := []float32{2, 4, 6}
	for i, w := range want {
		if got := grad.AsFloat32()[i]; !approxEqual(got, w, 1e-5) {
			t.Errorf("grad[%d] = %v, want %v", i, got, w)
		}
	}
}

// Broadcast inputs must receive gradients reduced back to their own shape.
func TestBackwardBroadcastAdd(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	b := tensor.Ones[float32](tensor.Shape{1, 3}, backend)

	y := a.Add(b).Sum()
	grads := Backward(y, backend)

	gradB := grads[b.Raw()]
	if gradB == nil {
		t.Fatal("no gradient for broadcast input")
	}
	if !gradB.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("broadcast grad shape = %v, want [1 3]", gradB.Shape())
	}
	// Each element of b fed 2 output rows
	for i, g := range gradB.AsFloat32() {
		if !approxEqual(g, 2, 1e-5) {
			t.Errorf("gradB[%d] = %v, want 2", i, g)
		}
	}
}

func TestBackwardDiv(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	a, _ := tensor.FromSlice([]float32{6}, tensor.Shape{1}, backend)
	b, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, backend)

	y := a.Div(b).Sum()
	grads := Backward(y, backend)

	// d(a/b)/da = 1/b, d(a/b)/db = -a/b^2
	if got := grads[a.Raw()].AsFloat32()[0]; !approxEqual(got, 0.5, 1e-5) {
		t.Errorf("grad a = %v, want 0.5", got)
	}
	if got := grads[b.Raw()].AsFloat32()[0]; !approxEqual(got, -1.5, 1e-5) {
		t.Errorf("grad b = %v, want -1.5", got)
	}
}

func TestBackwardMatMul(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	b, _ := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, backend)

	y := a.MatMul(b).Sum()
	grads := Backward(y, backend)

	// dy/dA = ones @ B^T, dy/dB = A^T @ ones
	wantA := []float32{11, 15, 11, 15}
	wantB := []float32{4, 4, 6, 6}
	gotA := grads[a.Raw()].AsFloat32()
	gotB := grads[b.Raw()].AsFloat32()
	for i := range wantA {
		if !approxEqual(gotA[i], wantA[i], 1e-4) {
			t.Errorf("gradA[%d] = %v, want %v", i, gotA[i], wantA[i])
		}
		if !approxEqual(gotB[i], wantB[i], 1e-4) {
			t.Errorf("gradB[%d] = %v, want %v", i, gotB[i], wantB[i])
		}
	}
}

func TestBackwardMean(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	x := tensor.Ones[float32](tensor.Shape{4}, backend)
	y := x.Mean()
	grads := Backward(y, backend)

	for i, g := range grads[x.Raw()].AsFloat32() {
		if !approxEqual(g, 0.25, 1e-6) {
			t.Errorf("grad[%d] = %v, want 0.25", i, g)
		}
	}
}

func TestBackwardSumDim(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	y := x.SumDim(1, false).Sum()
	grads := Backward(y, backend)

	grad := grads[x.Raw()]
	if !grad.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("grad shape = %v, want [2 3]", grad.Shape())
	}
	for i, g := range grad.AsFloat32() {
		if !approxEqual(g, 1, 1e-6) {
			t.Errorf("grad[%d] = %v, want 1", i, g)
		}
	}
}

// Where routes gradients: picked positions get them, the rest get zero.
func TestBackwardWhere(t *testing.T) {
	backend := New(cpu.New())

	x, _ := tensor.FromSlice([]float32{-1, 2, -3, 4}, tensor.Shape{4}, backend)
	zeros := tensor.Zeros[float32](tensor.Shape{4}, backend)
	cond := x.Gt(zeros)

	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	a, _ := tensor.FromSlice([]float32{10, 10, 10, 10}, tensor.Shape{4}, backend)
	b, _ := tensor.FromSlice([]float32{20, 20, 20, 20}, tensor.Shape{4}, backend)

	y := tensor.Where(cond, a, b).Sum()
	grads := Backward(y, backend)

	wantA := []float32{0, 1, 0, 1}
	wantB := []float32{1, 0, 1, 0}
	for i := range wantA {
		if got := grads[a.Raw()].AsFloat32()[i]; !approxEqual(got, wantA[i], 1e-6) {
			t.Errorf("gradA[%d] = %v, want %v", i, got, wantA[i])
		}
		if got := grads[b.Raw()].AsFloat32()[i]; !approxEqual(got, wantB[i], 1e-6) {
			t.Errorf("gradB[%d] = %v, want %v", i, got, wantB[i])
		}
	}
}

func TestBackwardAbs(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	x, _ := tensor.FromSlice([]float32{-2, 3, 0}, tensor.Shape{3}, backend)
	y := x.Abs().Sum()
	grads := Backward(y, backend)

	want := []float32{-1, 1, 0}
	for i, w := range want {
		if got := grads[x.Raw()].AsFloat32()[i]; !approxEqual(got, w, 1e-6) {
			t.Errorf("grad[%d] = %v, want %v", i, got, w)
		}
	}
}

// Using the same tensor twice must accumulate both contributions.
func TestBackwardAccumulates(t *testing.T) {
	backend := New(cpu.New())
	backend.Tape().StartRecording()
	defer func() {
		backend.Tape().StopRecording()
		backend.Tape().Clear()
	}()

	x, _ := tensor.FromSlice([]float32{3}, tensor.Shape{1}, backend)
	y := x.Add(x).Sum() // dy/dx = 2
	grads := Backward(y, backend)

	if got := grads[x.Raw()].AsFloat32()[0]; !approxEqual(got, 2, 1e-6) {
		t.Errorf("accumulated grad = %v, want 2", got)
	}
}
