package autodiff

import (
	"math"
	"testing"

	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/tensor"
)

// numericalGradient estimates df/dx_i by central differences, mutating the
// tensor's storage in place around each evaluation.
func numericalGradient(data []float32, i int, eval func() float32) float32 {
	const h = 1e-3
	orig := data[i]

	data[i] = orig + h
	plus := eval()
	data[i] = orig - h
	minus := eval()
	data[i] = orig

	return (plus - minus) / (2 * h)
}

// checkGradients compares analytic gradients against finite differences for a
// scalar-valued function of a single input tensor.
func checkGradients(t *testing.T, backend *AutodiffBackend[*cpu.CPUBackend],
	x *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]],
	forward func() *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]],
	tol float64,
) {
	t.Helper()

	backend.Tape().StartRecording()
	loss := forward()
	grads := Backward(loss, backend)
	backend.Tape().StopRecording()
	backend.Tape().Clear()

	analytic := grads[x.Raw()]
	if analytic == nil {
		t.Fatal("no analytic gradient computed")
	}

	data := x.Data()
	eval := func() float32 { return forward().Item() }

	for i := range data {
		numeric := numericalGradient(data, i, eval)
		got := analytic.AsFloat32()[i]
		if diff := math.Abs(float64(got - numeric)); diff > tol {
			t.Errorf("grad[%d]: analytic %v vs numeric %v (diff %v)", i, got, numeric, diff)
		}
	}
}

func TestGradientCheckPolynomial(t *testing.T) {
	backend := New(cpu.New())
	x, err := tensor.FromSlice([]float32{0.5, -1.2, 2.0, 0.1}, tensor.Shape{4}, backend)
	if err != nil {
		t.Fatal(err)
	}

	// f = sum(x^2 * 3 + x)
	forward := func() *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]] {
		return x.Mul(x).MulScalar(3).Add(x).Sum()
	}
	checkGradients(t, backend, x, forward, 1e-2)
}

func TestGradientCheckSqrt(t *testing.T) {
	backend := New(cpu.New())
	x, err := tensor.FromSlice([]float32{0.5, 1.0, 4.0}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatal(err)
	}

	forward := func() *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]] {
		return x.Sqrt().Sum()
	}
	checkGradients(t, backend, x, forward, 1e-2)
}

func TestGradientCheckMeanDim(t *testing.T) {
	backend := New(cpu.New())
	x, err := tensor.FromSlice(
		[]float32{1, -2, 3, 0.5, 4, -1}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatal(err)
	}

	forward := func() *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]] {
		return x.MeanDim(1, false).Mul(x.MeanDim(1, false)).Sum()
	}
	checkGradients(t, backend, x, forward, 1e-2)
}

func TestGradientCheckReshapeExpand(t *testing.T) {
	backend := New(cpu.New())
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		t.Fatal(err)
	}

	forward := func() *tensor.Tensor[float32, *AutodiffBackend[*cpu.CPUBackend]] {
		expanded := x.Reshape(1, 3).Expand(tensor.Shape{4, 3})
		return expanded.Mul(expanded).Sum()
	}
	checkGradients(t, backend, x, forward, 1e-2)
}
