package tensor_test

import (
	"testing"

	"github.com/tauq-ml/tauq/internal/backend/cpu"
	"github.com/tauq-ml/tauq/internal/tensor"
)

func TestFromSliceLengthMismatch(t *testing.T) {
	backend := cpu.New()
	if _, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend); err == nil {
		t.Error("mismatched data length should be rejected")
	}
}

func TestAtSet(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)

	x.Set(42, 1, 2)
	if got := x.At(1, 2); got != 42 {
		t.Errorf("At(1,2) = %v, want 42", got)
	}
	// Row-major layout puts (1,2) at flat index 5
	if got := x.Data()[5]; got != 42 {
		t.Errorf("flat data[5] = %v, want 42", got)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("out-of-bounds access should panic")
		}
	}()
	x.At(2, 0)
}

func TestItemNonScalarPanics(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2}, backend)

	defer func() {
		if recover() == nil {
			t.Error("Item on a non-scalar should panic")
		}
	}()
	x.Item()
}

func TestDetachSharesData(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatal(err)
	}

	detached := x.RequireGrad().Detach()
	if detached.RequiresGrad() {
		t.Error("detached tensor must not require gradients")
	}
	if detached.Raw() != x.Raw() {
		t.Error("Detach should share the underlying data")
	}
}

func TestCloneIsIndependentView(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	if err != nil {
		t.Fatal(err)
	}

	clone := x.Clone()
	if clone.Raw() == x.Raw() {
		t.Error("Clone should produce a new RawTensor")
	}
	if clone.Data()[1] != 2 {
		t.Errorf("clone data = %v, want original values", clone.Data())
	}
}

func TestArangeLinspace(t *testing.T) {
	backend := cpu.New()

	idx := tensor.Arange[int32](0, 4, backend)
	for i, want := range []int32{0, 1, 2, 3} {
		if got := idx.Data()[i]; got != want {
			t.Errorf("arange[%d] = %v, want %v", i, got, want)
		}
	}

	taus := tensor.Linspace[float32](0, 1, 5, backend)
	for i, want := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := taus.Data()[i]; got != want {
			t.Errorf("linspace[%d] = %v, want %v", i, got, want)
		}
	}
}
