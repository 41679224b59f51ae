package cpu

import (
	"math"
	"testing"

	"github.com/tauq-ml/tauq/internal/tensor"
)

func fromSlice(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor[float32, *CPUBackend] {
	t.Helper()
	result, err := tensor.FromSlice(data, shape, New())
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	return result
}

func expectData(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Errorf("data[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddSameShape(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	expectData(t, a.Add(b).Data(), []float32{11, 22, 33, 44})
}

func TestAddBroadcast(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := fromSlice(t, []float32{10, 20, 30}, tensor.Shape{1, 3})
	col := fromSlice(t, []float32{100, 200}, tensor.Shape{2, 1})

	expectData(t, a.Add(row).Data(), []float32{11, 22, 33, 14, 25, 36})
	expectData(t, a.Add(col).Data(), []float32{101, 102, 103, 204, 205, 206})
}

func TestSubMulDiv(t *testing.T) {
	a := fromSlice(t, []float32{6, 8, 10}, tensor.Shape{3})
	b := fromSlice(t, []float32{2, 4, 5}, tensor.Shape{3})

	expectData(t, a.Sub(b).Data(), []float32{4, 4, 5})
	expectData(t, a.Mul(b).Data(), []float32{12, 32, 50})
	expectData(t, a.Div(b).Data(), []float32{3, 2, 2})
}

func TestScalarOps(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3})

	expectData(t, a.MulScalar(2).Data(), []float32{2, 4, 6})
	expectData(t, a.AddScalar(10).Data(), []float32{11, 12, 13})
	expectData(t, a.SubScalar(1).Data(), []float32{0, 1, 2})
	expectData(t, a.DivScalar(2).Data(), []float32{0.5, 1, 1.5})
}

func TestAbsSqrt(t *testing.T) {
	a := fromSlice(t, []float32{-3, 0, 4}, tensor.Shape{3})
	expectData(t, a.Abs().Data(), []float32{3, 0, 4})

	b := fromSlice(t, []float32{4, 9, 0.25}, tensor.Shape{3})
	expectData(t, b.Sqrt().Data(), []float32{2, 3, 0.5})
}

func TestComparisons(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []float32{2, 2, 2}, tensor.Shape{3})

	checkBool := func(name string, got []bool, want []bool) {
		t.Helper()
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
			}
		}
	}

	checkBool("gt", a.Gt(b).Data(), []bool{false, false, true})
	checkBool("lt", a.Lt(b).Data(), []bool{true, false, false})
	checkBool("ge", a.Ge(b).Data(), []bool{false, true, true})
	checkBool("le", a.Le(b).Data(), []bool{true, true, false})
}

func TestMatMul(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	c := a.MatMul(b)
	if !c.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", c.Shape())
	}
	expectData(t, c.Data(), []float32{58, 64, 139, 154})
}

func TestMatMulShapeMismatch(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if recover() == nil {
			t.Error("mismatched inner dimensions should panic")
		}
	}()
	a.MatMul(b)
}

func TestGather(t *testing.T) {
	backend := New()
	x := fromSlice(t, []float32{10, 11, 12, 20, 21, 22}, tensor.Shape{2, 3})
	idx, err := tensor.FromSlice([]int32{2, 0}, tensor.Shape{2, 1}, backend)
	if err != nil {
		t.Fatal(err)
	}

	got := x.Gather(1, idx)
	if !got.Shape().Equal(tensor.Shape{2, 1}) {
		t.Fatalf("shape = %v, want [2 1]", got.Shape())
	}
	expectData(t, got.Data(), []float32{12, 20})
}

func TestGatherOutOfRange(t *testing.T) {
	backend := New()
	x := fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2})
	idx, err := tensor.FromSlice([]int32{5}, tensor.Shape{1, 1}, backend)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("out-of-range index should panic")
		}
	}()
	x.Gather(1, idx)
}

func TestWhere(t *testing.T) {
	a := fromSlice(t, []float32{1, -2, 3, -4}, tensor.Shape{4})
	zeros := fromSlice(t, []float32{0, 0, 0, 0}, tensor.Shape{4})
	replacement := fromSlice(t, []float32{9, 9, 9, 9}, tensor.Shape{4})

	got := tensor.Where(a.Gt(zeros), a, replacement)
	expectData(t, got.Data(), []float32{1, 9, 3, 9})
}

func TestSumMean(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})

	sum := a.Sum()
	if len(sum.Shape()) != 0 {
		t.Errorf("Sum shape = %v, want scalar", sum.Shape())
	}
	if got := sum.Item(); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := a.Mean().Item(); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestSumDim(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	rows := a.SumDim(1, false)
	if !rows.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("SumDim(1, false) shape = %v, want [2]", rows.Shape())
	}
	expectData(t, rows.Data(), []float32{6, 15})

	kept := a.SumDim(0, true)
	if !kept.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("SumDim(0, true) shape = %v, want [1 3]", kept.Shape())
	}
	expectData(t, kept.Data(), []float32{5, 7, 9})
}

func TestMeanDim(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := a.MeanDim(1, false)
	expectData(t, got.Data(), []float32{2, 5})
}

func TestExpand(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{1, 3})

	got := a.Expand(tensor.Shape{2, 3})
	if !got.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", got.Shape())
	}
	expectData(t, got.Data(), []float32{1, 2, 3, 1, 2, 3})
}

func TestReshapeUnsqueezeSqueeze(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	r := a.Reshape(3, 2)
	if !r.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("Reshape shape = %v, want [3 2]", r.Shape())
	}

	u := a.Unsqueeze(2)
	if !u.Shape().Equal(tensor.Shape{2, 3, 1}) {
		t.Errorf("Unsqueeze shape = %v, want [2 3 1]", u.Shape())
	}

	s := u.Squeeze(2)
	if !s.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Squeeze shape = %v, want [2 3]", s.Shape())
	}
}

func TestCast(t *testing.T) {
	a := fromSlice(t, []float32{1.7, -2.2, 3.0}, tensor.Shape{3})

	ints := a.Int32()
	for i, want := range []int32{1, -2, 3} {
		if got := ints.Data()[i]; got != want {
			t.Errorf("int32 cast[%d] = %v, want %v", i, got, want)
		}
	}

	doubles := a.Float64()
	if got := doubles.Data()[2]; got != 3.0 {
		t.Errorf("float64 cast[2] = %v, want 3.0", got)
	}
}

func TestCastBoolToFloat(t *testing.T) {
	a := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []float32{2, 2, 2}, tensor.Shape{3})

	mask := a.Lt(b).Float32()
	expectData(t, mask.Data(), []float32{1, 0, 0})
}
