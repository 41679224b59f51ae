package tensor

import "testing"

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{"same shape", Shape{32, 8}, Shape{32, 8}, Shape{32, 8}, false, false},
		{"row vector", Shape{2, 3}, Shape{1, 3}, Shape{2, 3}, true, false},
		{"column vector", Shape{2, 3}, Shape{2, 1}, Shape{2, 3}, true, false},
		{"rank promotion", Shape{3}, Shape{2, 3}, Shape{2, 3}, true, false},
		{"both broadcast", Shape{32, 1, 64}, Shape{32, 8, 1}, Shape{32, 8, 64}, true, false},
		{"scalar", Shape{}, Shape{4, 4}, Shape{4, 4}, true, false},
		{"incompatible", Shape{32, 8}, Shape{32, 9}, nil, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tc.a, tc.b)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("shape = %v, want %v", got, tc.want)
			}
			if broadcast != tc.broadcast {
				t.Errorf("broadcast = %v, want %v", broadcast, tc.broadcast)
			}
		})
	}
}

func TestShapeNumElements(t *testing.T) {
	if got := (Shape{2, 3, 4}).NumElements(); got != 24 {
		t.Errorf("NumElements = %d, want 24", got)
	}
	// 0-D scalar has one element
	if got := (Shape{}).NumElements(); got != 1 {
		t.Errorf("scalar NumElements = %d, want 1", got)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides = %v, want %v", strides, want)
			break
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err == nil {
		t.Error("zero dimension should be invalid")
	}
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
}
