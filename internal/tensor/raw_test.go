package tensor

import "testing"

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float32, CPU); err == nil {
		t.Error("negative dimension should be rejected")
	}
}

func TestRawTypedViews(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32, CPU)
	if err != nil {
		t.Fatal(err)
	}

	view := raw.AsFloat32()
	if len(view) != 4 {
		t.Fatalf("view length = %d, want 4", len(view))
	}
	view[2] = 7.5
	if raw.AsFloat32()[2] != 7.5 {
		t.Error("typed view does not alias the buffer")
	}

	defer func() {
		if recover() == nil {
			t.Error("wrong-dtype view should panic")
		}
	}()
	raw.AsInt32()
}

func TestRawCloneSharesBuffer(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	if err != nil {
		t.Fatal(err)
	}
	if !raw.IsUnique() {
		t.Fatal("fresh tensor should be unique")
	}

	clone := raw.Clone()
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("clone should share the buffer")
	}

	// COW is advisory at this level: the raw view writes through
	raw.AsFloat32()[0] = 3
	if clone.AsFloat32()[0] != 3 {
		t.Error("clone does not see shared writes")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("release should restore uniqueness")
	}
}

func TestForceNonUnique(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	if err != nil {
		t.Fatal(err)
	}

	restore := raw.ForceNonUnique()
	if raw.IsUnique() {
		t.Error("tensor should not be unique while guarded")
	}
	restore()
	if !raw.IsUnique() {
		t.Error("tensor should be unique after the guard is released")
	}
}
