package math32

import "testing"

func TestVectorConstructors(t *testing.T) {
	v := Vec3(1, 2, 3)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Vec3 fields wrong: %+v", v)
	}

	vi := Vec4i(-1, 2, -3, 4)
	if vi.X != -1 || vi.Y != 2 || vi.Z != -3 || vi.W != 4 {
		t.Errorf("Vec4i fields wrong: %+v", vi)
	}

	vu := Vec2u(5, 6)
	if vu.X != 5 || vu.Y != 6 {
		t.Errorf("Vec2u fields wrong: %+v", vu)
	}
}

func TestVectorSet(t *testing.T) {
	var v Vector4
	v.Set(1, 2, 3, 4)
	if v != Vec4(1, 2, 3, 4) {
		t.Errorf("Set gave %+v", v)
	}

	var vu Vector3u
	vu.Set(7, 8, 9)
	if vu != Vec3u(7, 8, 9) {
		t.Errorf("Set gave %+v", vu)
	}
}

func TestVectorDim(t *testing.T) {
	v := Vec4(10, 20, 30, 40)
	for i, want := range []float32{10, 20, 30, 40} {
		if got := v.Dim(i); got != want {
			t.Errorf("Dim(%d) = %v, want %v", i, got, want)
		}
	}

	vi := Vec3i(1, 2, 3)
	for i, want := range []int32{1, 2, 3} {
		if got := vi.Dim(i); got != want {
			t.Errorf("Dim(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVectorDimOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dim(2) on a Vector2 should panic")
		}
	}()
	Vec2(1, 2).Dim(2)
}
