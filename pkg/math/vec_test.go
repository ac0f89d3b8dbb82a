package math

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestUnitVectors(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		axis int
	}{
		{"UnitX", UnitX(), 0},
		{"UnitY", UnitY(), 1},
		{"UnitZ", UnitZ(), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				want := float32(0)
				if i == tt.axis {
					want = 1
				}
				if got := tt.got.At(i); got != want {
					t.Errorf("%s().At(%d) = %v, want %v", tt.name, i, got, want)
				}
			}
		})
	}
}

func TestVec3Zero(t *testing.T) {
	var v Vec3
	if !v.Equal(Zero()) {
		t.Errorf("zero value = %v, want %v", v, Zero())
	}
	if v.X() != 0 || v.Y() != 0 || v.Z() != 0 {
		t.Errorf("zero value has non-zero component: %v", v)
	}
}

func TestVec3At(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("Vec3.At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVec3AtOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 4} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Vec3.At(%d) did not panic", idx)
					return
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("Vec3.At(%d) panic = %v, want out of range message", idx, r)
				}
			}()
			NewVec3(1, 2, 3).At(idx)
		}()
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, 7, 9)},
		{"Sub", b.Sub(a), NewVec3(3, 3, 3)},
		{"Mul", a.Mul(b), NewVec3(4, 10, 18)},
		{"AddScalar", a.AddScalar(1), NewVec3(2, 3, 4)},
		{"SubScalar", a.SubScalar(1), NewVec3(0, 1, 2)},
		{"Scale", a.Scale(2), NewVec3(2, 4, 6)},
	}

	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("Vec3.%s() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Operands are values and must not change.
	if !a.Equal(NewVec3(1, 2, 3)) || !b.Equal(NewVec3(4, 5, 6)) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec3AssignVariants(t *testing.T) {
	v := NewVec3(1, 2, 3)
	v.AddAssign(NewVec3(1, 1, 1))
	v.SubAssign(NewVec3(0, 1, 0))
	v.MulAssign(NewVec3(2, 2, 2))
	v.AddScalarAssign(1)
	v.SubScalarAssign(2)
	v.ScaleAssign(0.5)

	// ((1,2,3)+(1,1,1)-(0,1,0))*2 = (4,4,8); +1-2 = (3,3,7); *0.5
	want := NewVec3(1.5, 1.5, 3.5)
	if !v.Equal(want) {
		t.Errorf("accumulated = %v, want %v", v, want)
	}
}

func TestVec3PaddingLanes(t *testing.T) {
	v := Vec3{arr: [4]float32{1, 2, 3, 4}}

	if got := v.AddScalar(10).arr[3]; got != 4 {
		t.Errorf("AddScalar touched padding: got %v, want 4", got)
	}
	if got := v.SubScalar(10).arr[3]; got != 4 {
		t.Errorf("SubScalar touched padding: got %v, want 4", got)
	}
	if got := v.Scale(2).arr[3]; got != 8 {
		t.Errorf("Scale padding = %v, want 8", got)
	}

	if !v.Equal(NewVec3(1, 2, 3)) {
		t.Errorf("Equal compared padding: %v vs (1, 2, 3)", v)
	}
}

func TestVec3FitRoundTrip(t *testing.T) {
	v := Vec3{arr: [4]float32{0.1, -2.5, 1e-7, 42}}

	fit := v.Fit()
	if fit != (mgl32.Vec3{0.1, -2.5, 1e-7}) {
		t.Errorf("Vec3.Fit() = %v", fit)
	}

	back := FromFit(fit)
	if back.arr != [4]float32{0.1, -2.5, 1e-7, 0} {
		t.Errorf("FromFit(Fit()) lanes = %v, want x/y/z preserved and padding 0", back.arr)
	}
}

func TestVec3Cross(t *testing.T) {
	got := UnitX().Cross(UnitY())
	want := UnitZ()
	if !got.Equal(want) {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := NewVec3(3, 4, 12).Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if !Zero().Normalize().Equal(Zero()) {
		t.Error("Normalize of zero vector should stay zero")
	}
}

func TestVec3ApproxEqual(t *testing.T) {
	a := NewVec3(1, 2, 3)
	if !a.ApproxEqual(NewVec3(1.0001, 2, 2.9999), 1e-3) {
		t.Error("expected vectors within 1e-3 to be approximately equal")
	}
	if a.ApproxEqual(NewVec3(1.1, 2, 3), 1e-3) {
		t.Error("expected vectors 0.1 apart not to be approximately equal")
	}
}
