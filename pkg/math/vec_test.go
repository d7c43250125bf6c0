package math

import (
	"testing"
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

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3UnitLength(t *testing.T) {
	vectors := []Vec3{
		{1, 0, 0},
		{3, 4, 0},
		{-2, 7, 1.5},
		{1e-3, -1e-3, 2e-3},
		{1000, 2000, -3000},
	}

	for _, v := range vectors {
		u, err := v.Unit()
		if err != nil {
			t.Fatalf("Unit(%v): unexpected error %v", v, err)
		}
		if l := u.Length(); abs(l-1) > 1e-5 {
			t.Errorf("Unit(%v).Length() = %v, want 1", v, l)
		}
	}
}

func TestUnitZeroLength(t *testing.T) {
	if _, err := (Vec3{}).Unit(); err != ErrZeroLength {
		t.Errorf("Vec3{}.Unit() error = %v, want ErrZeroLength", err)
	}
	if _, err := (Vec2{}).Unit(); err != ErrZeroLength {
		t.Errorf("Vec2{}.Unit() error = %v, want ErrZeroLength", err)
	}
	if _, err := (Vec4{}).Unit(); err != ErrZeroLength {
		t.Errorf("Vec4{}.Unit() error = %v, want ErrZeroLength", err)
	}
	// Normalize keeps the old behaviour of returning zero
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
}

func TestVec4(t *testing.T) {
	v := Vec3{1, 2, 3}.Vec4(1)
	if v.XYZ() != (Vec3{1, 2, 3}) || v.W != 1 {
		t.Errorf("Vec4 round trip = %v", v)
	}
	if got := v.Add(Vec4{1, 1, 1, 1}).Scale(2); got != (Vec4{4, 6, 8, 4}) {
		t.Errorf("Vec4 add/scale = %v, want (4, 6, 8, 4)", got)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); abs(got-3.1415927) > 1e-6 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(DegToRad(37)); abs(got-37) > 1e-4 {
		t.Errorf("RadToDeg(DegToRad(37)) = %v, want 37", got)
	}
}
