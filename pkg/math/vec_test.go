package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got, want := a.Min(b), (Vec3{1, -1, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatal("zero Bounds should be empty")
	}
	if b.String() != "empty" {
		t.Errorf("String() = %q, want empty", b.String())
	}

	b.Extend(Vec3{1, 1, 1})
	b.Extend(Vec3{-1, 3, 1})
	b.Extend(Vec3{0, 2, 5})

	if b.Min != (Vec3{-1, 1, 1}) || b.Max != (Vec3{1, 3, 5}) {
		t.Errorf("bounds = %v", b)
	}
	if got, want := b.Size(), (Vec3{2, 2, 4}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got, want := b.Center(), (Vec3{0, 2, 3}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got := b.Diagonal(); got < 4.898 || got > 4.899 {
		t.Errorf("Diagonal() = %v, want ~4.899", got)
	}
	if got, want := b.String(), "[-1 1 1] - [1 3 5]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
