package geometry

import "testing"

func TestOverlapsSymmetric(t *testing.T) {
	a := NewOBB2D(Vec2{0, 0}, 30, 30, 0)
	b := NewOBB2D(Vec2{20, 0}, 30, 30, 0)
	c := NewOBB2D(Vec2{100, 0}, 30, 30, 0)

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatal("expected overlapping boxes to report overlap both ways")
	}
	if a.Overlaps(c) || c.Overlaps(a) {
		t.Fatal("expected distant boxes to report no overlap")
	}
}

func TestOverlapsRotated(t *testing.T) {
	a := NewOBB2D(Vec2{0, 0}, 30, 30, 45)
	b := NewOBB2D(Vec2{0, 0}, 10, 10, 0)
	if !a.Overlaps(b) {
		t.Fatal("expected rotated box to still overlap a contained box")
	}
}

func TestAxesPerpendicular(t *testing.T) {
	b := NewOBB2D(Vec2{5, 5}, 10, 20, 37)
	dot := b.Axes[0].Dot(b.Axes[1])
	if dot > 1e-4 || dot < -1e-4 {
		t.Fatalf("expected perpendicular axes, got dot=%v", dot)
	}
}

func TestCornersCCW(t *testing.T) {
	b := NewOBB2D(Vec2{0, 0}, 2, 2, 0)
	want := [4]Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, c := range want {
		if b.Corners[i] != c {
			t.Fatalf("corner %d = %v, want %v", i, b.Corners[i], c)
		}
	}
}
