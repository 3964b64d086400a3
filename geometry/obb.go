// Package geometry provides the oriented-bounding-box primitive used for
// both player and level-object collision tests.
package geometry

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// OBB2D is a rotated rectangle: a center, four CCW corners, and the two
// unit axes the rectangle's sides lie along.
type OBB2D struct {
	Center  Vec2
	Corners [4]Vec2
	Axes    [2]Vec2
}

// NewOBB2D builds an OBB2D from a center, full width/height, and rotation in
// degrees. axes[0] is the rotated local-x direction, axes[1] the rotated
// local-y direction; the two are always perpendicular.
func NewOBB2D(center Vec2, width, height, rotationDegrees float32) OBB2D {
	rad := float64(rotationDegrees) * math.Pi / 180.0
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))

	axisX := Vec2{cos, sin}
	axisY := Vec2{-sin, cos}

	hw := width * 0.5
	hh := height * 0.5
	x := axisX.Scale(hw)
	y := axisY.Scale(hh)

	return OBB2D{
		Center: center,
		Corners: [4]Vec2{
			center.Sub(x).Sub(y),
			center.Add(x).Sub(y),
			center.Add(x).Add(y),
			center.Sub(x).Add(y),
		},
		Axes: [2]Vec2{axisX, axisY},
	}
}

// projectOnto returns the [min,max] projection of the box's corners onto axis.
func (b OBB2D) projectOnto(axis Vec2) (min, max float32) {
	min = b.Corners[0].Dot(axis)
	max = min
	for _, c := range b.Corners[1:] {
		p := c.Dot(axis)
		if p < min {
			min = p
		} else if p > max {
			max = p
		}
	}
	return min, max
}

// Overlaps reports whether a and b intersect, via the separating axis
// theorem over the four candidate axes (two from each box).
func (b OBB2D) Overlaps(other OBB2D) bool {
	for _, axis := range b.Axes {
		minA, maxA := b.projectOnto(axis)
		minB, maxB := other.projectOnto(axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	for _, axis := range other.Axes {
		minA, maxA := b.projectOnto(axis)
		minB, maxB := other.projectOnto(axis)
		if maxA < minB || maxB < minA {
			return false
		}
	}
	return true
}

// AABB returns the axis-aligned bounding box of the corners as (minX, minY, maxX, maxY).
func (b OBB2D) AABB() (minX, minY, maxX, maxY float32) {
	minX, minY = b.Corners[0].X, b.Corners[0].Y
	maxX, maxY = minX, minY
	for _, c := range b.Corners[1:] {
		if c.X < minX {
			minX = c.X
		} else if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		} else if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, minY, maxX, maxY
}
