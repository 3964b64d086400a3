// Package catalog maps the numeric object ids found in level data to the
// category, hitbox shape, and base dimensions the physics core reasons
// about, and builds GameObject values from parsed level records.
package catalog

import "github.com/corvid-run/pathbot/geometry"

// Category classifies a GameObject for collision and terrain purposes.
type Category int

const (
	Unknown Category = iota
	Solid
	Hazard
	Sawblade
	ShipPortal
	CubePortal
	InverseGravityPortal
	NormalGravityPortal
	Slope
	Pad
	Ring
	Special
	Breakable
)

// HitboxShape selects how a GameObject is tested for overlap.
type HitboxShape int

const (
	Rectangle HitboxShape = iota
	Circle
)

// GameObject is immutable after construction.
type GameObject struct {
	ID             int
	Category       Category
	Position       geometry.Vec2
	Rotation       float32
	Scale          geometry.Vec2
	FlipX, FlipY   bool
	HitboxShape    HitboxShape
	Width, Height  float32
	OBB            *geometry.OBB2D // precomputed, rectangles only
}
