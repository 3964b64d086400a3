package catalog

import (
	"strconv"

	"github.com/corvid-run/pathbot/geometry"
)

// RawObject is an ordered list of string key/value pairs as decoded from a
// level string; keys are the level format's numeric property ids, encoded
// as strings (e.g. "1" is the object id, "2" is x).
type RawObject struct {
	Properties []KV
}

// KV is a single decoded property.
type KV struct {
	Key, Value string
}

// FromRaw builds a GameObject from a decoded level record. Unrecognized
// keys and unparsable values are ignored, falling back to their zero value,
// matching the tolerance of the format this was ported from.
func FromRaw(raw RawObject) GameObject {
	var (
		id                   int
		x, y                 float32
		rotation             float32
		scale, scaleX, scaleY float32 = 1, 1, 1
		flipX, flipY         bool
	)

	for _, kv := range raw.Properties {
		switch kv.Key {
		case "1":
			id = atoiOr(kv.Value, 0)
		case "2":
			x = atofOr(kv.Value, 0)
		case "3":
			y = atofOr(kv.Value, 0)
		case "4":
			flipX = kv.Value == "1"
		case "5":
			flipY = kv.Value == "1"
		case "6":
			rotation = atofOr(kv.Value, 0)
		case "32":
			scale = atofOr(kv.Value, 1)
		case "128":
			scaleX = atofOr(kv.Value, 1)
		case "129":
			scaleY = atofOr(kv.Value, 1)
		}
	}

	scaleX *= scale
	scaleY *= scale

	shape, baseW, baseH := hitboxForID(id)
	width := baseW * scaleX
	height := baseH * scaleY

	position := geometry.Vec2{X: x, Y: y}
	category := categoryForID(id)

	var obb *geometry.OBB2D
	if shape == Rectangle {
		b := geometry.NewOBB2D(position, width, height, rotation)
		obb = &b
	}

	return GameObject{
		ID:          id,
		Category:    category,
		Position:    position,
		Rotation:    rotation,
		Scale:       geometry.Vec2{X: scaleX, Y: scaleY},
		FlipX:       flipX,
		FlipY:       flipY,
		HitboxShape: shape,
		Width:       width,
		Height:      height,
		OBB:         obb,
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func atofOr(s string, fallback float32) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}
