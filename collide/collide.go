// Package collide implements the hazard and solid-surface collision test
// run against every candidate state produced during search.
package collide

import (
	"math"

	"github.com/corvid-run/pathbot/catalog"
	"github.com/corvid-run/pathbot/config"
	"github.com/corvid-run/pathbot/geometry"
	"github.com/corvid-run/pathbot/spatial"
	"github.com/corvid-run/pathbot/state"
)

// queryMargin is added to the player's footprint when pulling broad-phase
// candidates from the grid, and farObjectCutoff discards anything still too
// far away on the x axis to plausibly matter this tick.
const (
	queryMargin    = 400.0
	farObjectCutoff = 200.0
	shipGrazeVertical   = 15.0
	shipGrazeHorizontal = 5.0
	shipNearSurface     = 5.0
	cubeSurfaceZone     = 5.0
)

// circleRectIntersects reports whether a circle and an axis-aligned
// rectangle overlap, by clamping the circle center into the rectangle and
// comparing the clamped point's distance to the radius.
func circleRectIntersects(circleCenter geometry.Vec2, radius float32, rectCenter geometry.Vec2, rectW, rectH float32) bool {
	halfW := rectW / 2
	halfH := rectH / 2

	closestX := clamp(circleCenter.X, rectCenter.X-halfW, rectCenter.X+halfW)
	closestY := clamp(circleCenter.Y, rectCenter.Y-halfH, rectCenter.Y+halfH)

	dx := circleCenter.X - closestX
	dy := circleCenter.Y - closestY
	distSq := dx*dx + dy*dy
	return distSq <= radius*radius
}

// Test checks s against every nearby object and returns the id of the
// first object that ends the run (hazard, sawblade, or a solid surface hit
// outside its landing tolerance), or ok=false if s survives.
func Test(s state.State, objects []catalog.GameObject, grid *spatial.Grid, p *config.PhysicsConfig) (id int, ok bool) {
	playerW := float32(p.PlayerWidth)
	playerH := float32(p.PlayerHeight)
	playerOBB := geometry.NewOBB2D(s.Position, playerW, playerH, 0)

	candidates := grid.Query(s.Position, playerW+queryMargin, playerH+queryMargin)

	for _, idx := range candidates {
		obj := objects[idx]

		if abs32(obj.Position.X-s.Position.X) > farObjectCutoff {
			continue
		}

		var isColliding bool
		switch obj.HitboxShape {
		case catalog.Circle:
			radius := obj.Width / 2
			isColliding = circleRectIntersects(obj.Position, radius, s.Position, playerW, playerH)
		case catalog.Rectangle:
			if obj.OBB != nil {
				isColliding = playerOBB.Overlaps(*obj.OBB)
			}
		}

		if !isColliding {
			continue
		}

		switch obj.Category {
		case catalog.Sawblade, catalog.Hazard:
			return obj.ID, true

		case catalog.Solid:
			if solidHitSurvives(s, obj, playerW, playerH) {
				continue
			}
			return obj.ID, true

		default:
			continue
		}
	}

	return 0, false
}

// solidHitSurvives reports whether an overlap with a solid object is
// tolerable grazing rather than a crash: Ship mode allows skimming a
// surface's top or bottom, Cube mode allows resting within its landing
// surface zone.
func solidHitSurvives(s state.State, obj catalog.GameObject, playerW, playerH float32) bool {
	objTop := obj.Position.Y + obj.Height*0.5
	objBottom := obj.Position.Y - obj.Height*0.5
	objLeft := obj.Position.X - obj.Width*0.5
	objRight := obj.Position.X + obj.Width*0.5

	playerTop := s.Position.Y + playerH*0.5
	playerBottom := s.Position.Y - playerH*0.5
	playerLeft := s.Position.X - playerW*0.5
	playerRight := s.Position.X + playerW*0.5

	if s.Mode == state.Ship {
		hOverlap := min32(playerRight, objRight) - max32(playerLeft, objLeft)
		vOverlap := min32(playerTop, objTop) - max32(playerBottom, objBottom)

		playerCenterY := s.Position.Y
		isAboveObj := playerCenterY >= objTop-shipNearSurface
		isBelowObj := playerCenterY <= objBottom+shipNearSurface

		if (isAboveObj || isBelowObj) && vOverlap < shipGrazeVertical && hOverlap > shipGrazeHorizontal {
			return true
		}
		return false
	}

	var playerFeet, surfaceLevel float32
	if s.GravityFlipped {
		playerFeet, surfaceLevel = playerTop, objBottom
	} else {
		playerFeet, surfaceLevel = playerBottom, objTop
	}

	return playerFeet >= surfaceLevel-cubeSurfaceZone && playerFeet <= surfaceLevel+cubeSurfaceZone
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
