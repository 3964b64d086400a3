// Package simulate steps the player's physics state forward one fixed
// tick, matching the two game modes (Cube and Ship) and their distinct
// gravity, jump, and thrust rules.
package simulate

import (
	"math"

	"github.com/corvid-run/pathbot/config"
	"github.com/corvid-run/pathbot/state"
)

// Ship-mode thrust/fall acceleration constants. These come in a
// press/no-press, above/below-threshold quartet rather than a single
// acceleration value.
const (
	pressAccelStrong   = 1397.0491
	pressAccelWeak     = 1117.6433
	releaseAccelStrong = -1341.1719
	releaseAccelWeak   = -894.1146
	shipVyClamp        = 800.0
)

// Step advances s by one fixed tick under action, using the tables in p.
// It never mutates s; it always returns a new value.
func Step(s state.State, action state.Action, p *config.PhysicsConfig) state.State {
	next := s

	switch action {
	case state.Press:
		next.Pressing = true
	case state.Release:
		next.Pressing = false
	}

	gravityMult := float32(1.0)
	if s.GravityFlipped {
		gravityMult = -1.0
	}
	effectiveGravity := float32(p.Gravities[s.Speed]) * gravityMult
	dt := float32(p.DT)

	switch s.Mode {
	case state.Cube:
		stepCube(&next, s, action, p, effectiveGravity, gravityMult, dt)
	case state.Ship:
		stepShip(&next, s, p, gravityMult, dt)
	}

	next.Position.X += float32(p.PlayerSpeeds[s.Speed]) * dt
	return next
}

func stepCube(next *state.State, s state.State, action state.Action, p *config.PhysicsConfig, effectiveGravity, gravityMult, dt float32) {
	if action == state.Press && next.OnGround {
		next.Vy = float32(p.JumpVelocities[s.Speed]) * gravityMult
		next.OnGround = false
	}

	next.Vy += effectiveGravity * dt
	next.Vy = quantize(next.Vy, float32(p.VyQuantizeStep))

	next.Position.Y += next.Vy * dt * float32(p.VerticalDTScale)

	if !next.OnGround {
		next.Rotation -= 360.0 * dt * gravityMult
	} else {
		next.Rotation = float32(math.Round(float64(next.Rotation/90.0))) * 90.0
	}
}

func stepShip(next *state.State, s state.State, p *config.PhysicsConfig, gravityMult, dt float32) {
	threshold := float32(p.ShipVelocities[s.Speed]) * gravityMult

	var effectiveAccel float32
	if next.Pressing {
		if (gravityMult > 0 && next.Vy <= threshold) || (gravityMult < 0 && next.Vy >= threshold) {
			effectiveAccel = pressAccelStrong * gravityMult
		} else {
			effectiveAccel = pressAccelWeak * gravityMult
		}
	} else {
		if (gravityMult > 0 && next.Vy >= threshold) || (gravityMult < 0 && next.Vy <= threshold) {
			effectiveAccel = releaseAccelStrong * gravityMult
		} else {
			effectiveAccel = releaseAccelWeak * gravityMult
		}
	}

	next.Vy += effectiveAccel * dt
	next.Vy = clamp(next.Vy, -shipVyClamp, shipVyClamp)
	next.Vy = quantize(next.Vy, float32(p.VyQuantizeStep))

	next.Position.Y += next.Vy * dt * float32(p.VerticalDTScale)

	if next.Ceiling < state.CeilingUnbounded/2 {
		halfHeight := float32(p.PlayerHeight) * 0.5
		playerTop := next.Position.Y + halfHeight
		playerBottom := next.Position.Y - halfHeight

		if s.GravityFlipped {
			if playerBottom < next.Floor {
				if next.Vy < 0 {
					next.Vy = 0
				}
				next.Position.Y = next.Floor + halfHeight
			}
			if playerTop > next.Ceiling {
				if next.Vy > 0 {
					next.Vy = 0
				}
				next.Position.Y = next.Ceiling - halfHeight
			}
		} else {
			if playerTop > next.Ceiling {
				if next.Vy > 0 {
					next.Vy = 0
				}
				next.Position.Y = next.Ceiling - halfHeight
			}
			if playerBottom < next.Floor {
				if next.Vy < 0 {
					next.Vy = 0
				}
				next.Position.Y = next.Floor + halfHeight
			}
		}
	}

	next.Rotation = clamp(next.Vy/8.0, -45.0, 45.0) * gravityMult
	next.OnGround = false
}

func quantize(v, step float32) float32 {
	return float32(math.Round(float64(v)*float64(step))) / step
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
