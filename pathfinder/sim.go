package pathfinder

import (
	"github.com/corvid-run/pathbot/catalog"
	"github.com/corvid-run/pathbot/geometry"
	"github.com/corvid-run/pathbot/simulate"
	"github.com/corvid-run/pathbot/state"
)

const (
	landingFarCutoff  = 200.0
	landingApproachTolerance = 2.0
	landingZoneTolerance     = 5.0
	landingSnapEpsilon       = 0.001
	worldFloorY              = 0.0
)

// applyLandingLogic runs Cube-mode ground detection after a physics step:
// a fall only counts as a landing when the player approached from the
// correct side, is still moving toward the surface, and overlaps it
// sufficiently; everything else keeps falling. It also applies a
// world-floor fallback so the bot never tunnels below y=0.
func (pf *Pathfinder) applyLandingLogic(prev, next state.State) state.State {
	next.OnGround = false

	playerW := float32(pf.cfg.Physics.PlayerWidth)
	playerH := float32(pf.cfg.Physics.PlayerHeight)

	prevPlayerBottom := prev.Position.Y - playerH*0.5
	if prev.GravityFlipped {
		prevPlayerBottom = prev.Position.Y + playerH*0.5
	}

	playerBottom := next.Position.Y - playerH*0.5
	if next.GravityFlipped {
		playerBottom = next.Position.Y + playerH*0.5
	}

	landed := false

	newMinX := next.Position.X - playerW*0.5
	newMaxX := next.Position.X + playerW*0.5
	searchStartX := newMinX - pf.maxObjWidth

	startIdx := pf.objectsFrom(searchStartX)

	for i := startIdx; i < len(pf.objects); i++ {
		obj := pf.objects[i]
		objMinX := obj.Position.X - obj.Width*0.5
		if objMinX > newMaxX {
			break
		}

		if obj.Category != catalog.Solid {
			continue
		}
		if abs32(obj.Position.X-next.Position.X) > landingFarCutoff {
			continue
		}
		if obj.OBB == nil {
			continue
		}

		playerOBB := geometry.NewOBB2D(next.Position, playerW, playerH, 0)
		if !playerOBB.Overlaps(*obj.OBB) {
			continue
		}

		objTop := obj.Position.Y + obj.Height*0.5
		objBottom := obj.Position.Y - obj.Height*0.5
		objLeft := obj.Position.X - obj.Width*0.5
		objRight := obj.Position.X + obj.Width*0.5

		playerLeft := next.Position.X - playerW*0.5
		playerRight := next.Position.X + playerW*0.5

		hOverlap := max32(min32(playerRight, objRight)-max32(playerLeft, objLeft), 0)
		minWidth := min32(playerW, obj.Width)
		sufficientHOverlap := hOverlap >= minWidth*0.5

		var comingFromCorrectSide, fallingTowardsSurface, landingOnSurface bool
		if next.GravityFlipped {
			comingFromCorrectSide = prevPlayerBottom <= objBottom+landingApproachTolerance
			fallingTowardsSurface = next.Vy >= 0
			landingOnSurface = playerBottom >= objBottom-landingZoneTolerance && playerBottom <= objTop
		} else {
			comingFromCorrectSide = prevPlayerBottom >= objTop-landingApproachTolerance
			fallingTowardsSurface = next.Vy <= 0
			landingOnSurface = playerBottom <= objTop+landingZoneTolerance && playerBottom >= objBottom
		}

		if comingFromCorrectSide && fallingTowardsSurface && landingOnSurface && sufficientHOverlap {
			if next.GravityFlipped {
				next.Position.Y = objBottom - playerH*0.5 - landingSnapEpsilon
			} else {
				next.Position.Y = objTop + playerH*0.5 + landingSnapEpsilon
			}
			next.Vy = 0
			next.OnGround = true
			next.Rotation = 0
			landed = true
			break
		}
	}

	if !landed && !next.GravityFlipped && next.Position.Y < playerH*0.5 {
		next.Position.Y = playerH * 0.5
		next.Vy = 0
		next.OnGround = true
		next.Rotation = 0
	}

	return next
}

// checkPortalCollisions applies mode, gravity, and bounds transitions for
// every portal the player's box currently overlaps.
func (pf *Pathfinder) checkPortalCollisions(s state.State) state.State {
	playerW := float32(pf.cfg.Physics.PlayerWidth)
	playerH := float32(pf.cfg.Physics.PlayerHeight)
	playerOBB := geometry.NewOBB2D(s.Position, playerW, playerH, 0)

	playerMinX := s.Position.X - playerW*0.5
	playerMaxX := s.Position.X + playerW*0.5
	searchStartX := playerMinX - pf.maxObjWidth

	startIdx := pf.objectsFrom(searchStartX)

	for i := startIdx; i < len(pf.objects); i++ {
		obj := pf.objects[i]
		objMinX := obj.Position.X - obj.Width*0.5
		if objMinX > playerMaxX {
			break
		}
		if obj.OBB == nil || !playerOBB.Overlaps(*obj.OBB) {
			continue
		}

		switch obj.Category {
		case catalog.ShipPortal:
			s.Mode = state.Ship
			s.OnGround = false

			portalY := obj.Position.Y
			halfBounds := float32(pf.cfg.Physics.ShipBounds) / 2.0
			s.Floor = max32(30.0*ceil32((portalY-(halfBounds+30.0))/30.0), 0)
			s.Ceiling = s.Floor + float32(pf.cfg.Physics.ShipBounds)

		case catalog.CubePortal:
			s.Mode = state.Cube
			s.Floor = worldFloorY
			s.Ceiling = state.CeilingUnbounded

		case catalog.InverseGravityPortal:
			s.GravityFlipped = true

		case catalog.NormalGravityPortal:
			s.GravityFlipped = false
		}
	}

	return s
}

// SimulateStep advances s by one tick and applies Cube-mode landing and
// portal transitions on top of the raw physics step.
func (pf *Pathfinder) SimulateStep(s state.State, action state.Action) state.State {
	next := simulate.Step(s, action, &pf.cfg.Physics)

	if next.Mode == state.Cube {
		next = pf.applyLandingLogic(s, next)
	}

	next = pf.checkPortalCollisions(next)
	return next
}
