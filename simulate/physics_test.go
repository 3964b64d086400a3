package simulate

import (
	"testing"

	"github.com/corvid-run/pathbot/config"
	"github.com/corvid-run/pathbot/geometry"
	"github.com/corvid-run/pathbot/state"
)

func testParams(t *testing.T) *config.PhysicsConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return &cfg.Physics
}

func TestStepIsDeterministic(t *testing.T) {
	p := testParams(t)
	s := state.State{
		Position: geometry.Vec2{X: 0, Y: 0},
		OnGround: true,
		Mode:     state.Cube,
		Ceiling:  state.CeilingUnbounded,
		Speed:    1,
	}

	a := Step(s, state.Press, p)
	b := Step(s, state.Press, p)
	if a != b {
		t.Fatalf("expected deterministic output, got %v vs %v", a, b)
	}
}

func TestCubeJumpSetsVelocityAndLeavesGround(t *testing.T) {
	p := testParams(t)
	s := state.State{OnGround: true, Mode: state.Cube, Ceiling: state.CeilingUnbounded, Speed: 1}

	next := Step(s, state.Press, p)
	if next.OnGround {
		t.Fatal("expected on_ground to clear after a jump press")
	}
	if next.Vy <= 0 {
		t.Fatalf("expected positive upward velocity after jump, got %v", next.Vy)
	}
}

func TestCubePressWhileAirborneDoesNotRejump(t *testing.T) {
	p := testParams(t)
	s := state.State{OnGround: false, Vy: 100, Mode: state.Cube, Ceiling: state.CeilingUnbounded, Speed: 1}

	next := Step(s, state.Press, p)
	// Airborne press still applies gravity but must not re-trigger the jump
	// velocity assignment, since on_ground is false.
	if next.Vy == float32(p.JumpVelocities[1]) {
		t.Fatal("expected airborne press not to reset velocity to jump velocity")
	}
}

func TestCubeGravityFlipReversesJumpDirection(t *testing.T) {
	p := testParams(t)
	s := state.State{OnGround: true, Mode: state.Cube, GravityFlipped: true, Ceiling: state.CeilingUnbounded, Speed: 1}

	next := Step(s, state.Press, p)
	if next.Vy >= 0 {
		t.Fatalf("expected negative jump velocity under flipped gravity, got %v", next.Vy)
	}
}

func TestCubeGroundedRotationSnapsToRightAngle(t *testing.T) {
	p := testParams(t)
	s := state.State{OnGround: true, Mode: state.Cube, Rotation: 37, Ceiling: state.CeilingUnbounded, Speed: 1}

	next := Step(s, state.None, p)
	if mod := float32mod(next.Rotation, 90); mod != 0 {
		t.Fatalf("expected grounded rotation to be a multiple of 90, got %v", next.Rotation)
	}
}

func TestShipNeverOnGround(t *testing.T) {
	p := testParams(t)
	s := state.State{OnGround: true, Mode: state.Ship, Ceiling: state.CeilingUnbounded, Speed: 1}

	next := Step(s, state.Press, p)
	if next.OnGround {
		t.Fatal("ship mode must never report on_ground")
	}
}

func TestShipClampsVelocityToBounds(t *testing.T) {
	p := testParams(t)
	s := state.State{Mode: state.Ship, Pressing: true, Vy: 799, Ceiling: state.CeilingUnbounded, Speed: 1}

	for i := 0; i < 50; i++ {
		s = Step(s, state.None, p)
	}
	if s.Vy > 800 || s.Vy < -800 {
		t.Fatalf("expected vy within [-800,800], got %v", s.Vy)
	}
}

func TestShipRespectsFloorAndCeiling(t *testing.T) {
	p := testParams(t)
	s := state.State{
		Mode:     state.Ship,
		Pressing: false,
		Vy:       -700,
		Position: geometry.Vec2{X: 0, Y: 16},
		Floor:    0,
		Ceiling:  300,
		Speed:    1,
	}

	// Falling at ~704 units/s moves y by ~2.9 this tick, which would put the
	// player's bottom below the floor without the clamp.
	next := Step(s, state.None, p)
	halfHeight := float32(p.PlayerHeight) * 0.5
	if next.Position.Y-halfHeight < next.Floor-0.01 {
		t.Fatalf("expected position clamped at floor, got y=%v", next.Position.Y)
	}

	up := s
	up.Vy = 700
	up.Position.Y = 300 - 16
	nextUp := Step(up, state.None, p)
	if nextUp.Position.Y+halfHeight > nextUp.Ceiling+0.01 {
		t.Fatalf("expected position clamped at ceiling, got y=%v", nextUp.Position.Y)
	}
}

func TestXAdvancesBySpeedTable(t *testing.T) {
	p := testParams(t)
	s := state.State{Mode: state.Cube, OnGround: true, Ceiling: state.CeilingUnbounded, Speed: 2}

	next := Step(s, state.None, p)
	want := s.Position.X + float32(p.PlayerSpeeds[2])*float32(p.DT)
	if next.Position.X != want {
		t.Fatalf("x = %v, want %v", next.Position.X, want)
	}
}

func float32mod(a, b float32) float32 {
	for a < 0 {
		a += b
	}
	for a >= b {
		a -= b
	}
	return a
}
