package state

import (
	"testing"

	"github.com/corvid-run/pathbot/geometry"
)

func baseState() State {
	return State{
		Position: geometry.Vec2{X: 100, Y: 50},
		Vy:       0,
		OnGround: true,
		Mode:     Cube,
		Floor:    0,
		Ceiling:  CeilingUnbounded,
		Speed:    1,
	}
}

func TestStateKeyStableUnderIdenticalInput(t *testing.T) {
	s := baseState()
	a := NewStateKey(s, 1, 1, 10)
	b := NewStateKey(s, 1, 1, 10)
	if a != b {
		t.Fatalf("expected identical keys, got %v vs %v", a, b)
	}
}

func TestStateKeySeparatesDistinctPositions(t *testing.T) {
	s1 := baseState()
	s2 := baseState()
	s2.Position.X += 50

	k1 := NewStateKey(s1, 1, 1, 10)
	k2 := NewStateKey(s2, 1, 1, 10)
	if k1 == k2 {
		t.Fatal("expected distinct keys for distinct quantized x")
	}
}

func TestStateKeyCollapsesWithinQuantizationCell(t *testing.T) {
	s1 := baseState()
	s2 := baseState()
	s2.Position.X += 0.5 // well within a 1-unit quantization cell

	k1 := NewStateKey(s1, 1, 1, 10)
	k2 := NewStateKey(s2, 1, 1, 10)
	if k1 != k2 {
		t.Fatal("expected sub-cell position differences to collapse to the same key")
	}
}

func TestStateKeyDistinguishesFlags(t *testing.T) {
	s := baseState()
	k1 := NewStateKey(s, 1, 1, 10)

	s.OnGround = false
	k2 := NewStateKey(s, 1, 1, 10)
	if k1 == k2 {
		t.Fatal("expected on_ground flag to affect the key")
	}

	s = baseState()
	s.GravityFlipped = true
	k3 := NewStateKey(s, 1, 1, 10)
	if k1 == k3 {
		t.Fatal("expected gravity_flipped flag to affect the key")
	}

	s = baseState()
	s.Pressing = true
	k4 := NewStateKey(s, 1, 1, 10)
	if k1 == k4 {
		t.Fatal("expected pressing flag to affect the key")
	}

	s = baseState()
	s.Mode = Ship
	k5 := NewStateKey(s, 1, 1, 10)
	if k1 == k5 {
		t.Fatal("expected mode to affect the key")
	}

	s = baseState()
	s.Speed = 3
	k6 := NewStateKey(s, 1, 1, 10)
	if k1 == k6 {
		t.Fatal("expected speed to affect the key")
	}
}

func TestStateKeyCeilingSentinelForCubeMode(t *testing.T) {
	s := baseState()
	s.Ceiling = CeilingUnbounded
	k1 := NewStateKey(s, 1, 1, 10)

	s.Ceiling = CeilingUnbounded / 1.5
	k2 := NewStateKey(s, 1, 1, 10)
	if k1 != k2 {
		t.Fatal("expected any sufficiently large ceiling to collapse to the sentinel bucket")
	}
}

func TestStateKeyBoundedCeilingAffectsKey(t *testing.T) {
	s := baseState()
	s.Mode = Ship
	s.Ceiling = 300
	k1 := NewStateKey(s, 1, 1, 10)

	s.Ceiling = 600
	k2 := NewStateKey(s, 1, 1, 10)
	if k1 == k2 {
		t.Fatal("expected distinct bounded ceilings to produce distinct keys")
	}
}
