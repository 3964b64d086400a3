// Package state defines the simulation state shared by the physics stepper,
// hazard collision test, and search session: the mutable-looking but always
// value-copied State, the StateKey used to collapse near-duplicate states in
// the search tree, and the Node type stored in the search session's node arena.
package state

import (
	"math"

	"github.com/corvid-run/pathbot/geometry"
)

// GameMode selects which physics rules simulate.Step applies.
type GameMode int

const (
	Cube GameMode = iota
	Ship
)

// Action is the input applied during a single simulation tick.
type Action int

const (
	None Action = iota
	Press
	Release
)

// State is a complete, immutable snapshot of the simulated player at one
// instant. simulate.Step takes a State and returns a new one; nothing here
// is ever mutated in place.
type State struct {
	Position geometry.Vec2
	Vy       float32
	OnGround bool
	Rotation float32
	Mode     GameMode
	GravityFlipped bool

	// Floor and Ceiling bound ship-mode vertical travel; set by portal
	// triggers. Cube mode leaves Ceiling at +Inf.
	Floor   float32
	Ceiling float32

	Pressing bool

	// Speed is an index into the configured per-speed-portal tables
	// (0 = 0.5x ... 4 = 4x).
	Speed int
}

// CeilingUnbounded is the sentinel Ceiling value used for cube mode, where
// no portal has constrained vertical travel.
const CeilingUnbounded = math.MaxFloat32

// StateKey is a quantized, bit-packed fingerprint of a State used to prune
// the search tree: two states that quantize to the same key are treated as
// the same search node. It packs into 111 bits, split across two uint64s
// because Go has no native 128-bit integer.
type StateKey struct {
	Lo uint64 // bits 0-63
	Hi uint64 // bits 64-110
}

// NewStateKey quantizes s using the given cell sizes. xQuant/yQuant are
// world-unit cell widths for position; vyQuant is the cell width for
// vertical velocity.
func NewStateKey(s State, xQuant, yQuant, vyQuant float32) StateKey {
	xi := int32(math.Floor(float64(s.Position.X / xQuant)))
	yi := int32(math.Floor(float64(s.Position.Y / yQuant)))
	vyi := int32(math.Floor(float64(s.Vy / vyQuant)))

	var ceilingI int32
	if s.Ceiling >= CeilingUnbounded/2 {
		ceilingI = 10000
	} else {
		ceilingI = int32(math.Floor(float64(s.Ceiling / 30.0)))
	}

	lo := uint64(uint32(xi))
	lo |= uint64(uint32(yi)) << 32

	vyBits := uint64(vyi) & 0xFFFFFF
	hi := vyBits

	ceilingBits := uint64(ceilingI) & 0xFFFF
	hi |= ceilingBits << 24

	bit := func(n uint, cond bool) uint64 {
		if cond {
			return 1 << n
		}
		return 0
	}
	hi |= bit(40, s.OnGround)
	hi |= bit(41, s.GravityFlipped)
	hi |= bit(42, s.Pressing)

	var modeBit uint64
	if s.Mode == Ship {
		modeBit = 1
	}
	hi |= modeBit << 43
	hi |= (uint64(s.Speed) & 0x7) << 44

	return StateKey{Lo: lo, Hi: hi}
}

// Node is a single entry in the search tree: the state it reached, the cost
// to reach it, the estimated total cost used to order the open set, and a
// backpointer into the arena used to reconstruct the winning path.
type Node struct {
	G           float32
	F           float32
	State       State
	ParentIndex int // -1 for the root
	Action      Action
	HasAction   bool
}
