package pathfinder

import (
	"container/heap"

	"github.com/corvid-run/pathbot/state"
)

// heapEntry is the priority-queue handle into all Nodes: min f first, then
// max x (prefer the node that made more horizontal progress), then max
// index (prefer the most recently generated node) to break remaining ties.
type heapEntry struct {
	f     float32
	index int
	x     float32
}

type nodeHeap []heapEntry

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.x != b.x {
		return a.x > b.x
	}
	return a.index > b.index
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// SearchSession is the mutable state of a single A* run: the frontier, the
// closed-set pruning table, and the arena of every node generated so far.
// Nodes are never removed from AllNodes, so ParentIndex back-pointers
// always stay valid for path reconstruction.
type SearchSession struct {
	openSet  nodeHeap
	closedSet map[state.StateKey]float32

	AllNodes []state.Node

	NodesExpanded    int
	GoalReachedIndex int // -1 until set
	BestXIndex       int
	BestX            float32

	checkpointBestX    float32
	checkpointNodes int
}

// OpenLen reports the number of nodes currently on the frontier, for
// progress reporting alongside NodesExpanded and BestX.
func (s *SearchSession) OpenLen() int {
	return s.openSet.Len()
}

// heuristic estimates remaining time-to-goal, plus a small penalty for
// ship-mode vertical drift from the center of its current bounds.
func heuristic(s state.State, goalX float32, playerSpeeds [5]float64, heuristicWeight float64) float32 {
	dist := goalX - s.Position.X
	if dist < 0 {
		dist = 0
	}
	timeToGoal := dist / float32(playerSpeeds[s.Speed])

	var penalty float32
	if s.Mode == state.Ship && s.Ceiling < state.CeilingUnbounded/2 {
		centerY := (s.Floor + s.Ceiling) / 2
		verticalOffset := abs32(s.Position.Y - centerY)
		penalty = (verticalOffset / 150.0) * 0.5
	}

	return (timeToGoal + penalty) * float32(heuristicWeight)
}

// StartSearch creates a fresh session rooted at a grounded, 1x-speed Cube
// state at startPos, the same starting posture every run begins from.
func (pf *Pathfinder) StartSearch(startPos state.State, goalX float32) *SearchSession {
	startState := state.State{
		Position:       startPos.Position,
		Vy:             0,
		OnGround:       true,
		Rotation:       0,
		Mode:           state.Cube,
		GravityFlipped: false,
		Floor:          0,
		Ceiling:        state.CeilingUnbounded,
		Pressing:       false,
		Speed:          1,
	}

	startNode := state.Node{
		G:           0,
		F:           heuristic(startState, goalX, pf.cfg.Physics.PlayerSpeeds, pf.cfg.Search.HeuristicWeight),
		State:       startState,
		ParentIndex: -1,
	}

	session := &SearchSession{
		closedSet:        make(map[state.StateKey]float32),
		AllNodes:         []state.Node{startNode},
		GoalReachedIndex: -1,
		BestXIndex:       0,
		BestX:            startState.Position.X,
		checkpointBestX:  startState.Position.X,
	}
	heap.Push(&session.openSet, heapEntry{f: startNode.F, index: 0, x: startNode.State.Position.X})
	return session
}
