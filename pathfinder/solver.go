package pathfinder

import (
	"container/heap"

	"github.com/corvid-run/pathbot/collide"
	"github.com/corvid-run/pathbot/state"
)

const (
	fallDeathY     = -100.0
	cubePressPenaltyScale = 15.0
	shipPressPenaltyScale = 0.5
)

// StepSingle pops at most one node from the open set and expands it unless
// the closed set already holds its state key at a lower cost, or detects
// termination (goal reached, frontier exhausted, or stagnation). It returns
// true once the session is finished.
func (pf *Pathfinder) StepSingle(session *SearchSession, goalX float32) bool {
	if session.GoalReachedIndex >= 0 || session.openSet.Len() == 0 {
		return true
	}

	interval := pf.cfg.Search.StagnationCheckInterval
	if session.NodesExpanded >= session.checkpointNodes+interval {
		progress := session.BestX - session.checkpointBestX
		if progress < float32(pf.cfg.Search.MinProgressPerInterval) {
			session.GoalReachedIndex = session.BestXIndex
			return true
		}
		session.checkpointBestX = session.BestX
		session.checkpointNodes = session.NodesExpanded
	}

	entry := heap.Pop(&session.openSet).(heapEntry)
	currentIdx := entry.index
	currentNode := session.AllNodes[currentIdx]

	session.NodesExpanded++

	if currentNode.State.Position.X > session.BestX {
		session.BestX = currentNode.State.Position.X
		session.BestXIndex = currentIdx
	}

	if currentNode.State.Position.X >= goalX {
		session.GoalReachedIndex = currentIdx
		return true
	}

	key := state.NewStateKey(currentNode.State, float32(pf.cfg.Search.XQuant), float32(pf.cfg.Search.YQuant), float32(pf.cfg.Search.VyQuant))

	if bestG, ok := session.closedSet[key]; ok {
		if currentNode.G > bestG+float32(pf.cfg.Physics.DT)*0.5 {
			return false
		}
	}
	session.closedSet[key] = currentNode.G

	actions := pf.actionsToTry(currentNode.State)

	for _, action := range actions {
		nextState := pf.SimulateStep(currentNode.State, action)

		if nextState.Position.Y < fallDeathY {
			continue
		}

		if _, hit := collide.Test(nextState, pf.objects, pf.grid, &pf.cfg.Physics); hit {
			continue
		}

		newG := currentNode.G + float32(pf.cfg.Physics.DT)
		if action == state.Press {
			if currentNode.State.Mode == state.Cube {
				newG += cubePressPenaltyScale * float32(pf.cfg.Physics.DT)
			} else {
				newG += shipPressPenaltyScale * float32(pf.cfg.Physics.DT)
			}
		}

		newF := newG + heuristic(nextState, goalX, pf.cfg.Physics.PlayerSpeeds, pf.cfg.Search.HeuristicWeight)

		nextNode := state.Node{
			G:           newG,
			F:           newF,
			State:       nextState,
			ParentIndex: currentIdx,
			Action:      action,
			HasAction:   true,
		}

		nextIdx := len(session.AllNodes)
		session.AllNodes = append(session.AllNodes, nextNode)
		heap.Push(&session.openSet, heapEntry{f: newF, index: nextIdx, x: nextState.Position.X})
	}

	return false
}

// actionsToTry lists the candidate inputs worth simulating from s: a
// currently-pressed button can only be released or held, Cube mode can
// only jump while grounded, and Ship mode can always press.
func (pf *Pathfinder) actionsToTry(s state.State) []state.Action {
	if s.Pressing {
		return []state.Action{state.None, state.Release}
	}
	switch s.Mode {
	case state.Cube:
		if s.OnGround {
			return []state.Action{state.None, state.Press}
		}
		return []state.Action{state.None}
	case state.Ship:
		return []state.Action{state.None, state.Press}
	}
	return []state.Action{state.None}
}

// Step runs StepSingle until the session terminates, returning true if a
// path to the goal (or the stagnation fallback) was found.
func (pf *Pathfinder) Step(session *SearchSession, goalX float32) bool {
	for session.openSet.Len() > 0 {
		if pf.StepSingle(session, goalX) {
			return true
		}
	}
	return false
}

// PathStep is one run-length-coalesced segment of a reconstructed path:
// hold action for the given duration.
type PathStep struct {
	Action   state.Action
	Duration float32
}

// ReconstructPath walks backward from endIdx through the node arena and
// returns the forward action sequence, with consecutive no-op segments
// merged into a single duration.
func (pf *Pathfinder) ReconstructPath(session *SearchSession, endIdx int) []PathStep {
	var raw []PathStep
	current := session.AllNodes[endIdx]
	for current.ParentIndex >= 0 {
		if current.HasAction {
			raw = append(raw, PathStep{Action: current.Action, Duration: float32(pf.cfg.Physics.DT)})
		}
		current = session.AllNodes[current.ParentIndex]
	}

	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}

	var merged []PathStep
	for _, step := range raw {
		if step.Action == state.None && len(merged) > 0 && merged[len(merged)-1].Action == state.None {
			merged[len(merged)-1].Duration += step.Duration
			continue
		}
		merged = append(merged, step)
	}

	return merged
}
