package solver

import (
	"github.com/j-arz-blue/labyrinth/maze"
)

// bfsState is one node of the search tree, held in an arena and referenced
// by index rather than by pointer — a flat slice instead of a linked
// back-reference graph, matching the teacher's preference for bucketed
// slices over pointer structures.
type bfsState struct {
	parent  int // -1 for the root
	shift   maze.ShiftAction
	reached []maze.Reachable
}

// BFSFindBestActions returns the shortest PlayerAction sequence that walks
// inst.PlayerLocation to the tile holding inst.ObjectiveID, minimizing the
// number of shifts. It returns nil when the queue of states runs empty or
// the context is aborted before any answer is found. States are not
// deduplicated, so the queue only runs empty when no shift can be taken; on
// an unsolvable board with usable shift locations the search runs until the
// context is aborted.
//
// The root is never itself inspected for a win: the rules require a shift
// every turn, so even a player already standing on the objective performs
// one shift before the position is checked again (spec scenario C).
func BFSFindBestActions(ctx *Context, inst Instance) []PlayerAction {
	ctx.reset()
	logger := ctx.logger()
	logger.Debug().Int("objective", inst.ObjectiveID).Msg("bfs solve start")

	arena := []bfsState{{
		parent: -1,
		shift:  maze.ShiftAction{Location: inst.PreviousShiftLocation, Rotation: maze.Rotation0},
		reached: []maze.Reachable{
			{Location: inst.PlayerLocation, ParentSourceIndex: 0},
		},
	}}
	queue := []int{0}
	expansions := 0

	for len(queue) > 0 {
		if ctx.Aborted() {
			logger.Debug().Int("expansions", expansions).Msg("bfs solve aborted")
			return nil
		}

		idx := queue[0]
		queue = queue[1:]
		expansions++

		board := replayShifts(inst.Graph, arena, idx)
		state := arena[idx]
		forbidden := board.OpposingShift(state.shift.Location)
		leftoverPaths := board.Leftover().Paths

		for _, shiftLoc := range board.ValidShiftLocations() {
			if shiftLoc == forbidden {
				continue
			}
			for _, rotation := range maze.CandidateLeftoverRotations(leftoverPaths) {
				child := board.Clone()
				child.Shift(shiftLoc, rotation)

				sources := make([]maze.Location, len(state.reached))
				for i, r := range state.reached {
					sources[i] = child.TranslateByShift(r.Location, shiftLoc)
				}
				reached := maze.MultiSourceReachableLocations(child, sources)

				childIdx := len(arena)
				arena = append(arena, bfsState{
					parent:  idx,
					shift:   maze.ShiftAction{Location: shiftLoc, Rotation: rotation},
					reached: reached,
				})

				for _, r := range reached {
					if child.NodeAt(r.Location).ID == inst.ObjectiveID {
						actions := reconstructActions(arena, childIdx, r)
						logger.Debug().Int("expansions", expansions).Int("actions", len(actions)).Msg("bfs solve found")
						return actions
					}
				}
				queue = append(queue, childIdx)
			}
		}
	}

	logger.Debug().Int("expansions", expansions).Msg("bfs solve exhausted")
	return nil
}

// replayShifts reconstructs the board at arena[idx] by cloning the base
// graph and replaying every shift from the root down to idx, in order. The
// root's placeholder shift is never replayed.
func replayShifts(base maze.Graph, arena []bfsState, idx int) maze.Graph {
	var chain []int
	for i := idx; i != -1; i = arena[i].parent {
		chain = append(chain, i)
	}
	board := base.Clone()
	for i := len(chain) - 1; i >= 0; i-- {
		node := arena[chain[i]]
		if node.parent == -1 {
			continue
		}
		board.Shift(node.shift.Location, node.shift.Rotation)
	}
	return board
}

// reconstructActions walks from the winning Reachable r at state idx back
// to the root, emitting one PlayerAction per level, then reverses the
// result into root-to-goal order.
func reconstructActions(arena []bfsState, idx int, r maze.Reachable) []PlayerAction {
	var actions []PlayerAction
	cur := idx
	for arena[cur].parent != -1 {
		actions = append(actions, PlayerAction{Shift: arena[cur].shift, MoveLocation: r.Location})
		parent := arena[cur].parent
		r = arena[parent].reached[r.ParentSourceIndex]
		cur = parent
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
