package solver

import "github.com/j-arz-blue/labyrinth/maze"

// shiftCursor enumerates the children produced by inserting the leftover at
// one shift location: it performs the underlying Shift exactly once,
// exposes the resulting reachable moves, lets the caller try every
// candidate rotation by overwriting the inserted tile in place, and
// restores the graph to its pre-shift state when closed — even if the
// caller stops iterating early because of an abort.
type shiftCursor struct {
	graph              *maze.Graph
	shiftLoc           maze.Location
	rotations          []maze.Rotation
	leftoverRotation   maze.Rotation
	pushedOutRotation  maze.Rotation
	translatedPlayer   maze.Location
	translatedOpponent maze.Location
	moves              []maze.Location
}

func openShiftCursor(graph *maze.Graph, shiftLoc, playerLoc, opponentLoc maze.Location) *shiftCursor {
	rotations := maze.CandidateLeftoverRotations(graph.Leftover().Paths)
	leftoverRotation := graph.Leftover().Rotation
	graph.Shift(shiftLoc, rotations[0])

	c := &shiftCursor{
		graph:              graph,
		shiftLoc:           shiftLoc,
		rotations:          rotations,
		leftoverRotation:   leftoverRotation,
		pushedOutRotation:  graph.Leftover().Rotation,
		translatedPlayer:   graph.TranslateByShift(playerLoc, shiftLoc),
		translatedOpponent: graph.TranslateByShift(opponentLoc, shiftLoc),
	}
	c.moves = maze.ReachableLocations(*graph, c.translatedPlayer)
	return c
}

func (c *shiftCursor) setRotation(r maze.Rotation) {
	c.graph.SetRotationAt(c.shiftLoc, r)
	c.moves = maze.ReachableLocations(*c.graph, c.translatedPlayer)
}

// close undoes the cursor's shift, restoring the graph exactly.
func (c *shiftCursor) close() {
	c.graph.SetRotationAt(c.shiftLoc, c.leftoverRotation)
	c.graph.Shift(c.graph.OpposingShift(c.shiftLoc), c.pushedOutRotation)
}

// negamaxRun holds the mutable state of one negamax invocation: the node
// counter and, once depth 0 finishes, the action it chose.
type negamaxRun struct {
	ctx         *Context
	eval        Evaluator
	objectiveID int
	maxDepth    int
	nodeCount   int
	rootAction  PlayerAction
}

// NegamaxFindBestAction runs a single depth-limited negamax search and
// returns the best action found at the root, along with its evaluation
// from the acting player's viewpoint.
func NegamaxFindBestAction(ctx *Context, inst Instance, eval Evaluator, maxDepth int) (PlayerAction, Evaluation) {
	ctx.reset()
	logger := ctx.logger()
	logger.Debug().Int("max_depth", maxDepth).Msg("negamax solve start")

	run := &negamaxRun{ctx: ctx, eval: eval, objectiveID: inst.ObjectiveID, maxDepth: maxDepth, rootAction: NoAction}
	graph := inst.Graph.Clone()
	result := run.search(&graph, inst.PlayerLocation, inst.OpponentLocation, inst.PreviousShiftLocation, 0)

	logger.Debug().Int("nodes", run.nodeCount).Int("value", result.Value).Bool("terminal", result.Terminal).Msg("negamax solve done")
	return run.rootAction, result
}

// search implements the negamax recursion of spec §4.5: evaluate, and
// unless at a leaf, enumerate every (shift_location, rotation,
// move_location) child by mutating graph in place and undoing each shift
// before trying the next shift location.
func (r *negamaxRun) search(graph *maze.Graph, playerLoc, opponentLoc, prevShift maze.Location, depth int) Evaluation {
	r.nodeCount++

	e := r.eval.Evaluate(Instance{
		Graph:            *graph,
		PlayerLocation:   playerLoc,
		OpponentLocation: opponentLoc,
		ObjectiveID:      r.objectiveID,
	})
	if depth == r.maxDepth || e.Terminal {
		return e
	}

	best := Evaluation{Value: -Infinity, Terminal: false}
	forbidden := graph.OpposingShift(prevShift)

	for _, shiftLoc := range graph.ValidShiftLocations() {
		if r.ctx.Aborted() {
			break
		}
		if shiftLoc == forbidden {
			continue
		}

		cursor := openShiftCursor(graph, shiftLoc, playerLoc, opponentLoc)
		aborted := r.enumerateShift(graph, cursor, shiftLoc, depth, &best)
		cursor.close()
		if aborted {
			break
		}
	}

	return best
}

// enumerateShift tries every rotation and reachable move for one already
// open shiftCursor, recursing once per child and updating best in place.
// It returns whether the context was observed aborted mid-enumeration.
func (r *negamaxRun) enumerateShift(graph *maze.Graph, cursor *shiftCursor, shiftLoc maze.Location, depth int, best *Evaluation) bool {
	for _, rotation := range cursor.rotations {
		cursor.setRotation(rotation)
		for _, moveLoc := range cursor.moves {
			childEval := r.search(graph, cursor.translatedOpponent, moveLoc, shiftLoc, depth+1)
			v := childEval.Negate()
			if v.Value > best.Value {
				*best = v
				if depth == 0 {
					r.rootAction = PlayerAction{
						Shift:        maze.ShiftAction{Location: shiftLoc, Rotation: rotation},
						MoveLocation: moveLoc,
					}
				}
			}
			if r.ctx.Aborted() {
				return true
			}
		}
	}
	return false
}
