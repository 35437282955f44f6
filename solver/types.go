// Package solver implements the exhaustive BFS and iterative-deepening
// negamax searches over a maze.Graph: given a starting board and piece
// positions, find the shift-and-move actions that reach an objective tile.
package solver

import "github.com/j-arz-blue/labyrinth/maze"

// Infinity is strictly larger than any non-terminal evaluation a base or
// heuristic Evaluator is expected to produce.
const Infinity = 10000

// PlayerAction is one full turn: a shift (location and leftover rotation)
// followed by the move_location the mover's piece ends up at.
type PlayerAction struct {
	Shift        maze.ShiftAction
	MoveLocation maze.Location
}

// NoAction is the zero PlayerAction, meaning "no action found".
// NegamaxFindBestAction and IterateMinimax return it when no root action was
// chosen, and callers detect that by comparing with NoAction;
// BFSFindBestActions reports failure with an empty slice instead. A real
// action can only equal NoAction if (0,0) is a configured shift location.
var NoAction = PlayerAction{}

// Instance is the immutable input to a solve: the board, both pieces'
// locations, the objective tile's node ID, and the shift that produced the
// current position (or maze.NoPreviousShift).
type Instance struct {
	Graph                 maze.Graph
	PlayerLocation        maze.Location
	OpponentLocation      maze.Location
	ObjectiveID           int
	PreviousShiftLocation maze.Location
}

// Evaluation is a signed score plus a terminal flag.
type Evaluation struct {
	Value    int
	Terminal bool
}

// Negate flips the value and preserves the terminal flag, per negamax's
// convention of scoring every position from the mover's own viewpoint.
func (e Evaluation) Negate() Evaluation {
	return Evaluation{Value: -e.Value, Terminal: e.Terminal}
}
