package solver

import (
	"testing"

	"github.com/j-arz-blue/labyrinth/maze"
)

func crossBoardInstance(t *testing.T) maze.Graph {
	t.Helper()
	b := maze.NewGraphBuilder(3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b.SetOutPaths(maze.Location{Row: row, Col: col}, maze.Cross)
		}
	}
	b.SetLeftover(maze.Cross, maze.Rotation0)
	b.UseStandardShiftLocations()
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestNegamaxTerminalAtRootReturnsImmediatelyWithNoAction(t *testing.T) {
	g := crossBoardInstance(t)
	objective := maze.Location{Row: 0, Col: 0}
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      objective,
		ObjectiveID:           g.NodeAt(objective).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	action, eval := NegamaxFindBestAction(NewContext(), inst, BaseEvaluator{}, 4)

	if !eval.Terminal || eval.Value != -1 {
		t.Fatalf("expected terminal loss for the side to move, got %+v", eval)
	}
	if action != NoAction {
		t.Fatalf("expected no action to be chosen at an already-terminal root, got %+v", action)
	}
}

func TestNegamaxRestoresGraphAfterACompletedPly(t *testing.T) {
	g := crossBoardInstance(t)
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      maze.Location{Row: 2, Col: 2},
		ObjectiveID:           g.NodeAt(maze.Location{Row: 0, Col: 0}).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	before := g.Clone()
	_, _ = NegamaxFindBestAction(NewContext(), inst, BaseEvaluator{}, 2)

	if inst.Graph.Leftover() != before.Leftover() {
		t.Fatalf("leftover changed after a completed negamax ply")
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			loc := maze.Location{Row: row, Col: col}
			if inst.Graph.NodeAt(loc) != before.NodeAt(loc) {
				t.Fatalf("node at %v changed after a completed negamax ply", loc)
			}
		}
	}
}

func TestNegamaxChoosesAWinningMoveWhenOneExists(t *testing.T) {
	g := crossBoardInstance(t)
	objective := maze.Location{Row: 0, Col: 0}
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      maze.Location{Row: 2, Col: 2},
		ObjectiveID:           g.NodeAt(objective).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	action, eval := NegamaxFindBestAction(NewContext(), inst, BaseEvaluator{}, 2)
	if action == NoAction {
		t.Fatalf("expected a chosen action on a fully-connected board")
	}
	if eval.Value < 0 {
		t.Fatalf("expected a non-losing evaluation on a fully-connected board, got %+v", eval)
	}
}
