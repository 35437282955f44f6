package solver

import (
	"testing"
	"time"

	"github.com/j-arz-blue/labyrinth/maze"
)

func TestIterateMinimaxStopsEarlyOnATerminalRoot(t *testing.T) {
	g := crossBoardInstance(t)
	objective := maze.Location{Row: 0, Col: 0}
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      objective,
		ObjectiveID:           g.NodeAt(objective).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	action := IterateMinimax(NewContext(), inst, BaseEvaluator{})
	if action != NoAction {
		t.Fatalf("expected no action at an already-terminal root, got %+v", action)
	}

	depth, terminal := NewContext().SearchStatus()
	if depth != 0 || terminal {
		t.Fatalf("a fresh context must report no status yet, got depth=%d terminal=%v", depth, terminal)
	}
}

func TestIterateMinimaxReportsTerminalStatusAfterSolving(t *testing.T) {
	g := crossBoardInstance(t)
	objective := maze.Location{Row: 0, Col: 0}
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      objective,
		ObjectiveID:           g.NodeAt(objective).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	ctx := NewContext()
	IterateMinimax(ctx, inst, BaseEvaluator{})

	depth, terminal := ctx.SearchStatus()
	if depth != 1 {
		t.Fatalf("expected the loop to stop after its first iteration, got depth=%d", depth)
	}
	if !terminal {
		t.Fatalf("expected the published status to report a terminal result")
	}
}

func TestIterateMinimaxKeepsBestEffortActionWhenAbortedMidRun(t *testing.T) {
	g := crossBoardInstance(t)
	inst := Instance{
		Graph:                 g,
		PlayerLocation:        maze.Location{Row: 1, Col: 1},
		OpponentLocation:      maze.Location{Row: 2, Col: 2},
		ObjectiveID:           g.NodeAt(maze.Location{Row: 0, Col: 0}).ID,
		PreviousShiftLocation: maze.NoPreviousShift,
	}

	ctx := NewContext()
	go func() {
		time.Sleep(time.Microsecond)
		ctx.Abort()
	}()

	action := IterateMinimax(ctx, inst, BaseEvaluator{})
	if action == NoAction {
		t.Fatalf("expected a best-effort action even if the run was aborted partway through")
	}
}
