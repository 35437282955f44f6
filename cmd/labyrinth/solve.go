package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/j-arz-blue/labyrinth/maze"
	"github.com/j-arz-blue/labyrinth/solver"
	"github.com/j-arz-blue/labyrinth/textlayout"
)

var (
	layoutPath    string
	playerFlag    string
	opponentFlag  string
	objectiveFlag string
	prevShiftFlag string
	algorithm     string
	maxDepth      int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find an action sequence or single best move for a maze layout",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&layoutPath, "layout", "", "path to a text-layout maze file (required)")
	solveCmd.Flags().StringVar(&playerFlag, "player", "0,0", "player location as row,col")
	solveCmd.Flags().StringVar(&opponentFlag, "opponent", "0,0", "opponent location as row,col (negamax/iterative only)")
	solveCmd.Flags().StringVar(&objectiveFlag, "objective", "0,0", "objective location (in the unshifted layout) as row,col")
	solveCmd.Flags().StringVar(&prevShiftFlag, "previous-shift", "-1,-1", "the shift location that produced the current position")
	solveCmd.Flags().StringVar(&algorithm, "algorithm", "bfs", "one of: bfs, negamax, iterative")
	solveCmd.Flags().IntVar(&maxDepth, "max-depth", 4, "search depth for the negamax algorithm")
	_ = solveCmd.MarkFlagRequired("layout")
}

func runSolve(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(layoutPath)
	if err != nil {
		return fmt.Errorf("reading layout file: %w", err)
	}
	graph, err := textlayout.Parse(string(text))
	if err != nil {
		return fmt.Errorf("parsing layout: %w", err)
	}

	player, err := parseLocation(playerFlag)
	if err != nil {
		return fmt.Errorf("parsing --player: %w", err)
	}
	opponent, err := parseLocation(opponentFlag)
	if err != nil {
		return fmt.Errorf("parsing --opponent: %w", err)
	}
	objectiveLoc, err := parseLocation(objectiveFlag)
	if err != nil {
		return fmt.Errorf("parsing --objective: %w", err)
	}
	prevShift, err := parseLocation(prevShiftFlag)
	if err != nil {
		return fmt.Errorf("parsing --previous-shift: %w", err)
	}
	if !graph.InBounds(objectiveLoc) {
		return fmt.Errorf("objective location %v is out of bounds", objectiveLoc)
	}

	inst := solver.Instance{
		Graph:                 graph,
		PlayerLocation:        player,
		OpponentLocation:      opponent,
		ObjectiveID:           graph.NodeAt(objectiveLoc).ID,
		PreviousShiftLocation: prevShift,
	}

	ctx := solver.NewContext()
	log.Info().Str("solve_id", ctx.ID().String()).Str("algorithm", algorithm).Msg("starting solve")

	switch algorithm {
	case "bfs":
		actions := solver.BFSFindBestActions(ctx, inst)
		printActions(actions)
	case "negamax":
		action, eval := solver.NegamaxFindBestAction(ctx, inst, solver.BaseEvaluator{}, maxDepth)
		printSingleAction(action, eval)
	case "iterative":
		action := solver.IterateMinimax(ctx, inst, solver.BaseEvaluator{})
		depth, terminal := ctx.SearchStatus()
		fmt.Printf("depth=%d terminal=%v\n", depth, terminal)
		printSingleAction(action, solver.Evaluation{})
	default:
		return fmt.Errorf("unknown algorithm %q: want bfs, negamax, or iterative", algorithm)
	}
	return nil
}

func printActions(actions []solver.PlayerAction) {
	if len(actions) == 0 {
		fmt.Println("no solution found")
		return
	}
	for i, a := range actions {
		fmt.Printf("%d: shift=%v rotation=%v move_to=%v\n", i, a.Shift.Location, a.Shift.Rotation, a.MoveLocation)
	}
}

func printSingleAction(a solver.PlayerAction, eval solver.Evaluation) {
	if a == solver.NoAction {
		fmt.Println("no action found")
		return
	}
	fmt.Printf("shift=%v rotation=%v move_to=%v value=%d terminal=%v\n",
		a.Shift.Location, a.Shift.Rotation, a.MoveLocation, eval.Value, eval.Terminal)
}

func parseLocation(s string) (maze.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.Location{}, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.Location{}, err
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.Location{}, err
	}
	return maze.Location{Row: row, Col: col}, nil
}
