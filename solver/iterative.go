package solver

// IterateMinimax runs negamax with increasing depth, starting at
// cfg.DefaultStartDepth, until the stored result is terminal or the context
// is aborted. There is no depth ceiling, matching the original do-while
// loop this is grounded on (algolibs/solvers/minimax.cpp's
// IterativeDeepening::startIterativeDeepening: "do { ++depth; ... } while
// (!terminal && !aborted)"). A run that completes without abort always
// overwrites the stored result; an aborted run only overwrites it if no
// depth has completed yet, so the caller still gets a best-effort answer
// instead of nothing.
func IterateMinimax(ctx *Context, inst Instance, eval Evaluator) PlayerAction {
	ctx.reset()
	logger := ctx.logger()
	cfg := DefaultConfig()

	storedAction := NoAction
	storedEval := Evaluation{}
	haveStored := false

	for depth := cfg.DefaultStartDepth; ; depth++ {
		run := &negamaxRun{ctx: ctx, eval: eval, objectiveID: inst.ObjectiveID, maxDepth: depth, rootAction: NoAction}
		graph := inst.Graph.Clone()
		result := run.search(&graph, inst.PlayerLocation, inst.OpponentLocation, inst.PreviousShiftLocation, 0)
		aborted := ctx.Aborted()

		if !aborted || !haveStored {
			storedAction = run.rootAction
			storedEval = result
			haveStored = true
		}

		ctx.publish(depth, storedEval.Terminal)
		logger.Debug().
			Int("depth", depth).
			Int("nodes", run.nodeCount).
			Bool("aborted", aborted).
			Bool("terminal", storedEval.Terminal).
			Msg("iterative deepening step")

		if storedEval.Terminal || aborted {
			break
		}
	}

	return storedAction
}
