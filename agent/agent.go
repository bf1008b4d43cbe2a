package agent

import (
	"planner/env"
	"planner/searcher"
)

// Agent picks one action for the current state. The surrounding control
// loop owns the episode, logging, and I/O.
type Agent interface {
	FindAction(state env.State) (env.Action, error)
}

type evaluationAgent struct {
	mcts        *searcher.MCTS
	depth       int
	simulations int
}

// NewEvaluationAgent returns an agent for actual play during evaluation:
// it commits to the most visited action.
func NewEvaluationAgent(mcts *searcher.MCTS, depth, simulations int) Agent {
	return evaluationAgent{mcts: mcts, depth: depth, simulations: simulations}
}

func (a evaluationAgent) FindAction(state env.State) (env.Action, error) {
	return a.mcts.FindAction(state, a.depth, a.simulations, true)
}

type trainingAgent struct {
	mcts        *searcher.MCTS
	depth       int
	simulations int
}

// NewTrainingAgent returns an agent for exploratory self-play: it samples
// from the visit distribution instead of committing to the argmax.
func NewTrainingAgent(mcts *searcher.MCTS, depth, simulations int) Agent {
	return trainingAgent{mcts: mcts, depth: depth, simulations: simulations}
}

func (a trainingAgent) FindAction(state env.State) (env.Action, error) {
	return a.mcts.FindAction(state, a.depth, a.simulations, false)
}
