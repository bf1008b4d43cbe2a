package searcher

import (
	"math"

	"planner/env"
)

// selectAction returns the index of the discovered child with the highest
// selection score. Only called once widening is exhausted, so the node has
// at least one child.
func (m *MCTS) selectAction(n *node, state env.State) (int, error) {
	if m.evaluator == nil {
		return m.puctSelect(n), nil
	}
	return m.guidedSelect(n, state)
}

// puctSelect scores each child as Q + c*sqrt(Ns)/(N+1): mean return plus a
// bonus that grows with the parent's total visits and shrinks as the child
// accumulates its own. Ties break to the first maximal index, so selection
// is deterministic in insertion order.
func (m *MCTS) puctSelect(n *node) int {
	bonus := m.exploration * math.Sqrt(float64(n.count))

	best := 0
	bestScore := math.Inf(-1)
	for i := range n.actions {
		score := n.values[i] + bonus/float64(n.visits[i]+1)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// guidedSelect weighs each child's exploration bonus by the evaluator's
// density for that action, the continuous-action counterpart of a discrete
// prior probability. A single discovered child is returned directly,
// skipping a degenerate one-element density query.
func (m *MCTS) guidedSelect(n *node, state env.State) (int, error) {
	if len(n.actions) == 1 {
		return 0, nil
	}

	logprobs, err := m.evaluator.LogDensities(state.Encode(), n.actions)
	if err != nil {
		return 0, err
	}
	if logprobs.Len() != len(n.actions) {
		panic("searcher: log-density vector does not match discovered actions")
	}

	bonus := m.exploration * math.Sqrt(float64(n.count))

	best := 0
	bestScore := math.Inf(-1)
	for i := range n.actions {
		prior := math.Exp(logprobs.AtVec(i))
		score := n.values[i] + prior*bonus/float64(n.visits[i]+1)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best, nil
}
