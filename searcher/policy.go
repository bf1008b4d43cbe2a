package searcher

import (
	"errors"

	"planner/env"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoVisits reports policy extraction at a state with no recorded
// simulations, where the visit distribution is undefined.
var ErrNoVisits = errors.New("searcher: no visits recorded at state")

// Policy returns the discovered actions at state in insertion order, the
// visit distribution over them normalized to sum 1, and the maximum mean
// return among them.
func (m *MCTS) Policy(state env.State) ([]env.Action, []float64, float64, error) {
	n := m.table.get(state)
	if n == nil || len(n.actions) == 0 {
		return nil, nil, 0, ErrNoVisits
	}
	if n.count == 0 {
		panic("searcher: state has discovered actions but no visits")
	}

	probs := make([]float64, len(n.visits))
	for i, v := range n.visits {
		probs[i] = float64(v)
	}
	floats.Scale(1/float64(n.count), probs)

	return n.actions, probs, floats.Max(n.values), nil
}

// FindAction runs the simulation budget from state, then commits to the
// most visited action (deterministic) or samples one proportionally to the
// visit distribution. This is the planning entry point for an outer
// control loop; depth and simulations are its only resource limits.
func (m *MCTS) FindAction(state env.State, depth, simulations int, deterministic bool) (env.Action, error) {
	m.metrics.Start(depth)
	for i := 0; i < simulations; i++ {
		if _, err := m.Search(state, depth); err != nil {
			m.lastMetric = m.metrics.Complete()
			return nil, err
		}
		m.metrics.AddSimulation()
	}
	m.lastMetric = m.metrics.Complete()

	actions, probs, maxQ, err := m.Policy(state)
	if err != nil {
		log.Warn().
			Uint64("state", uint64(state.Hash())).
			Int("simulations", simulations).
			Msg("no policy at searched state")
		return nil, err
	}

	pick := argmax(probs)
	if !deterministic {
		pick = int(distuv.NewCategorical(probs, m.rng).Rand())
	}

	log.Debug().
		Int("simulations", simulations).
		Int("children", len(actions)).
		Float64("max_q", maxQ).
		Bool("deterministic", deterministic).
		Msg("action selected")
	return actions[pick], nil
}

// LastMetric returns the metrics collected during the most recent
// FindAction call. Zero unless the searcher was built WithMetrics.
func (m *MCTS) LastMetric() SearchMetric {
	return m.lastMetric
}

func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
