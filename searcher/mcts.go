package searcher

import (
	"math"
	"time"

	"planner/env"

	"golang.org/x/exp/rand"
)

// Default hyperparameters. The scale of the exploration weight relative to
// domain returns is manually tuned, not normalized.
const (
	DefaultExploration   = 0.1
	DefaultDiscount      = 0.99
	DefaultWideningK     = 1.0
	DefaultWideningAlpha = 0.5
	DefaultRootCap       = 10
)

type Option func(m *MCTS)

// MCTS plans over a continuous action space by repeated depth-bounded
// simulation with progressive widening. Statistics accumulate across
// Search calls until Reset. Single-threaded: one simulation at a time.
type MCTS struct {
	exploration float64
	discount    float64
	k           float64
	alpha       float64
	rootCap     int
	evaluator   env.Evaluator
	table       *table
	rng         *rand.Rand
	metrics     Collector
	lastMetric  SearchMetric
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithDiscount(gamma float64) Option {
	return func(m *MCTS) {
		if gamma < 0 || gamma > 1 {
			panic("discount must be in [0,1]")
		}
		m.discount = gamma
	}
}

func WithWidening(k, alpha float64) Option {
	return func(m *MCTS) {
		if k <= 0 {
			panic("widening constant must be positive")
		}
		if alpha <= 0 || alpha >= 1 {
			panic("widening exponent must be in (0,1)")
		}
		m.k = k
		m.alpha = alpha
	}
}

func WithRootCap(cap int) Option {
	return func(m *MCTS) {
		if cap > 0 {
			m.rootCap = cap
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEvaluator switches the searcher to evaluator-guided mode: leaf values
// come from the evaluator instead of defaulting to zero, and selection
// weighs the exploration bonus by the evaluator's action density.
func WithEvaluator(evaluator env.Evaluator) Option {
	return func(m *MCTS) {
		if evaluator != nil {
			m.evaluator = evaluator
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func New(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		discount:    DefaultDiscount,
		k:           DefaultWideningK,
		alpha:       DefaultWideningAlpha,
		rootCap:     DefaultRootCap,
		table:       newTable(),
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Reset discards all accumulated statistics, starting a fresh planning
// session (e.g. between episodes).
func (m *MCTS) Reset() {
	m.table = newTable()
}

// Search runs one simulation from state to the depth horizon and returns
// the simulated return. Statistics for every state-action pair along the
// path are backed up before it returns. A transition or evaluator failure
// aborts the simulation; backups already applied for completed sub-calls
// stay in place.
func (m *MCTS) Search(state env.State, depth int) (float64, error) {
	return m.search(state, depth, true)
}

func (m *MCTS) search(state env.State, depth int, root bool) (float64, error) {
	if depth <= 0 {
		return m.leafValue(state)
	}

	n := m.table.ensure(state)
	i, err := m.treePolicy(n, state, root)
	if err != nil {
		return 0, err
	}

	next, reward, err := state.Generate(n.actions[i])
	if err != nil {
		return 0, err
	}

	q, err := m.search(next, depth-1, false)
	if err != nil {
		return 0, err
	}
	q = reward + m.discount*q

	n.backup(i, q)
	return q, nil
}

// treePolicy picks the action index to follow from state: widen while the
// branching allowance permits, then select among discovered children. The
// root widens up to a fixed cap; below it the allowance grows sublinearly
// with the state's visit count.
func (m *MCTS) treePolicy(n *node, state env.State, root bool) (int, error) {
	var widen bool
	if root {
		widen = len(n.actions) < m.rootCap
	} else {
		allowance := m.k * math.Pow(float64(n.count), m.alpha)
		widen = len(n.actions) == 0 || float64(len(n.actions)) < allowance
	}

	if widen {
		i, added := n.add(state.SampleAction())
		if added {
			m.metrics.AddExpansion()
		}
		return i, nil
	}
	return m.selectAction(n, state)
}

// leafValue estimates the return beyond the depth horizon: zero for the
// plain searcher, the evaluator's value estimate when guided.
func (m *MCTS) leafValue(state env.State) (float64, error) {
	if m.evaluator == nil {
		return 0, nil
	}
	prediction, err := m.evaluator.Evaluate(state.Encode())
	if err != nil {
		return 0, err
	}
	return prediction.Value, nil
}
