package env

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StateHash identifies a state in the search statistics. Equal states must
// hash identically; the table treats the hash as node identity.
type StateHash uint64

// Action is a domain-supplied control, typically a real vector. The searcher
// compares actions only to detect whether a freshly sampled action duplicates
// one already discovered at a state.
type Action interface {
	Equal(Action) bool
}

// State should be immutable - operations on State always return a new value.
// Any domain that aims to be searchable by the planner implements this.
type State interface {
	Hash() StateHash
	Equal(State) bool
	// Generate applies an action and returns the successor state and the
	// immediate reward. A failure aborts the simulation in progress.
	Generate(Action) (State, float64, error)
	// SampleAction draws a candidate action from the domain's proposal
	// distribution for this state. Must succeed for non-terminal states.
	SampleAction() Action
	// Encode returns the numeric observation consumed by an Evaluator.
	Encode() *mat.VecDense
}

// Decoder reconstructs a state from its flat numeric representation. Owned
// by encoders and replay plumbing outside the searcher.
type Decoder func(raw []float64) (State, error)

// Prediction is an evaluator's output for one state: the parameters of its
// action distribution (opaque to the searcher) and a scalar value estimate.
type Prediction struct {
	Params *mat.VecDense
	Value  float64
}

// Evaluator guides the search in place of rollouts: value bootstrapping at
// the depth horizon and an action-density prior for selection. Both calls
// are side-effect-free with respect to the search statistics.
type Evaluator interface {
	Evaluate(obs *mat.VecDense) (Prediction, error)
	// LogDensities returns the log-probability of each action under the
	// evaluator's policy distribution for obs, one entry per action.
	LogDensities(obs *mat.VecDense, actions []Action) (*mat.VecDense, error)
}

// Vector is the stock continuous action: a real vector compared elementwise.
type Vector []float64

func (v Vector) Equal(other Action) bool {
	w, ok := other.(Vector)
	if !ok {
		return false
	}
	return floats.Equal(v, w)
}
