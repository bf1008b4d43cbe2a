package searcher

import (
	"errors"

	"planner/env"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// armState is a bandit-style test domain. Playing arm i yields rewards[i]
// and moves to next[i]; SampleAction proposes a uniformly random arm.
type armState struct {
	id      env.StateHash
	arms    []env.Vector
	rewards []float64
	next    []env.State
	rng     *rand.Rand
}

func (s *armState) Hash() env.StateHash { return s.id }

func (s *armState) Equal(other env.State) bool {
	o, ok := other.(*armState)
	return ok && o.id == s.id
}

func (s *armState) SampleAction() env.Action {
	if len(s.arms) == 1 {
		return s.arms[0]
	}
	return s.arms[s.rng.Intn(len(s.arms))]
}

func (s *armState) Generate(a env.Action) (env.State, float64, error) {
	for i, arm := range s.arms {
		if arm.Equal(a) {
			return s.next[i], s.rewards[i], nil
		}
	}
	return nil, 0, errors.New("unknown action")
}

func (s *armState) Encode() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(s.id)})
}

// newAbsorbing returns a state whose single action self-loops with zero
// reward.
func newAbsorbing(id env.StateHash) *armState {
	s := &armState{id: id, arms: []env.Vector{{0}}, rewards: []float64{0}}
	s.next = []env.State{s}
	return s
}

// counterState proposes a distinct action on every sample, the
// no-collision regime of a continuous action space. Every action
// self-loops with zero reward.
type counterState struct {
	id      env.StateHash
	sampled int
}

func (s *counterState) Hash() env.StateHash { return s.id }

func (s *counterState) Equal(other env.State) bool {
	o, ok := other.(*counterState)
	return ok && o.id == s.id
}

func (s *counterState) SampleAction() env.Action {
	s.sampled++
	return env.Vector{float64(s.sampled)}
}

func (s *counterState) Generate(a env.Action) (env.State, float64, error) {
	return s, 0, nil
}

func (s *counterState) Encode() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(s.id)})
}

// chainState transitions to a fresh deeper state on every action and
// counts Generate calls across the whole chain.
type chainState struct {
	id    env.StateHash
	calls *int
}

func (s *chainState) Hash() env.StateHash { return s.id }

func (s *chainState) Equal(other env.State) bool {
	o, ok := other.(*chainState)
	return ok && o.id == s.id
}

func (s *chainState) SampleAction() env.Action {
	return env.Vector{1}
}

func (s *chainState) Generate(a env.Action) (env.State, float64, error) {
	*s.calls++
	return &chainState{id: s.id + 1, calls: s.calls}, 1, nil
}

func (s *chainState) Encode() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(s.id)})
}

var errBoom = errors.New("transition failed")

// flakyState succeeds a fixed number of times, then fails every Generate.
type flakyState struct {
	id        env.StateHash
	remaining *int
}

func (s *flakyState) Hash() env.StateHash { return s.id }

func (s *flakyState) Equal(other env.State) bool {
	o, ok := other.(*flakyState)
	return ok && o.id == s.id
}

func (s *flakyState) SampleAction() env.Action {
	return env.Vector{1}
}

func (s *flakyState) Generate(a env.Action) (env.State, float64, error) {
	if *s.remaining <= 0 {
		return nil, 0, errBoom
	}
	*s.remaining--
	return s, 0.5, nil
}

func (s *flakyState) Encode() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(s.id)})
}

// stubEvaluator returns a fixed value and fixed log densities, counting
// calls.
type stubEvaluator struct {
	value     float64
	logprobs  []float64
	evals     int
	densities int
}

func (e *stubEvaluator) Evaluate(obs *mat.VecDense) (env.Prediction, error) {
	e.evals++
	return env.Prediction{Value: e.value}, nil
}

func (e *stubEvaluator) LogDensities(obs *mat.VecDense, actions []env.Action) (*mat.VecDense, error) {
	e.densities++
	return mat.NewVecDense(len(e.logprobs), append([]float64(nil), e.logprobs...)), nil
}
