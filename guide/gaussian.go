package guide

import (
	"fmt"

	"planner/env"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Heads maps an observation to the parameters of a diagonal-Gaussian
// action distribution and a scalar value estimate. Implementations are
// expected to be deterministic in obs and free of learning side effects.
type Heads func(obs *mat.VecDense) (mean, sigma *mat.VecDense, value float64)

// Gaussian is a reference evaluator: a diagonal-Gaussian policy head over
// env.Vector actions plus a value head, both supplied by the caller.
type Gaussian struct {
	heads Heads
}

func NewGaussian(heads Heads) *Gaussian {
	return &Gaussian{heads: heads}
}

// Evaluate packs the policy parameters as mean followed by sigma, along
// with the value estimate.
func (g *Gaussian) Evaluate(obs *mat.VecDense) (env.Prediction, error) {
	mean, sigma, value := g.heads(obs)
	if mean.Len() != sigma.Len() {
		return env.Prediction{}, fmt.Errorf("guide: mean dimension %d does not match sigma dimension %d", mean.Len(), sigma.Len())
	}

	params := mat.NewVecDense(2*mean.Len(), nil)
	for d := 0; d < mean.Len(); d++ {
		params.SetVec(d, mean.AtVec(d))
		params.SetVec(mean.Len()+d, sigma.AtVec(d))
	}
	return env.Prediction{Params: params, Value: value}, nil
}

// LogDensities returns the log-probability of each action under the policy
// distribution for obs, summed over independent dimensions.
func (g *Gaussian) LogDensities(obs *mat.VecDense, actions []env.Action) (*mat.VecDense, error) {
	mean, sigma, _ := g.heads(obs)

	out := mat.NewVecDense(len(actions), nil)
	for i, a := range actions {
		v, ok := a.(env.Vector)
		if !ok {
			return nil, fmt.Errorf("guide: action %d is %T, want env.Vector", i, a)
		}
		if len(v) != mean.Len() {
			return nil, fmt.Errorf("guide: action dimension %d does not match policy dimension %d", len(v), mean.Len())
		}

		logprob := 0.0
		for d := 0; d < mean.Len(); d++ {
			normal := distuv.Normal{Mu: mean.AtVec(d), Sigma: sigma.AtVec(d)}
			logprob += normal.LogProb(v[d])
		}
		out.SetVec(i, logprob)
	}
	return out, nil
}

// Constant is a fixed evaluator: every state gets the same value estimate
// and every action unit density. Useful as a baseline and in tests.
type Constant struct {
	Value float64
}

func (c Constant) Evaluate(obs *mat.VecDense) (env.Prediction, error) {
	return env.Prediction{Value: c.Value}, nil
}

func (c Constant) LogDensities(obs *mat.VecDense, actions []env.Action) (*mat.VecDense, error) {
	return mat.NewVecDense(len(actions), nil), nil
}
