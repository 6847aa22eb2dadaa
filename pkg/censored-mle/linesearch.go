package censoredmle

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// searchStatus is the explicit outcome of a backtracking line search.
// Exhaustion means the step shrank past the point where the curvature
// penalty is representable, so no representable step improves the
// objective; the caller treats it as a hard convergence signal, never as
// an error.
type searchStatus int

const (
	stepAccepted searchStatus = iota
	searchExhausted
)

// searchResult carries the accepted step multiplier, candidate point, and
// its objective value
type searchResult struct {
	status searchStatus
	step   float64
	point  []float64
	value  float64
}

// backtrack searches along step for a multiplier t satisfying the
// curvature-penalized sufficient-ascent test
//
//	ll(x + t·step) >= f + t·(step·dir) + (1/(2t))·‖t·step‖²
//
// shrinking t geometrically while the test fails. dir is the raw gradient
// direction the step was built from; f is the objective at x.
func (s *Solver) backtrack(x []float64, f float64, step, dir []float64, t float64) searchResult {
	slope := floats.Dot(step, dir)
	stepSq := floats.Dot(step, step)
	candidate := make([]float64, len(x))

	for {
		curvature := 1 / (2 * t)
		if math.IsInf(curvature, 1) {
			return searchResult{status: searchExhausted}
		}

		floats.AddScaledTo(candidate, x, t, step)
		value := logLikelihood(s.data.values, candidate, s.layout, s.events.Rows)
		bound := f + t*slope + curvature*(t*t)*stepSq

		if math.IsNaN(bound) || math.IsNaN(value) {
			return searchResult{status: searchExhausted}
		}
		if value >= bound {
			return searchResult{
				status: stepAccepted,
				step:   t,
				point:  candidate,
				value:  value,
			}
		}

		t *= s.settings.StepShrink
	}
}
