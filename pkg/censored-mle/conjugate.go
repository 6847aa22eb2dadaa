package censoredmle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// maximize climbs the joint log-likelihood in place from theta by conjugate
// gradient ascent with periodic restarts, until the restart-to-restart
// relative improvement drops below tol or the line search exhausts.
// Returns the final objective value.
func (s *Solver) maximize(theta []float64, tol float64) (float64, error) {
	f := logLikelihood(s.data.values, theta, s.layout, s.events.Rows)
	if !isFinite(f) {
		return f, fmt.Errorf("log-likelihood is not finite at the starting parameters (value %g)", f)
	}

	// Backtracking warm start grows by 1/shrink² between iterations so the
	// step can recover after a cautious acceptance
	grow := 1 / (s.settings.StepShrink * s.settings.StepShrink)

	for {
		fStart := f
		fPrev := f
		stepSize := s.settings.InitialStep
		exhausted := false

		var dirPrev, stepPrev []float64

		// One restart cycle: at most one update attempt per free parameter
		for iter := 0; iter < s.layout.len(); iter++ {
			dir := score(s.data.values, theta, s.layout, s.events.Rows, s.specific)
			norm := floats.Norm(dir, 2)
			if norm == 0 {
				// Exact stationary point, nothing left to climb
				exhausted = true
				break
			}
			floats.Scale(1/norm, dir)

			var step []float64
			if dirPrev == nil {
				step = dir
			} else {
				conj := (floats.Dot(dir, dir) + floats.Dot(dir, dirPrev)) / floats.Dot(dirPrev, dirPrev)
				step = make([]float64, len(dir))
				floats.AddScaledTo(step, dir, conj, stepPrev)
			}

			result := s.backtrack(theta, f, step, dir, stepSize*grow)
			if result.status == searchExhausted {
				exhausted = true
				break
			}
			stepSize = result.step

			// A conjugate step can pass the backtracking test yet fail to
			// beat the previous iteration; such a step ends the cycle
			// without moving the current point
			if result.value <= fPrev {
				break
			}

			copy(theta, result.point)
			f = result.value
			if !isFinite(f) {
				return f, fmt.Errorf("log-likelihood became non-finite during optimization (value %g)", f)
			}

			fPrev = result.value
			dirPrev = dir
			stepPrev = step
		}

		if s.verbose {
			fmt.Printf("    log-likelihood: %.6f\n", f)
		}

		if exhausted {
			return f, nil
		}

		relative := f - fStart
		if fStart != 0 {
			relative /= math.Abs(fStart)
		}
		if relative < tol {
			return f, nil
		}
	}
}
