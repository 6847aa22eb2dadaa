package censoredmle

import (
	"fmt"
	"math"
)

// Solver owns all state for one fit: the working data matrix, the event
// index, and the evolving flat parameter vector. The EM outer loop
// alternates conjugate-gradient maximization with re-imputation of the
// censored cells until both have stabilized.
type Solver struct {
	data     *countMatrix
	events   *EventIndex
	specific []bool
	layout   paramLayout
	settings *EMSettings
	verbose  bool
	theta    []float64
}

// NewSolver builds a solver from a validated request
func NewSolver(request FitRequest) *Solver {
	events := NewEventIndex(request.Events)
	n := len(request.Counts)
	p := len(request.Counts[0])

	specific := request.Specific
	if len(specific) == 0 {
		specific = make([]bool, p)
	}

	settings := request.Options.Settings
	if settings == nil {
		settings = DefaultEMSettings()
	}

	return &Solver{
		data:     newCountMatrix(request.Counts, request.Thresholds),
		events:   events,
		specific: specific,
		layout: paramLayout{
			numEvents:     events.NumEvents(),
			numCategories: p,
			numObs:        n,
		},
		settings: settings,
		verbose:  request.Options.Verbose,
	}
}

// Run executes the EM loop to completion and returns the fitted parameters.
// Each round maximizes the likelihood at the current imputed data, then
// replaces censored cells with their conditional expectations; the inner
// tolerance anneals tighter whenever the data stops moving, and the fit
// terminates once the tolerance floor is reached.
func (s *Solver) Run() (*FitParams, error) {
	s.theta = s.layout.initial(s.specific)

	tolerance := s.settings.StartTolerance
	previousChange := math.Inf(1)
	logLik := 0.0
	converged := false
	rounds := 0

	for round := 0; round < s.settings.MaxOuterRounds; round++ {
		rounds = round + 1

		ll, err := s.maximize(s.theta, tolerance)
		if err != nil {
			return nil, err
		}
		logLik = ll

		alpha, beta, gamma := s.layout.split(s.theta)
		next := s.expectationStep(alpha, beta, gamma)
		change := relativeChange(next, s.data.values)

		if previousChange-change < tolerance {
			// The imputed data has stopped moving at this tolerance
			if tolerance <= s.settings.ToleranceFloor {
				converged = true
				break
			}
			tolerance = math.Max(tolerance/2, s.settings.ToleranceFloor)
			if s.verbose {
				fmt.Printf("  inner tolerance tightened to %.3g\n", tolerance)
			}
		} else {
			s.data.adopt(next)
		}
		previousChange = change
	}

	alpha, beta, gamma := s.layout.split(s.theta)

	params := &FitParams{
		Alpha:         denseRows(alpha),
		Beta:          beta,
		Gamma:         gamma,
		LogLikelihood: logLik,
		Rounds:        rounds,
		Converged:     converged,
	}

	return params, nil
}
