package censoredmle

import (
	"fmt"
	"time"
)

// Fit estimates the censored Poisson latent-variable model.
// This is the main entry point for the censored-mle package.
func Fit(request FitRequest) (*FitResult, error) {
	startTime := time.Now()

	// Validate input before any optimization begins
	if err := validateRequest(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	p := len(request.Counts[0])

	// Apply defaults if not provided
	if request.Options.Settings == nil {
		request.Options.Settings = DefaultEMSettings()
	}
	if len(request.Specific) == 0 {
		request.Specific = make([]bool, p)
	}
	if len(request.Categories) == 0 {
		request.Categories = defaultCategoryLabels(p)
	}

	solver := NewSolver(request)

	params, err := solver.Run()
	if err != nil {
		return nil, fmt.Errorf("model fitting failed: %w", err)
	}

	result := &FitResult{
		Imputed:        solver.data.export(),
		Thresholds:     request.Thresholds,
		Events:         request.Events,
		Specific:       request.Specific,
		Categories:     request.Categories,
		EventLevels:    solver.events.Levels,
		Params:         *params,
		CensoredCells:  solver.data.nCensored,
		ProcessingTime: time.Since(startTime),
	}

	return result, nil
}

// FitCounts is a convenience wrapper over Fit for callers holding raw
// slices and default options
func FitCounts(counts [][]float64, thresholds []float64, events []string) (*FitResult, error) {
	return Fit(FitRequest{
		Counts:     counts,
		Thresholds: thresholds,
		Events:     events,
	})
}
