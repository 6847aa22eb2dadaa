package censoredmle

import "time"

// FitRequest contains all inputs needed to fit the censored Poisson model
type FitRequest struct {
	Counts     [][]float64 `json:"counts"`               // n×p observed counts, rows = observations
	Thresholds []float64   `json:"thresholds"`           // per-category minimum detectable value (length p)
	Events     []string    `json:"events"`               // per-observation group label (length n)
	Specific   []bool      `json:"specific,omitempty"`   // per-category structural-zero intercept flag (length p; empty = all false)
	Categories []string    `json:"categories,omitempty"` // optional per-category labels (length p)
	Options    FitOptions  `json:"options"`
}

// EMSettings holds all optimization and annealing parameterization values
type EMSettings struct {
	// Annealing parameters
	StartTolerance float64 `json:"start_tolerance"` // Initial inner CG tolerance (default: 1e-5)
	ToleranceFloor float64 `json:"tolerance_floor"` // Minimum inner tolerance, machine-epsilon scale (default: 2^-52)

	// Line search parameters
	InitialStep float64 `json:"initial_step"` // Starting step multiplier per restart cycle (default: 1.0)
	StepShrink  float64 `json:"step_shrink"`  // Backtracking shrink factor (default: 0.8)

	// Outer loop parameters
	MaxOuterRounds int `json:"max_outer_rounds"` // Maximum EM rounds before giving up (default: 200)
}

// FitOptions configures the EM fitting procedure
type FitOptions struct {
	Settings *EMSettings `json:"settings,omitempty"` // Optimization settings (uses defaults if nil)
	Verbose  bool        `json:"verbose"`            // Enable progress output during fitting
}

// FitParams holds the fitted model parameters
type FitParams struct {
	Alpha         [][]float64 `json:"alpha"` // d×p intercepts, rows ordered by first appearance of each event
	Beta          []float64   `json:"beta"`  // per-category sensitivity to the latent index (length p)
	Gamma         []float64   `json:"gamma"` // per-observation latent severity index (length n)
	LogLikelihood float64     `json:"log_likelihood"`
	Rounds        int         `json:"rounds"`
	Converged     bool        `json:"converged"`
}

// FitResult contains the output of a censored Poisson fit
type FitResult struct {
	Imputed        [][]float64   `json:"imputed"` // final working matrix with censored cells replaced by expectations
	Thresholds     []float64     `json:"thresholds"`
	Events         []string      `json:"events"`
	Specific       []bool        `json:"specific"`
	Categories     []string      `json:"categories"`
	EventLevels    []string      `json:"event_levels"` // distinct event labels, first-appearance order (rows of Alpha)
	Params         FitParams     `json:"params"`
	CensoredCells  int           `json:"censored_cells"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// DefaultEMSettings returns default optimization and annealing values
func DefaultEMSettings() *EMSettings {
	return &EMSettings{
		StartTolerance: 1e-5,
		ToleranceFloor: 1.0 / (1 << 26) / (1 << 26), // 2^-52
		InitialStep:    1.0,
		StepShrink:     0.8,
		MaxOuterRounds: 200,
	}
}

// DefaultFitOptions returns default fitting options
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Settings: DefaultEMSettings(),
		Verbose:  false,
	}
}
