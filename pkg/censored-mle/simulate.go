package censoredmle

import (
	"fmt"
	"math"
	"math/rand"
)

// SimulatedDataset pairs generated counts with the inputs needed to fit them
type SimulatedDataset struct {
	Counts     [][]float64 `json:"counts"`
	Thresholds []float64   `json:"thresholds"`
	Events     []string    `json:"events"`
	Specific   []bool      `json:"specific,omitempty"`
	Categories []string    `json:"categories,omitempty"`
}

// Request converts the dataset into a fit request with the given options
func (d *SimulatedDataset) Request(options FitOptions) FitRequest {
	return FitRequest{
		Counts:     d.Counts,
		Thresholds: d.Thresholds,
		Events:     d.Events,
		Specific:   d.Specific,
		Categories: d.Categories,
		Options:    options,
	}
}

// SimulateDataset draws an n×p count matrix from known parameters, with
// cell means exp(alpha[event][j] + beta[j]·gamma[i]). Alpha rows follow the
// first-appearance order of the event labels. Useful for demos and for
// round-trip testing of the fitting engine.
func SimulateDataset(alpha [][]float64, beta, gamma []float64, events []string, thresholds []float64, seed int64) (*SimulatedDataset, error) {
	n := len(gamma)
	p := len(beta)
	if n == 0 || p == 0 {
		return nil, fmt.Errorf("beta and gamma must be non-empty")
	}
	if len(events) != n {
		return nil, fmt.Errorf("expected %d event labels, got %d", n, len(events))
	}
	if len(thresholds) != p {
		return nil, fmt.Errorf("expected %d thresholds, got %d", p, len(thresholds))
	}

	index := NewEventIndex(events)
	if len(alpha) != index.NumEvents() {
		return nil, fmt.Errorf("expected %d alpha rows (one per distinct event), got %d", index.NumEvents(), len(alpha))
	}
	for e, row := range alpha {
		if len(row) != p {
			return nil, fmt.Errorf("alpha row %d: expected %d columns, got %d", e, p, len(row))
		}
	}

	rng := rand.New(rand.NewSource(seed))

	counts := make([][]float64, n)
	for i := 0; i < n; i++ {
		event := index.Rows[i]
		counts[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			lambda := math.Exp(alpha[event][j] + beta[j]*gamma[i])
			counts[i][j] = float64(PoissonSample(lambda, rng))
		}
	}

	return &SimulatedDataset{
		Counts:     counts,
		Thresholds: thresholds,
		Events:     events,
	}, nil
}
