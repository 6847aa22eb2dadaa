package main

import (
	"fmt"
	"os"

	censoredmle "github.com/jhw/go-censored-mle/pkg/censored-mle"
)

// Synthetic water-quality style example: three event groups of samples,
// four measured categories, with the last category human-specific (no
// cross-event baseline). Detection thresholds leave a realistic share of
// the low counts censored.
var exampleEvents = []string{
	"stormdrain", "stormdrain", "stormdrain", "stormdrain", "stormdrain",
	"stormdrain", "stormdrain", "stormdrain", "stormdrain", "stormdrain",
	"creek", "creek", "creek", "creek", "creek",
	"creek", "creek", "creek", "creek", "creek",
	"outfall", "outfall", "outfall", "outfall", "outfall",
	"outfall", "outfall", "outfall", "outfall", "outfall",
}

// writeExampleDataset generates a synthetic dataset from known parameters
// and saves it as JSON
func writeExampleDataset(path string, seed int64) error {
	if err := os.MkdirAll("fixtures", 0755); err != nil {
		return fmt.Errorf("creating fixtures directory: %w", err)
	}

	alpha := [][]float64{
		{2.2, 1.1, 0.4, 0.0}, // stormdrain
		{1.4, 0.3, 0.9, 0.0}, // creek
		{2.8, 1.8, 0.1, 0.0}, // outfall
	}
	beta := []float64{0.4, 0.7, 0.2, 1.1}

	gamma := make([]float64, len(exampleEvents))
	for i := range gamma {
		// Spread the latent severity over a plausible range
		gamma[i] = 0.25 + 0.1*float64(i%10)
	}

	thresholds := []float64{2, 2, 1, 3}

	dataset, err := censoredmle.SimulateDataset(alpha, beta, gamma, exampleEvents, thresholds, seed)
	if err != nil {
		return fmt.Errorf("simulating dataset: %w", err)
	}
	dataset.Specific = []bool{false, false, false, true}
	dataset.Categories = []string{"enterococcus", "fecal_coliform", "e_coli", "hf183"}

	if err := writeJSON(path, dataset); err != nil {
		return fmt.Errorf("writing dataset to %s: %w", path, err)
	}
	return nil
}
