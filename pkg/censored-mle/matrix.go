package censoredmle

import "gonum.org/v1/gonum/mat"

// countMatrix holds the evolving observation matrix together with the
// censorship mask derived from the originally observed values. The mask is
// fixed at construction so every EM round re-imputes the same cells instead
// of treating a previous imputation as observed data.
type countMatrix struct {
	values     *mat.Dense // current working values, mutated between EM rounds
	censored   [][]bool   // true where the original value was at or below its threshold
	thresholds []float64
	nCensored  int
}

// newCountMatrix builds the working matrix and marks censored cells
func newCountMatrix(counts [][]float64, thresholds []float64) *countMatrix {
	n := len(counts)
	p := len(counts[0])

	values := mat.NewDense(n, p, nil)
	censored := make([][]bool, n)
	nCensored := 0

	for i := 0; i < n; i++ {
		censored[i] = make([]bool, p)
		for j := 0; j < p; j++ {
			values.Set(i, j, counts[i][j])
			if counts[i][j] <= thresholds[j] {
				censored[i][j] = true
				nCensored++
			}
		}
	}

	return &countMatrix{
		values:     values,
		censored:   censored,
		thresholds: thresholds,
		nCensored:  nCensored,
	}
}

func (m *countMatrix) dims() (n, p int) {
	return m.values.Dims()
}

// adopt replaces the working values with a freshly imputed matrix
func (m *countMatrix) adopt(values *mat.Dense) {
	m.values = values
}

// export copies the working values out as row slices
func (m *countMatrix) export() [][]float64 {
	n, p := m.dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			rows[i][j] = m.values.At(i, j)
		}
	}
	return rows
}

// relativeChange computes the normalized change metric between two rounds:
// the sum of squared differences divided by the sum of squares of the
// previous matrix. Returns 0 when both matrices are identically zero.
func relativeChange(next, prev *mat.Dense) float64 {
	n, p := prev.Dims()

	diffSq := 0.0
	prevSq := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			old := prev.At(i, j)
			diff := next.At(i, j) - old
			diffSq += diff * diff
			prevSq += old * old
		}
	}

	if prevSq == 0 {
		if diffSq == 0 {
			return 0
		}
		return diffSq
	}
	return diffSq / prevSq
}
