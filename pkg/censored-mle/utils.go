package censoredmle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// denseRows copies a dense matrix out as row slices
func denseRows(m *mat.Dense) [][]float64 {
	n, p := m.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// defaultCategoryLabels numbers categories when no labels are supplied
func defaultCategoryLabels(p int) []string {
	labels := make([]string, p)
	for j := 0; j < p; j++ {
		labels[j] = fmt.Sprintf("cat%d", j+1)
	}
	return labels
}
