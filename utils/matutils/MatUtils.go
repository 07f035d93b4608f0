// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// FillCol overwrites every entry of column j of m with v
func FillCol(m *mat.Dense, j int, v float64) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		m.Set(i, j, v)
	}
}

// ScaleCol multiplies every entry of column j of m by alpha in place
func ScaleCol(m *mat.Dense, j int, alpha float64) {
	col := mat.Col(nil, j, m)
	floats.Scale(alpha, col)
	m.SetCol(j, col)
}

// VecFull returns a vector with every entry set to v
func VecFull(length int, v float64) *mat.VecDense {
	data := make([]float64, length)
	for i := range data {
		data[i] = v
	}
	return mat.NewVecDense(length, data)
}
