package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eye returns the (n by n) identity matrix scaled by value as a symmetric matrix
func Eye(n int, value float64) *mat.SymDense {
	tmp := mat.NewSymDense(n, nil)
	for index := 0; index < n; index++ {
		tmp.SetSym(index, index, value)
	}
	return tmp
}

// Full returns a slice of length n filled with value
func Full(n int, value float64) []float64 {
	data := make([]float64, n)
	for index := range data {
		data[index] = value
	}
	return data
}

// NANORINF checks if there are any NAN or INF in matrix
func NANORINF(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// VecToSlice copies the entries of v into a new slice
func VecToSlice(v mat.Vector) []float64 {
	res := make([]float64, v.Len())
	for index := range res {
		res[index] = v.AtVec(index)
	}
	return res
}
