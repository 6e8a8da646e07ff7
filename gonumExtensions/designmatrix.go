package gonumExtensions

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// DesignMatrix is a (rows by cols) real matrix where cols may be zero.
//
// gonum refuses zero sized dense matrices, so a design without any basis
// functions only remembers its number of rows.
type DesignMatrix struct {
	rows, cols int
	data       *mat.Dense
}

// NewDesignMatrix wraps a dense matrix
func NewDesignMatrix(m *mat.Dense) DesignMatrix {
	r, c := m.Dims()
	return DesignMatrix{rows: r, cols: c, data: m}
}

// EmptyDesignMatrix returns a (rows by 0) design matrix
func EmptyDesignMatrix(rows int) DesignMatrix {
	if rows < 0 {
		panic(errors.New("Negative number of rows"))
	}
	return DesignMatrix{rows: rows}
}

// Dims returns the number of rows and columns
func (d DesignMatrix) Dims() (r, c int) {
	return d.rows, d.cols
}

// Rows returns the number of rows
func (d DesignMatrix) Rows() int {
	return d.rows
}

// Cols returns the number of columns (basis functions)
func (d DesignMatrix) Cols() int {
	return d.cols
}

// Dense returns the underlying matrix or nil when there are no columns
func (d DesignMatrix) Dense() *mat.Dense {
	return d.data
}

// At returns the element at row i and column j
func (d DesignMatrix) At(i, j int) float64 {
	if d.data == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return d.data.At(i, j)
}

// Mul returns the product
//
// res = D coeffs
//
// which is all zeros when the design has no columns.
func (d DesignMatrix) Mul(coeffs []float64) []float64 {
	if len(coeffs) != d.cols {
		panic(errors.New("Coefficient vector doesn't match design matrix"))
	}
	res := make([]float64, d.rows)
	if d.cols == 0 || d.rows == 0 {
		return res
	}
	var tmp mat.VecDense
	tmp.MulVec(d.data, mat.NewVecDense(d.cols, coeffs))
	for index := range res {
		res[index] = tmp.AtVec(index)
	}
	return res
}
