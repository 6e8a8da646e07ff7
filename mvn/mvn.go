// Package mvn implements the multivariate normal belief handed between a
// forward model and the inference engine. The belief is stored in its
// information form, a mean vector and a precision matrix.
package mvn

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MVNDist is a multivariate normal distribution
type MVNDist struct {
	// Means of the distribution
	Means *mat.VecDense
	// Precision (inverse covariance) matrix
	precisions *mat.SymDense
}

// NewMVNDist returns a zero mean distribution of dimension n with identity
// precision.
func NewMVNDist(n int) *MVNDist {
	if n <= 0 {
		panic(errors.New("Distribution dimension must be positive"))
	}
	prec := mat.NewSymDense(n, nil)
	for index := 0; index < n; index++ {
		prec.SetSym(index, index, 1)
	}
	return &MVNDist{
		Means:      mat.NewVecDense(n, nil),
		precisions: prec,
	}
}

// Len returns the dimension of the distribution
func (d *MVNDist) Len() int {
	return d.Means.Len()
}

// Precisions returns the precision matrix. The matrix is owned by d.
func (d *MVNDist) Precisions() *mat.SymDense {
	return d.precisions
}

// SetPrecisions copies p into the precision matrix of d
func (d *MVNDist) SetPrecisions(p mat.Symmetric) {
	if p.SymmetricDim() != d.Len() {
		panic(errors.New("Precision matrix doesn't match distribution dimension"))
	}
	d.precisions.CopySym(p)
}

// Covariance returns the covariance matrix, the inverse of the precisions.
//
// Near flat priors mixed with informative ones are badly conditioned on
// purpose, so a mat.Condition error from the inversion is not reported.
func (d *MVNDist) Covariance() (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(d.precisions); !ok {
		return nil, errors.New("Precision matrix is not positive definite")
	}
	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
	}
	return &cov, nil
}

// CopyFrom overwrites d with src. Both must have the same dimension.
func (d *MVNDist) CopyFrom(src *MVNDist) {
	if src.Len() != d.Len() {
		panic(errors.New("Distribution dimensions don't match"))
	}
	d.Means.CopyVec(src.Means)
	d.precisions.CopySym(src.precisions)
}

// Clone returns a deep copy of d
func (d *MVNDist) Clone() *MVNDist {
	res := NewMVNDist(d.Len())
	res.CopyFrom(d)
	return res
}

// Marginal returns the one dimensional marginal distribution of parameter i
func (d *MVNDist) Marginal(i int) (distuv.Normal, error) {
	cov, err := d.Covariance()
	if err != nil {
		return distuv.Normal{}, err
	}
	return distuv.Normal{
		Mu:    d.Means.AtVec(i),
		Sigma: math.Sqrt(cov.At(i, i)),
	}, nil
}
