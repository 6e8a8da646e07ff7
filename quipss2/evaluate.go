package quipss2

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Evaluate returns the predicted signal for params.
//
// For every TR i
//
//	StatMag(i) = M0 - (Mbasis Mn)(i)
//	CBF(i)     = Q0 + (Qbasis Qn)(i)
//	R2s(i)     = -1/TE2 log((Rbasis Rn)(i) + e^(-TE2 R0))
//	bolus(i)   = 1 - (1 - rho(i)) InvEff e^(-TI2/T1b)
//	posttag    = 1 - e^(-(TI2-TI1)/T1b)
//	S(i)       = StatMag(i) + CBF(i) (dt + bolus(i) TI1 + posttag (TI2 - TI1 - dt))
//
// and the echoes are interleaved, echo index fastest
//
//	y(Nte i + te) = S(i) e^(-TE(te) R2s(i)) + (Nbasis Nn(te))(i)
//
// The BOLD term is a fractional change in signal at the second echo. When
// its log argument is not positive the result contains NaN or Inf.
func (m *Model) Evaluate(params mat.Vector) *mat.VecDense {
	if params.Len() != m.NumParams() {
		panic(errors.New("Parameter vector doesn't match the number of parameters"))
	}
	scan := m.scan
	numTR := m.rBasis.Rows()
	numEchoes := len(scan.EchoTimes)
	te2 := scan.EchoTimes[1]

	q0 := params.AtVec(m.Q0Index())
	m0 := params.AtVec(m.M0Index())
	r0 := params.AtVec(m.R0Index())
	qChange := m.qBasis.Mul(m.layout.Values(RoleQn, params))
	mChange := m.mBasis.Mul(m.layout.Values(RoleMn, params))
	rChange := m.rBasis.Mul(m.layout.Values(RoleRn, params))

	// Relative magnetizations
	t1b := m.scalar(RoleT1b, scan.T1b, params)
	invEff := m.scalar(RoleInvEff, scan.InvEff, params)
	dt := m.scalar(RoleDt, scan.Dt, params)
	const pretag = 1.
	posttag := 1 - math.Exp(-(scan.TI2-scan.TI1)/t1b)
	tagDecay := invEff * math.Exp(-scan.TI2/t1b)
	baselineDecay := math.Exp(-te2 * r0)

	s := make([]float64, numTR)
	r2s := make([]float64, numTR)
	for i := range s {
		statMag := m0 - mChange[i]
		cbf := q0 + qChange[i]
		bolus := 1 - (1-m.rho[i])*tagDecay
		sb := cbf * (pretag*dt + bolus*scan.TI1 + posttag*(scan.TI2-scan.TI1-dt))
		s[i] = statMag + sb
		r2s[i] = -1 / te2 * math.Log(rChange[i]+baselineDecay)
	}

	result := mat.NewVecDense(numEchoes*numTR, nil)
	for te := 0; te < numEchoes; te++ {
		// All zero without nuisance regressors
		nuisance := m.nBasis.Mul(m.nuisanceOf(te, params))
		for i := 0; i < numTR; i++ {
			result.SetVec(numEchoes*i+te, s[i]*math.Exp(-scan.EchoTimes[te]*r2s[i])+nuisance[i])
		}
	}
	return result
}

// scalar returns the parameter for role if it is estimated, fixed otherwise
func (m *Model) scalar(role string, fixed float64, params mat.Vector) float64 {
	if m.layout.Has(role) {
		return params.AtVec(m.layout.Index(role))
	}
	return fixed
}

// nuisanceOf returns the nuisance coefficients of echo te (zero based)
func (m *Model) nuisanceOf(te int, params mat.Vector) []float64 {
	all := m.layout.Values(RoleNuisance, params)
	cols := m.nBasis.Cols()
	return all[te*cols : (te+1)*cols]
}
