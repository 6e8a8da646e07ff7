package quipss2

import (
	"errors"

	"github.com/hammal/asl/gonumExtensions"
	"github.com/hammal/asl/mvn"
)

// Prior precision of parameters without an informative prior
const flatPrecision = 1e-12

// Starting point of the optimizer
const (
	initialQ0 = 200.
	initialM0 = 1.5e4
	initialR0 = 25.
)

// HardcodedInitialDists fills prior and the initial posterior.
//
// The prior is zero mean and nearly flat except for T1b, inversion efficiency
// and dt when they are parameters: those are centred on their fixed value
// with precision 1/stdev^2. The posterior starts as the prior with Q0, M0 and
// R0 moved to plausible values.
func (m *Model) HardcodedInitialDists(prior, posterior *mvn.MVNDist) {
	n := m.NumParams()
	if prior.Len() != n || posterior.Len() != n {
		panic(errors.New("Distribution dimensions don't match the number of parameters"))
	}

	prior.Means.Zero()
	precisions := gonumExtensions.Eye(n, flatPrecision)

	informative := []struct {
		role        string
		mean, stdev float64
	}{
		{RoleDt, m.scan.Dt, m.scan.DtStdev},
		{RoleT1b, m.scan.T1b, m.scan.T1bStdev},
		{RoleInvEff, m.scan.InvEff, m.scan.InvEffStdev},
	}
	for _, p := range informative {
		if p.stdev <= 0 {
			continue
		}
		index := m.layout.Index(p.role)
		prior.Means.SetVec(index, p.mean)
		precisions.SetSym(index, index, 1/(p.stdev*p.stdev))
	}
	prior.SetPrecisions(precisions)

	posterior.CopyFrom(prior)
	posterior.Means.SetVec(m.Q0Index(), initialQ0)
	posterior.Means.SetVec(m.M0Index(), initialM0)
	posterior.Means.SetVec(m.R0Index(), initialR0)
}

// InitialDists allocates and fills the prior and initial posterior
func (m *Model) InitialDists() (prior, posterior *mvn.MVNDist) {
	prior = mvn.NewMVNDist(m.NumParams())
	posterior = mvn.NewMVNDist(m.NumParams())
	m.HardcodedInitialDists(prior, posterior)
	return prior, posterior
}
