package quipss2

import (
	"testing"

	"github.com/hammal/asl/mvn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardcodedInitialDistsFlat(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, map[string]string{"dt-stdev": "0"}))
	prior, posterior := m.InitialDists()

	require.Equal(t, 3, prior.Len())
	require.Equal(t, 3, posterior.Len())
	for i := 0; i < 3; i++ {
		assert.Zero(t, prior.Means.AtVec(i))
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1e-12, prior.Precisions().At(i, j))
			} else {
				assert.Zero(t, prior.Precisions().At(i, j))
			}
		}
	}
	assert.Equal(t, 200., posterior.Means.AtVec(m.Q0Index()))
	assert.Equal(t, 15000., posterior.Means.AtVec(m.M0Index()))
	assert.Equal(t, 25., posterior.Means.AtVec(m.R0Index()))
}

func TestHardcodedInitialDistsInformative(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, map[string]string{
		"dt":            "0.7",
		"dt-stdev":      "0.2",
		"t1b-stdev":     "0.1",
		"inv-eff":       "0.95",
		"inv-eff-stdev": "0.05",
	}))
	prior, posterior := m.InitialDists()

	dt, t1b, invEff := m.DtIndex(), m.T1bIndex(), m.InvEffIndex()
	assert.Equal(t, 0.7, prior.Means.AtVec(dt))
	assert.InDelta(t, 1/(0.2*0.2), prior.Precisions().At(dt, dt), 1e-9)
	assert.Equal(t, 1.66, prior.Means.AtVec(t1b))
	assert.InDelta(t, 1/(0.1*0.1), prior.Precisions().At(t1b, t1b), 1e-9)
	assert.Equal(t, 0.95, prior.Means.AtVec(invEff))
	assert.InDelta(t, 1/(0.05*0.05), prior.Precisions().At(invEff, invEff), 1e-9)
	assert.Zero(t, prior.Precisions().At(dt, t1b))

	// The posterior only moves the baselines
	for i := 0; i < prior.Len(); i++ {
		switch i {
		case m.Q0Index(), m.M0Index(), m.R0Index():
			continue
		}
		assert.Equal(t, prior.Means.AtVec(i), posterior.Means.AtVec(i))
		assert.Equal(t, prior.Precisions().At(i, i), posterior.Precisions().At(i, i))
	}
	assert.Equal(t, 200., posterior.Means.AtVec(m.Q0Index()))

	marginal, err := prior.Marginal(dt)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, marginal.Sigma, 1e-9)
}

func TestHardcodedInitialDistsDefaultDt(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, nil))
	prior, _ := m.InitialDists()
	assert.Equal(t, 0.5, prior.Means.AtVec(m.DtIndex()))
	assert.InDelta(t, 16, prior.Precisions().At(m.DtIndex(), m.DtIndex()), 1e-9)
}

func TestHardcodedInitialDistsDimensionMismatch(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, nil))
	assert.Panics(t, func() { m.HardcodedInitialDists(mvn.NewMVNDist(3), mvn.NewMVNDist(4)) })
	assert.Panics(t, func() { m.HardcodedInitialDists(mvn.NewMVNDist(4), mvn.NewMVNDist(5)) })
}
