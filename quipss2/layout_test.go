package quipss2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFull(t *testing.T) {
	m := newInitialized(t, fullArgs(t))

	// Q0 + 2 + M0 + 1 + R0 + 2 + 2 echoes * 1 nuisance + InvEff + T1b + dt
	require.Equal(t, 13, m.NumParams())
	assert.Equal(t, []string{
		"Q0", "Q_abschg_1", "Q_abschg_2",
		"M0", "M_abschg_1",
		"R0", "BOLD_abschg_1", "BOLD_abschg_2",
		"Nuisance_signal_1_te1", "Nuisance_signal_1_te2",
		"InvEff", "T1b", "dt",
	}, m.NameParams())

	assert.Equal(t, 0, m.Q0Index())
	assert.Equal(t, 3, m.M0Index())
	assert.Equal(t, 5, m.R0Index())
	assert.Equal(t, 10, m.InvEffIndex())
	assert.Equal(t, 11, m.T1bIndex())
	assert.Equal(t, 12, m.DtIndex())
}

func TestLayoutOptionalParameters(t *testing.T) {
	tests := []struct {
		name      string
		extra     map[string]string
		numParams int
		last      string
	}{
		{"default dt only", nil, 4, "dt"},
		{"nothing optional", map[string]string{"dt-stdev": "0"}, 3, "R0"},
		{"t1b only", map[string]string{"dt-stdev": "0", "t1b-stdev": "0.2"}, 4, "T1b"},
		{"inv-eff only", map[string]string{"dt-stdev": "0", "inv-eff-stdev": "0.1"}, 4, "InvEff"},
		{"all", map[string]string{"t1b-stdev": "0.2", "inv-eff-stdev": "0.1"}, 6, "dt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newInitialized(t, baselineArgs(t, 4, tt.extra))
			names := m.NameParams()
			assert.Equal(t, tt.numParams, m.NumParams())
			assert.Len(t, names, m.NumParams())
			assert.Equal(t, tt.last, names[len(names)-1])
		})
	}
}

func TestLayoutDtExcluded(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, map[string]string{"dt-stdev": "0"}))
	assert.NotContains(t, m.NameParams(), "dt")
	assert.False(t, m.Layout().Has(RoleDt))
	assert.Panics(t, func() { m.DtIndex() })
	assert.Panics(t, func() { m.T1bIndex() })
	assert.Panics(t, func() { m.InvEffIndex() })
}

func TestLayoutNuisancePerEcho(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 3, map[string]string{
		"dt-stdev":       "0",
		"nuisance-basis": writeBasis(t, "nuisance.mat", 3, 2, 1, 0, 0, 1, 1, 1),
	}))
	assert.Equal(t, []string{
		"Q0", "M0", "R0",
		"Nuisance_signal_1_te1", "Nuisance_signal_2_te1",
		"Nuisance_signal_1_te2", "Nuisance_signal_2_te2",
	}, m.NameParams())

	seg, ok := m.Layout().Segment(RoleNuisance)
	require.True(t, ok)
	assert.Equal(t, 3, seg.Start)
	assert.Equal(t, m.NumEchoes()*2, seg.Len)
}

func TestUninitializedPanics(t *testing.T) {
	m := New(nil)
	assert.Panics(t, func() { m.NumParams() })
	assert.Panics(t, func() { m.NameParams() })
	assert.Panics(t, func() { m.InitialDists() })
}
