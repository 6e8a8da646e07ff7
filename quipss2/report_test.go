package quipss2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDumpParameters(t *testing.T) {
	m := newInitialized(t, fullArgs(t))
	params := mat.NewVecDense(13, []float64{
		200, 1, 2,
		15000, 3,
		25, 0.1, 0.2,
		7, 8,
		0.9, 1.6, 0.6,
	})
	dump := m.DumpParameters(params)
	require.Len(t, dump.Sections, 3)

	expected := strings.Join([]string{
		"Baseline parameters:",
		"  Q0 == 200 (baseline CBF)",
		"  M0 == 15000 (baseline Stat. Mag.)",
		"  R0 == 25 (baseline T2*)",
		"  T1b == 1.6 (T1 of blood)",
		"  inv-eff == 0.9 (inversion efficiency)",
		"  dt == 0.6 (constant bolus arrival time)",
		"Absolute change parameters (CBF, StatMag, BOLD effect):",
		"  Qn == [1 2]",
		"  Mn == [3]",
		"  Rn == [0.1 0.2]",
		"Nuisance regressors (one line per TE):",
		"  Nn == [7] (TE 9.1 ms)",
		"  Nn == [8] (TE 30 ms)",
		"",
	}, "\n")
	assert.Equal(t, expected, dump.String())

	assert.Panics(t, func() { m.DumpParameters(mat.NewVecDense(12, nil)) })
}

func TestDumpParametersBaselineOnly(t *testing.T) {
	m := newInitialized(t, baselineArgs(t, 4, map[string]string{"dt-stdev": "0"}))
	dump := m.DumpParameters(mat.NewVecDense(3, []float64{1, 2, 3}))
	assert.Len(t, dump.Sections[0].Entries, 3)
	for _, entry := range dump.Sections[2].Entries {
		assert.Empty(t, entry.Values)
	}
}

func TestGetOptionsAndUsage(t *testing.T) {
	m := New(nil)
	opts := m.GetOptions()
	byName := make(map[string]bool)
	for _, o := range opts {
		byName[o.Name] = o.Required
	}
	for _, required := range []string{"bold-basis", "cbf-basis", "statmag-basis"} {
		assert.True(t, byName[required], required)
	}
	for _, optional := range []string{"nuisance-basis", "ti1", "ti2", "t1b", "t1b-stdev", "inv-eff", "inv-eff-stdev", "dt", "dt-stdev", "tag-pattern", "te1", "te2", "scan-params"} {
		required, ok := byName[optional]
		assert.True(t, ok, optional)
		assert.False(t, required, optional)
	}

	opts[0].Name = "changed"
	assert.Equal(t, "bold-basis", m.GetOptions()[0].Name)

	usage := m.GetUsage()
	assert.Equal(t, "Usage info for --model=quipss2:", usage[0])
	assert.Contains(t, usage, "--tag-pattern=<string_of_Ts_and_Cs> (default: TC)")
	assert.Equal(t, "Implements the QUIPSS II ASL", m.GetDescription())
	assert.NotEmpty(t, m.ModelVersion())
}
