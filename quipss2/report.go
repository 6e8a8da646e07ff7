package quipss2

import (
	"errors"
	"fmt"

	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/options"
	"gonum.org/v1/gonum/mat"
)

var modelOptions = []options.OptionSpec{
	{Name: "bold-basis", Type: options.OptMatrix, Description: "BOLD basis design file", Required: true},
	{Name: "cbf-basis", Type: options.OptMatrix, Description: "CBF basis design file (null for none)", Required: true},
	{Name: "statmag-basis", Type: options.OptMatrix, Description: "STATMAG basis design file (null for none)", Required: true},
	{Name: "nuisance-basis", Type: options.OptMatrix, Description: "nuisance regressors design file", Default: nullBasis},
	{Name: "scan-params", Type: options.OptString, Description: "source of the scan parameters", Default: defaultScanParams},
	{Name: "ti1", Type: options.OptFloat, Description: "ti1 (s)", Default: defaultTI1},
	{Name: "ti2", Type: options.OptFloat, Description: "ti2 (s)", Default: defaultTI2},
	{Name: "t1b-stdev", Type: options.OptFloat, Description: "T1 standard deviation of blood (if > 0 T1b becomes a parameter)", Default: defaultT1bStdev},
	{Name: "t1b", Type: options.OptFloat, Description: "T1 of blood (s)", Default: defaultT1b},
	{Name: "inv-eff-stdev", Type: options.OptFloat, Description: "Inversion efficiency standard deviation (if > 0 it becomes a parameter)", Default: defaultInvEffStdev},
	{Name: "inv-eff", Type: options.OptFloat, Description: "Inversion efficiency", Default: defaultInvEff},
	{Name: "dt-stdev", Type: options.OptFloat, Description: "Bolus arrival time standard deviation (if > 0 dt becomes a parameter)", Default: defaultDtStdev},
	{Name: "dt", Type: options.OptFloat, Description: "Bolus arrival time (s)", Default: defaultDt},
	{Name: "tag-pattern", Type: options.OptString, Description: "String of Ts and Cs", Default: defaultTagPattern},
	{Name: "te1", Type: options.OptFloat, Description: "First echo time (ms)", Default: defaultTE1},
	{Name: "te2", Type: options.OptFloat, Description: "Second echo time (ms)", Default: defaultTE2},
}

// GetOptions returns the option table of the model
func (m *Model) GetOptions() []options.OptionSpec {
	return append([]options.OptionSpec(nil), modelOptions...)
}

// GetUsage returns help text, one line per entry
func (m *Model) GetUsage() []string {
	return []string{
		"Usage info for --model=quipss2:",
		"Required options:",
		"--bold-basis=<bold_design_file>",
		"--cbf-basis=<cbf_design_file>",
		"--statmag-basis=<statmag_design_file>",
		"Optional options:",
		"--nuisance-basis=<nuisance_regressors_design_file> (default: null)",
		"--ti1=<ti1_in_sec>, ",
		"--ti2=<ti2_in_sec> (default: 0.6, 1.5)",
		"--te1=<te1_in_millisec>, ",
		"--te2=<te2_in_millisec> (default: 9.1, 30)",
		"--tag-pattern=<string_of_Ts_and_Cs> (default: TC)",
		"--t1b=<T1_of_blood> (default: 1.66), --t1b-stdev=<stdev> (to add it as a parameter)",
		"--dt=<bolus_arrival_time>, --dt-stdev (default: --dt=0.5 --dt-stdev=0.25)",
		"--inv-eff=<inversion_efficiency>, --inv-eff-stdev=<stdev> (to add it as a parameter)",
	}
}

// NameParams returns one name per parameter in layout order
func (m *Model) NameParams() []string {
	names := m.Layout().Names()
	if len(names) != m.NumParams() {
		panic(errors.New("Parameter names don't match the number of parameters"))
	}
	return names
}

// DumpParameters returns a labeled view of params: the baseline scalars, the
// absolute change coefficients and one nuisance line per echo.
func (m *Model) DumpParameters(params mat.Vector) fwdmodel.ParameterDump {
	if params.Len() != m.NumParams() {
		panic(errors.New("Parameter vector doesn't match the number of parameters"))
	}
	l := m.layout
	scalar := func(role string) []float64 { return []float64{params.AtVec(l.Index(role))} }

	baseline := fwdmodel.DumpSection{Title: "Baseline parameters", Entries: []fwdmodel.DumpEntry{
		{Label: "Q0", Values: scalar(RoleQ0), Note: "baseline CBF"},
		{Label: "M0", Values: scalar(RoleM0), Note: "baseline Stat. Mag."},
		{Label: "R0", Values: scalar(RoleR0), Note: "baseline T2*"},
	}}
	if l.Has(RoleT1b) {
		baseline.Entries = append(baseline.Entries, fwdmodel.DumpEntry{Label: "T1b", Values: scalar(RoleT1b), Note: "T1 of blood"})
	}
	if l.Has(RoleInvEff) {
		baseline.Entries = append(baseline.Entries, fwdmodel.DumpEntry{Label: "inv-eff", Values: scalar(RoleInvEff), Note: "inversion efficiency"})
	}
	if l.Has(RoleDt) {
		baseline.Entries = append(baseline.Entries, fwdmodel.DumpEntry{Label: "dt", Values: scalar(RoleDt), Note: "constant bolus arrival time"})
	}

	change := fwdmodel.DumpSection{Title: "Absolute change parameters (CBF, StatMag, BOLD effect)", Entries: []fwdmodel.DumpEntry{
		{Label: "Qn", Values: l.Values(RoleQn, params), Vector: true},
		{Label: "Mn", Values: l.Values(RoleMn, params), Vector: true},
		{Label: "Rn", Values: l.Values(RoleRn, params), Vector: true},
	}}

	nuisance := fwdmodel.DumpSection{Title: "Nuisance regressors (one line per TE)"}
	for te := range m.scan.EchoTimes {
		nuisance.Entries = append(nuisance.Entries, fwdmodel.DumpEntry{
			Label:  "Nn",
			Values: m.nuisanceOf(te, params),
			Vector: true,
			Note:   fmt.Sprintf("TE %.4g ms", m.scan.EchoTimes[te]*1000.),
		})
	}

	return fwdmodel.ParameterDump{Sections: []fwdmodel.DumpSection{baseline, change, nuisance}}
}
