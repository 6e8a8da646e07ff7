package quipss2

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammal/asl/options"
	"github.com/stretchr/testify/require"
)

// writeBasis writes a rows by cols VEST file, data is row major
func writeBasis(t testing.TB, name string, rows, cols int, data ...float64) string {
	t.Helper()
	require.Equal(t, rows*cols, len(data), "basis data size")
	var b strings.Builder
	fmt.Fprintf(&b, "/NumWaves %d\n/NumPoints %d\n/Matrix\n", cols, rows)
	for row := 0; row < rows && cols > 0; row++ {
		for col := 0; col < cols; col++ {
			fmt.Fprintf(&b, "%v ", data[row*cols+col])
		}
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// baselineArgs configures numTR TRs without any basis functions
func baselineArgs(t testing.TB, numTR int, extra map[string]string) *options.Args {
	t.Helper()
	values := map[string]string{
		"bold-basis":    writeBasis(t, "bold.mat", numTR, 0),
		"cbf-basis":     "null",
		"statmag-basis": "null",
	}
	for key, value := range extra {
		values[key] = value
	}
	return options.NewArgs(values)
}

func newInitialized(t testing.TB, args *options.Args) *Model {
	t.Helper()
	m := New(nil)
	require.NoError(t, m.Initialize(args))
	return m
}

// fullArgs configures 6 TRs with every basis and every optional parameter
func fullArgs(t testing.TB) *options.Args {
	t.Helper()
	return options.NewArgs(map[string]string{
		"bold-basis": writeBasis(t, "bold.mat", 6, 2,
			1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1),
		"cbf-basis": writeBasis(t, "cbf.mat", 6, 2,
			1, 0, 1, 0, 0, 1, 0, 1, 1, 1, 1, 1),
		"statmag-basis":  writeBasis(t, "statmag.mat", 6, 1, 0, 1, 2, 3, 4, 5),
		"nuisance-basis": writeBasis(t, "nuisance.mat", 6, 1, 1, 1, 1, 1, 1, 1),
		"tag-pattern":    "TTCC",
		"t1b-stdev":      "0.1",
		"inv-eff-stdev":  "0.05",
		"dt-stdev":       "0.25",
	})
}
