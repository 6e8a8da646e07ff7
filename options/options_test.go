package options

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsRead(t *testing.T) {
	args := NewArgs(map[string]string{"ti1": "0.7", "tag-pattern": "TTCC", "bogus": "1"})

	v, err := args.Read("tag-pattern")
	require.NoError(t, err)
	assert.Equal(t, "TTCC", v)

	_, err = args.Read("bold-basis")
	assert.True(t, errors.Is(err, ErrMissingOption))

	assert.Equal(t, "1.5", args.ReadWithDefault("ti2", "1.5"))

	f, err := args.ReadFloatWithDefault("ti1", "0.6")
	require.NoError(t, err)
	assert.Equal(t, 0.7, f)

	assert.Equal(t, []string{"bogus"}, args.Unused())
}

func TestArgsReadFloatInvalid(t *testing.T) {
	args := NewArgs(map[string]string{"ti1": "soon"})
	_, err := args.ReadFloatWithDefault("ti1", "0.6")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestArgsMerge(t *testing.T) {
	base := NewArgs(map[string]string{"a": "1", "b": "2"})
	base.Merge(NewArgs(map[string]string{"b": "3", "c": "4"}))
	base.Merge(nil)
	assert.Equal(t, []string{"a", "b", "c"}, base.Keys())
	assert.Equal(t, "3", base.ReadWithDefault("b", ""))
}

func TestParseCommandLine(t *testing.T) {
	args, err := ParseCommandLine([]string{"--te1=9.1", "--tag-pattern=TC", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, "9.1", args.ReadWithDefault("te1", ""))
	assert.True(t, args.Has("verbose"))

	for _, bad := range []string{"te1=9.1", "--", "--=3"} {
		_, err := ParseCommandLine([]string{bad})
		assert.ErrorIs(t, err, ErrInvalidOption, bad)
	}
}

func TestParseKeyValues(t *testing.T) {
	args, err := ParseKeyValues([]string{"dt-stdev=0", "--te2=28"})
	require.NoError(t, err)
	assert.Equal(t, "0", args.ReadWithDefault("dt-stdev", ""))
	assert.Equal(t, "28", args.ReadWithDefault("te2", ""))

	_, err = ParseKeyValues([]string{"novalue"})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quipss2.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ti1: 0.7\ntag-pattern: TC\ndt-stdev: 0\nnuisance-basis: null\n"), 0o644))

	args, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.7", args.ReadWithDefault("ti1", ""))
	assert.Equal(t, "TC", args.ReadWithDefault("tag-pattern", ""))
	assert.Equal(t, "0", args.ReadWithDefault("dt-stdev", ""))
	assert.Equal(t, "null", args.ReadWithDefault("nuisance-basis", ""))
}

func TestLoadFileYAMLNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("ti1:\n  value: 3\n"), 0o644))
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestLoadFileEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quipss2.env")
	require.NoError(t, os.WriteFile(path, []byte("# scan\nTI2=1.4\nT1B_STDEV=0.1\nTAG_PATTERN=CT\n"), 0o644))

	args, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1b-stdev", "tag-pattern", "ti2"}, args.Keys())
	assert.Equal(t, "CT", args.ReadWithDefault("tag-pattern", ""))
}

func TestOptionSpecString(t *testing.T) {
	o := OptionSpec{Name: "ti1", Type: OptFloat, Description: "ti1 (s)", Default: "0.6"}
	assert.Equal(t, "--ti1 [FLOAT, optional] ti1 (s) (default: 0.6)", o.String())
	o = OptionSpec{Name: "bold-basis", Type: OptMatrix, Description: "BOLD basis design file", Required: true}
	assert.Equal(t, "--bold-basis [MATRIX, required] BOLD basis design file", o.String())
}
