package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ParseCommandLine turns --key=value and --flag arguments into Args. A bare
// flag is stored with an empty value.
func ParseCommandLine(argv []string) (*Args, error) {
	args := NewArgs(nil)
	for _, arg := range argv {
		if !strings.HasPrefix(arg, "--") || len(arg) == 2 {
			return nil, fmt.Errorf("%w: %q is not of the form --key=value", ErrInvalidOption, arg)
		}
		key, value, _ := strings.Cut(arg[2:], "=")
		if key == "" {
			return nil, fmt.Errorf("%w: %q has an empty key", ErrInvalidOption, arg)
		}
		args.Set(key, value)
	}
	return args, nil
}

// ParseKeyValues turns key=value pairs into Args
func ParseKeyValues(pairs []string) (*Args, error) {
	args := NewArgs(nil)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not of the form key=value", ErrInvalidOption, pair)
		}
		args.Set(strings.TrimPrefix(key, "--"), value)
	}
	return args, nil
}

// LoadFile reads options from a file. Files ending in .yaml or .yml hold a
// flat YAML mapping, anything else is read as KEY=VALUE lines with
// environment style names, so TAG_PATTERN=TC sets --tag-pattern.
func LoadFile(path string) (*Args, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading options %s: %w", path, err)
		}
		args := NewArgs(nil)
		for key, value := range values {
			args.Set(envKeyToOption(key), value)
		}
		return args, nil
	}
}

func loadYAML(path string) (*Args, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing options %s: %w", path, err)
	}
	args := NewArgs(nil)
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			args.Set(key, "null")
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %s in %s must be a scalar", ErrInvalidOption, key, path)
		default:
			args.Set(key, fmt.Sprint(v))
		}
	}
	return args, nil
}

func envKeyToOption(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}
