// Package options holds the string key/value configuration handed to forward
// models, the declarative option tables models publish for help text, and the
// errors returned when a configuration is rejected.
package options

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrMissingOption is returned when a mandatory option is not set
	ErrMissingOption = errors.New("missing option")
	// ErrInvalidOption is returned when an option value is rejected
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnsupportedOption is returned for configurations that are recognised
	// but not supported
	ErrUnsupportedOption = errors.New("unsupported option")
)

// Args is a set of string options. Every read is recorded so that options
// nobody asked for can be reported.
type Args struct {
	values map[string]string
	used   map[string]bool
}

// NewArgs returns Args holding a copy of values
func NewArgs(values map[string]string) *Args {
	args := &Args{
		values: make(map[string]string, len(values)),
		used:   make(map[string]bool),
	}
	maps.Copy(args.values, values)
	return args
}

// Set stores value under key, replacing any previous value
func (a *Args) Set(key, value string) {
	a.values[key] = value
}

// Merge copies all options of other into a. Options of other win.
func (a *Args) Merge(other *Args) {
	if other == nil {
		return
	}
	maps.Copy(a.values, other.values)
}

// Has reports whether key is set
func (a *Args) Has(key string) bool {
	_, ok := a.values[key]
	if ok {
		a.used[key] = true
	}
	return ok
}

// Read returns the value of a mandatory option
func (a *Args) Read(key string) (string, error) {
	value, ok := a.values[key]
	if !ok {
		return "", fmt.Errorf("%w: --%s", ErrMissingOption, key)
	}
	a.used[key] = true
	return value, nil
}

// ReadWithDefault returns the value of key or def if it is not set
func (a *Args) ReadWithDefault(key, def string) string {
	value, err := a.Read(key)
	if err != nil {
		return def
	}
	return value
}

// ReadFloatWithDefault parses the value of key (or def) as a float
func (a *Args) ReadFloatWithDefault(key, def string) (float64, error) {
	raw := a.ReadWithDefault(key, def)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: --%s=%s is not a number", ErrInvalidOption, key, raw)
	}
	return value, nil
}

// Keys returns all option names in sorted order
func (a *Args) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}

// Unused returns the sorted names of options that were never read
func (a *Args) Unused() []string {
	var res []string
	for _, key := range a.Keys() {
		if !a.used[key] {
			res = append(res, key)
		}
	}
	return res
}
