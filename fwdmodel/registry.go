package fwdmodel

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned when a model name isn't registered
var ErrUnknownModel = errors.New("unknown model")

// Entry binds a model name to its constructor
type Entry struct {
	Name string
	New  NewInstanceFunc
}

// Registry is a fixed, ordered set of named models
type Registry struct {
	entries []Entry
	byName  map[string]NewInstanceFunc
}

// NewRegistry builds a registry from entries. Names must be unique and
// constructors non nil.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{byName: make(map[string]NewInstanceFunc, len(entries))}
	for _, entry := range entries {
		if entry.New == nil {
			panic(fmt.Errorf("Model %q has no constructor", entry.Name))
		}
		if _, ok := r.byName[entry.Name]; ok {
			panic(fmt.Errorf("Model %q registered twice", entry.Name))
		}
		r.byName[entry.Name] = entry.New
		r.entries = append(r.entries, entry)
	}
	return r
}

// NumModels returns the number of registered models
func (r *Registry) NumModels() int {
	return len(r.entries)
}

// ModelName returns the name of model index
func (r *Registry) ModelName(index int) (string, bool) {
	if index < 0 || index >= len(r.entries) {
		return "", false
	}
	return r.entries[index].Name, true
}

// Names returns all model names in registration order
func (r *Registry) Names() []string {
	res := make([]string, len(r.entries))
	for index, entry := range r.entries {
		res[index] = entry.Name
	}
	return res
}

// NewInstanceFunc returns the constructor registered under name
func (r *Registry) NewInstanceFunc(name string) (NewInstanceFunc, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// New returns a fresh uninitialized instance of model name
func (r *Registry) New(name string) (FwdModel, error) {
	f, ok := r.NewInstanceFunc(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return f(), nil
}
