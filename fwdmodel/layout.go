package fwdmodel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Slot is one entry of the parameter vector
type Slot struct {
	// Human readable parameter name
	Name string
	// Role of the segment the slot belongs to
	Role string
	// Position in the parameter vector
	Index int
}

// Segment is a contiguous run of slots sharing a role
type Segment struct {
	Role  string
	Start int
	Len   int
}

// Layout assigns a fixed meaning to each position of a parameter vector. It
// is built once while a model is configured and read by everything that
// interprets parameters.
type Layout struct {
	slots    []Slot
	segments []Segment
	byRole   map[string]int
}

// NewLayout returns an empty layout
func NewLayout() *Layout {
	return &Layout{byRole: make(map[string]int)}
}

// Append adds a segment with one slot per name. Empty segments are recorded
// so that Segment still reports them. Roles must be unique.
func (l *Layout) Append(role string, names ...string) Segment {
	if _, ok := l.byRole[role]; ok {
		panic(fmt.Errorf("Role %q already in layout", role))
	}
	seg := Segment{Role: role, Start: len(l.slots), Len: len(names)}
	for offset, name := range names {
		l.slots = append(l.slots, Slot{Name: name, Role: role, Index: seg.Start + offset})
	}
	l.byRole[role] = len(l.segments)
	l.segments = append(l.segments, seg)
	return seg
}

// NumParams returns the total number of slots
func (l *Layout) NumParams() int {
	return len(l.slots)
}

// Names returns the slot names in order
func (l *Layout) Names() []string {
	res := make([]string, len(l.slots))
	for index, slot := range l.slots {
		res[index] = slot.Name
	}
	return res
}

// Slots returns a copy of all slots in order
func (l *Layout) Slots() []Slot {
	return append([]Slot(nil), l.slots...)
}

// Segments returns a copy of all segments in order
func (l *Layout) Segments() []Segment {
	return append([]Segment(nil), l.segments...)
}

// Has reports whether role is part of the layout with at least one slot
func (l *Layout) Has(role string) bool {
	seg, ok := l.Segment(role)
	return ok && seg.Len > 0
}

// Segment returns the segment for role
func (l *Layout) Segment(role string) (Segment, bool) {
	index, ok := l.byRole[role]
	if !ok {
		return Segment{}, false
	}
	return l.segments[index], true
}

// Index returns the position of a scalar role. It panics when role is absent
// or not a single slot.
func (l *Layout) Index(role string) int {
	seg, ok := l.Segment(role)
	if !ok || seg.Len == 0 {
		panic(fmt.Errorf("Parameter %q is not part of the layout", role))
	}
	if seg.Len != 1 {
		panic(fmt.Errorf("Parameter %q is not a scalar", role))
	}
	return seg.Start
}

// Values copies the entries of params belonging to role
func (l *Layout) Values(role string, params mat.Vector) []float64 {
	if params.Len() != l.NumParams() {
		panic(errors.New("Parameter vector doesn't match layout"))
	}
	seg, ok := l.Segment(role)
	if !ok {
		panic(fmt.Errorf("Parameter %q is not part of the layout", role))
	}
	res := make([]float64, seg.Len)
	for offset := range res {
		res[offset] = params.AtVec(seg.Start + offset)
	}
	return res
}
