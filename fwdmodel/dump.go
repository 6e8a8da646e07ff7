package fwdmodel

import (
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// DumpEntry is one labeled scalar or vector of a parameter dump
type DumpEntry struct {
	Label  string
	Values []float64
	// Vector entries are rendered as lists whatever their length
	Vector bool
	// Optional description rendered after the values
	Note string
}

func (e DumpEntry) scalar() bool {
	return !e.Vector && len(e.Values) == 1
}

// DumpSection groups entries under a title
type DumpSection struct {
	Title   string
	Entries []DumpEntry
}

// ParameterDump is a structured, renderer independent view of a parameter
// vector. Format renders it as text and MarshalLogObject hands it to zap.
type ParameterDump struct {
	Sections []DumpSection
}

// String renders the dump without indentation
func (d ParameterDump) String() string {
	return d.Format("")
}

// Format renders the dump as text with every line prefixed by indent
//
//	Baseline parameters:
//	  Q0 == 200 (baseline CBF)
//	  Qn == [1 2]
func (d ParameterDump) Format(indent string) string {
	var b strings.Builder
	for _, section := range d.Sections {
		b.WriteString(indent)
		b.WriteString(section.Title)
		b.WriteString(":\n")
		for _, entry := range section.Entries {
			b.WriteString(indent)
			b.WriteString("  ")
			b.WriteString(entry.Label)
			b.WriteString(" == ")
			b.WriteString(formatValues(entry))
			if entry.Note != "" {
				b.WriteString(" (")
				b.WriteString(entry.Note)
				b.WriteString(")")
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// formatValues prints a scalar bare and a vector in brackets
func formatValues(entry DumpEntry) string {
	if entry.scalar() {
		return strconv.FormatFloat(entry.Values[0], 'g', -1, 64)
	}
	parts := make([]string, len(entry.Values))
	for index, v := range entry.Values {
		parts[index] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (d ParameterDump) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, section := range d.Sections {
		if err := enc.AddObject(section.Title, section); err != nil {
			return err
		}
	}
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Entries sharing a
// label, such as per echo rows, are suffixed with their position.
func (s DumpSection) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	seen := make(map[string]int)
	for _, entry := range s.Entries {
		key := entry.Label
		if n := seen[entry.Label]; n > 0 {
			key += "_" + strconv.Itoa(n+1)
		}
		seen[entry.Label]++
		if entry.scalar() {
			enc.AddFloat64(key, entry.Values[0])
			continue
		}
		values := entry.Values
		err := enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
			for _, v := range values {
				arr.AppendFloat64(v)
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
