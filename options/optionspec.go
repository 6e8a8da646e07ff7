package options

import "fmt"

// OptionType is the value type of an option
type OptionType int

const (
	OptBool OptionType = iota
	OptInt
	OptFloat
	OptString
	// OptMatrix is a path to a design matrix file
	OptMatrix
)

func (t OptionType) String() string {
	switch t {
	case OptBool:
		return "BOOL"
	case OptInt:
		return "INT"
	case OptFloat:
		return "FLOAT"
	case OptString:
		return "STR"
	case OptMatrix:
		return "MATRIX"
	default:
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
}

// OptionSpec describes one option a model accepts
type OptionSpec struct {
	Name        string
	Type        OptionType
	Description string
	Required    bool
	Default     string
}

// String renders the option as one line of help text
func (o OptionSpec) String() string {
	req := "optional"
	if o.Required {
		req = "required"
	}
	line := fmt.Sprintf("--%s [%s, %s] %s", o.Name, o.Type, req, o.Description)
	if o.Default != "" {
		line += fmt.Sprintf(" (default: %s)", o.Default)
	}
	return line
}
