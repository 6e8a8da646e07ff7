package quipss2

import (
	"fmt"
	"strings"

	"github.com/hammal/asl/options"
)

const (
	tagSign     = -1.
	controlSign = 1.
)

func validateTagPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: tag-pattern must not be empty", options.ErrInvalidOption)
	}
	if strings.Trim(pattern, "TCtc") != "" {
		return fmt.Errorf("%w: tag-pattern %q must contain only Ts and Cs", options.ErrInvalidOption, pattern)
	}
	return nil
}

// TagControlPattern repeats pattern until it covers numTR samples and maps
// T to -1 and C to +1.
func TagControlPattern(pattern string, numTR int) ([]float64, error) {
	if err := validateTagPattern(pattern); err != nil {
		return nil, err
	}
	rho := make([]float64, numTR)
	for index := range rho {
		switch pattern[index%len(pattern)] {
		case 'T', 't':
			rho[index] = tagSign
		default:
			rho[index] = controlSign
		}
	}
	return rho, nil
}

// TagControlString renders a sign sequence back as Ts and Cs
func TagControlString(rho []float64) string {
	var b strings.Builder
	b.Grow(len(rho))
	for _, r := range rho {
		if r > 0 {
			b.WriteByte('C')
		} else {
			b.WriteByte('T')
		}
	}
	return b.String()
}
