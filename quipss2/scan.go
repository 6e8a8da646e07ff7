package quipss2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammal/asl/options"
	"go.uber.org/zap/zapcore"
)

// Option defaults, as strings so they can be shown in help text
const (
	defaultScanParams  = "cmdline"
	defaultTI1         = "0.60"
	defaultTI2         = "1.50"
	defaultT1b         = "1.66"
	defaultT1bStdev    = "0"
	defaultInvEff      = "1"
	defaultInvEffStdev = "0"
	defaultDt          = "0.5"
	defaultDtStdev     = "0.25"
	defaultTagPattern  = "TC"
	defaultTE1         = "9.1"
	defaultTE2         = "30"
	nullBasis          = "null"
)

// Echo times outside (minEchoTime, maxEchoTime] seconds are rejected
const (
	minEchoTime = 0.001
	maxEchoTime = 0.500
)

// ScanParameters is the resolved acquisition and physiology configuration.
// A standard deviation > 0 turns the matching fixed value into a parameter
// with an informative prior centred on that value.
type ScanParameters struct {
	// Inversion times (s)
	TI1, TI2 float64
	// T1 of blood (s)
	T1b, T1bStdev float64
	// Inversion efficiency
	InvEff, InvEffStdev float64
	// Bolus arrival time (s)
	Dt, DtStdev float64
	// String of Ts and Cs repeated over all TRs
	TagPattern string
	// Echo times (s)
	EchoTimes []float64
}

// readScanParameters reads and validates the cmdline scan parameters
func readScanParameters(args *options.Args) (ScanParameters, error) {
	var (
		scan ScanParameters
		err  error
	)
	floats := []struct {
		key, def string
		dst      *float64
	}{
		{"ti1", defaultTI1, &scan.TI1},
		{"ti2", defaultTI2, &scan.TI2},
		{"t1b-stdev", defaultT1bStdev, &scan.T1bStdev},
		{"t1b", defaultT1b, &scan.T1b},
		{"inv-eff-stdev", defaultInvEffStdev, &scan.InvEffStdev},
		{"inv-eff", defaultInvEff, &scan.InvEff},
		{"dt-stdev", defaultDtStdev, &scan.DtStdev},
		{"dt", defaultDt, &scan.Dt},
	}
	for _, f := range floats {
		if *f.dst, err = args.ReadFloatWithDefault(f.key, f.def); err != nil {
			return ScanParameters{}, err
		}
	}
	if scan.InvEffStdev < 0 || scan.DtStdev < 0 || scan.T1bStdev < 0 {
		return ScanParameters{}, fmt.Errorf("%w: standard deviations must not be negative", options.ErrInvalidOption)
	}

	scan.TagPattern = args.ReadWithDefault("tag-pattern", defaultTagPattern)
	if err := validateTagPattern(scan.TagPattern); err != nil {
		return ScanParameters{}, err
	}

	scan.EchoTimes = make([]float64, 2)
	for index, def := range []string{defaultTE1, defaultTE2} {
		key := fmt.Sprintf("te%d", index+1)
		ms, err := args.ReadFloatWithDefault(key, def)
		if err != nil {
			return ScanParameters{}, err
		}
		te := ms / 1000.
		if te <= minEchoTime {
			return ScanParameters{}, fmt.Errorf("%w: --%s=%v, was expecting TE > 1 ms (don't use seconds!)", options.ErrInvalidOption, key, ms)
		}
		if te > maxEchoTime {
			return ScanParameters{}, fmt.Errorf("%w: --%s=%v, was expecting TE < 500 ms", options.ErrInvalidOption, key, ms)
		}
		scan.EchoTimes[index] = te
	}
	// The equations handle any number of echoes but only two are supported
	for _, key := range args.Keys() {
		n, ok := strings.CutPrefix(key, "te")
		if !ok {
			continue
		}
		if index, err := strconv.Atoi(n); err == nil && index > len(scan.EchoTimes) {
			args.Has(key)
			return ScanParameters{}, fmt.Errorf("%w: --%s, using more than two echo times is not supported", options.ErrUnsupportedOption, key)
		}
	}
	return scan, nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (s ScanParameters) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("ti1", s.TI1)
	enc.AddFloat64("ti2", s.TI2)
	enc.AddFloat64("t1b", s.T1b)
	enc.AddFloat64("t1b-stdev", s.T1bStdev)
	enc.AddFloat64("inv-eff", s.InvEff)
	enc.AddFloat64("inv-eff-stdev", s.InvEffStdev)
	enc.AddFloat64("dt", s.Dt)
	enc.AddFloat64("dt-stdev", s.DtStdev)
	enc.AddString("tag-pattern", s.TagPattern)
	return enc.AddArray("te-ms", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, te := range s.EchoTimes {
			arr.AppendFloat64(te * 1000.)
		}
		return nil
	}))
}
