package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/gonumExtensions"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

type evaluationJSON struct {
	Params jsonFloats `json:"params"`
	Signal jsonFloats `json:"signal"`
}

// jsonFloats encodes non finite values as the strings "NaN", "+Inf" and
// "-Inf", which plain JSON numbers cannot represent.
type jsonFloats []float64

func (f jsonFloats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	b := make([]byte, 0, 2+len(f)*20)
	b = append(b, '[')
	for index, v := range f {
		if index > 0 {
			b = append(b, ',')
		}
		switch {
		case math.IsNaN(v):
			b = append(b, `"NaN"`...)
		case math.IsInf(v, 1):
			b = append(b, `"+Inf"`...)
		case math.IsInf(v, -1):
			b = append(b, `"-Inf"`...)
		default:
			b = strconv.AppendFloat(b, v, 'g', -1, 64)
		}
	}
	return append(b, ']'), nil
}

func evaluateCmd() *cli.Command {
	var (
		mf         modelFlags
		paramsPath string
		workers    int
		dump       bool
	)
	return &cli.Command{
		Name:      "evaluate",
		Usage:     "Predict the signal for parameter vectors",
		ArgsUsage: "[param ...]",
		Flags: append(mf.flags(),
			&cli.StringFlag{Name: "params", Usage: "matrix file with one parameter vector per row", Destination: &paramsPath},
			&cli.IntFlag{Name: "workers", Usage: "concurrent evaluations (0 = GOMAXPROCS)", Destination: &workers},
			&cli.BoolFlag{Name: "dump", Usage: "log every parameter vector", Destination: &dump},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger, err := newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			model, err := mf.initialize(logger)
			if err != nil {
				return err
			}
			params, err := readParams(paramsPath, c.Args().Slice(), model.NumParams())
			if err != nil {
				return err
			}
			if dump {
				for index, p := range params {
					logger.Info("parameters", zap.Int("row", index), zap.Object("dump", model.DumpParameters(p)))
				}
			}

			signals := fwdmodel.EvaluateBatch(model, params, workers)
			out := make([]evaluationJSON, len(signals))
			for index, signal := range signals {
				if gonumExtensions.NANORINF(signal) {
					logger.Warn("non finite prediction", zap.Int("row", index))
				}
				out[index] = evaluationJSON{
					Params: gonumExtensions.VecToSlice(params[index]),
					Signal: gonumExtensions.VecToSlice(signal),
				}
			}
			return json.NewEncoder(c.Root().Writer).Encode(out)
		},
	}
}

// readParams reads parameter vectors from a matrix file or, without a file,
// a single vector from the positional arguments.
func readParams(path string, positional []string, numParams int) ([]mat.Vector, error) {
	if path == "" {
		if len(positional) == 0 {
			return nil, fmt.Errorf("no parameters given, use --params or positional values")
		}
		values := make([]float64, len(positional))
		for index, arg := range positional {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("parameter %d: %w", index, err)
			}
			values[index] = v
		}
		if len(values) != numParams {
			return nil, fmt.Errorf("got %d parameters, model expects %d", len(values), numParams)
		}
		return []mat.Vector{mat.NewVecDense(numParams, values)}, nil
	}

	var (
		d   gonumExtensions.DesignMatrix
		err error
	)
	if path == "-" {
		d, err = gonumExtensions.ParseVest(os.Stdin)
	} else {
		d, err = gonumExtensions.ReadVest(path)
	}
	if err != nil {
		return nil, err
	}
	if d.Cols() != numParams {
		return nil, fmt.Errorf("%s has %d columns, model expects %d parameters", path, d.Cols(), numParams)
	}
	res := make([]mat.Vector, d.Rows())
	for row := range res {
		res[row] = d.Dense().RowView(row)
	}
	return res, nil
}
