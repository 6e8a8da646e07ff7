package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hammal/asl/gonumExtensions"
	"github.com/hammal/asl/mvn"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// echoCounter is implemented by models with interleaved multi echo output
type echoCounter interface {
	NumEchoes() int
}

func simulateCmd() *cli.Command {
	var (
		mf      modelFlags
		noiseSd float64
		seed    int
		output  string
		plotTo  string
	)
	return &cli.Command{
		Name:      "simulate",
		Usage:     "Generate a noisy synthetic signal, one row per TR and one column per echo",
		ArgsUsage: "[param ...]",
		Flags: append(mf.flags(),
			&cli.Float64Flag{Name: "noise-sd", Usage: "standard deviation of additive Gaussian noise", Destination: &noiseSd},
			&cli.IntFlag{Name: "seed", Usage: "noise seed", Value: 1, Destination: &seed},
			&cli.StringFlag{Name: "output", Usage: "output VEST file (default stdout)", Destination: &output},
			&cli.StringFlag{Name: "plot", Usage: "also save a plot of the signal (.png, .svg, .pdf)", Destination: &plotTo},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger, err := newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if noiseSd < 0 {
				return fmt.Errorf("--noise-sd must not be negative")
			}
			model, err := mf.initialize(logger)
			if err != nil {
				return err
			}

			var params mat.Vector
			if c.Args().Len() > 0 {
				vectors, err := readParams("", c.Args().Slice(), model.NumParams())
				if err != nil {
					return err
				}
				params = vectors[0]
			} else {
				prior := mvn.NewMVNDist(model.NumParams())
				posterior := mvn.NewMVNDist(model.NumParams())
				model.HardcodedInitialDists(prior, posterior)
				params = posterior.Means
			}
			logger.Info("simulating", zap.Object("parameters", model.DumpParameters(params)), zap.Float64("noise-sd", noiseSd))

			signal := model.Evaluate(params)
			if noiseSd > 0 {
				noise := distuv.Normal{Mu: 0, Sigma: noiseSd, Src: rand.NewPCG(uint64(seed), uint64(seed))}
				for index := 0; index < signal.Len(); index++ {
					signal.SetVec(index, signal.AtVec(index)+noise.Rand())
				}
			}

			cols := 1
			if e, ok := model.(echoCounter); ok {
				cols = e.NumEchoes()
			}
			data := gonumExtensions.VecToSlice(signal)
			d := gonumExtensions.NewDesignMatrix(mat.NewDense(len(data)/cols, cols, data))

			if plotTo != "" {
				if err := plotSignal(d, mf.name, plotTo); err != nil {
					return err
				}
				logger.Info("plot saved", zap.String("path", plotTo))
			}

			if output == "" {
				return gonumExtensions.WriteVest(c.Root().Writer, d)
			}
			return writeVestFile(output, d)
		},
	}
}

func writeVestFile(path string, d gonumExtensions.DesignMatrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gonumExtensions.WriteVest(f, d)
}
