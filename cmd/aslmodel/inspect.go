package main

import (
	"context"
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/hammal/asl/models"
	"github.com/hammal/asl/mvn"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"
)

func modelsCmd() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List the available forward models",
		Action: func(ctx context.Context, c *cli.Command) error {
			r := models.Default()
			for index := 0; index < r.NumModels(); index++ {
				name, _ := r.ModelName(index)
				model, err := r.New(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.Root().Writer, "%s\t%s\n", name, model.GetDescription())
			}
			return nil
		},
	}
}

func usageCmd() *cli.Command {
	var name string
	return &cli.Command{
		Name:  "usage",
		Usage: "Print the options of a forward model",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Value: "quipss2", Destination: &name},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			model, err := models.Default().New(name)
			if err != nil {
				return err
			}
			w := c.Root().Writer
			fmt.Fprintf(w, "%s (%s)\n\n", model.GetDescription(), model.ModelVersion())
			for _, line := range model.GetUsage() {
				fmt.Fprintln(w, line)
			}
			fmt.Fprintln(w, "\nOptions:")
			for _, opt := range model.GetOptions() {
				fmt.Fprintln(w, "  "+opt.String())
			}
			return nil
		},
	}
}

func namesCmd() *cli.Command {
	var mf modelFlags
	return &cli.Command{
		Name:  "names",
		Usage: "Print the parameter names of a configured model",
		Flags: mf.flags(),
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
			for index, name := range model.NameParams() {
				fmt.Fprintf(c.Root().Writer, "%d\t%s\n", index, name)
			}
			return nil
		},
	}
}

type beliefJSON struct {
	Means      []float64   `json:"means"`
	Precisions [][]float64 `json:"precisions"`
	Stdevs     []float64   `json:"stdevs"`
}

type priorsJSON struct {
	Names     []string   `json:"names"`
	Prior     beliefJSON `json:"prior"`
	Posterior beliefJSON `json:"posterior"`
}

func priorsCmd() *cli.Command {
	var mf modelFlags
	return &cli.Command{
		Name:  "priors",
		Usage: "Print the prior and initial posterior of a configured model as JSON",
		Flags: mf.flags(),
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
			prior := mvn.NewMVNDist(model.NumParams())
			posterior := mvn.NewMVNDist(model.NumParams())
			model.HardcodedInitialDists(prior, posterior)

			out := priorsJSON{Names: model.NameParams()}
			if out.Prior, err = toBeliefJSON(prior); err != nil {
				return err
			}
			if out.Posterior, err = toBeliefJSON(posterior); err != nil {
				return err
			}
			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func toBeliefJSON(d *mvn.MVNDist) (beliefJSON, error) {
	n := d.Len()
	res := beliefJSON{
		Means:      make([]float64, n),
		Precisions: make([][]float64, n),
		Stdevs:     make([]float64, n),
	}
	cov, err := d.Covariance()
	if err != nil {
		return beliefJSON{}, err
	}
	for i := 0; i < n; i++ {
		res.Means[i] = d.Means.AtVec(i)
		res.Precisions[i] = mat.Row(nil, i, d.Precisions())
		res.Stdevs[i] = math.Sqrt(cov.At(i, i))
	}
	return res, nil
}
