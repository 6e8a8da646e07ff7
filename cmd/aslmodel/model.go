package main

import (
	"github.com/hammal/asl/fwdmodel"
	"github.com/hammal/asl/models"
	"github.com/hammal/asl/options"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// modelFlags selects and configures a model
type modelFlags struct {
	name        string
	optionsFile string
	opts        []string
}

func (f *modelFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "model", Aliases: []string{"m"}, Usage: "forward model name", Value: "quipss2", Destination: &f.name},
		&cli.StringFlag{Name: "options", Usage: "model options file (.yaml or KEY=VALUE lines)", Destination: &f.optionsFile},
		&cli.StringSliceFlag{Name: "opt", Aliases: []string{"o"}, Usage: "model option key=value, overrides the options file", Destination: &f.opts},
	}
}

// loggerSetter is implemented by models that report their configuration
type loggerSetter interface {
	SetLogger(*zap.Logger)
}

// initialize creates the model and configures it from the options file and
// the --opt flags.
func (f *modelFlags) initialize(logger *zap.Logger) (fwdmodel.FwdModel, error) {
	model, err := models.Default().New(f.name)
	if err != nil {
		return nil, err
	}
	if s, ok := model.(loggerSetter); ok {
		s.SetLogger(logger)
	}

	args := options.NewArgs(nil)
	if f.optionsFile != "" {
		fileArgs, err := options.LoadFile(f.optionsFile)
		if err != nil {
			return nil, err
		}
		args.Merge(fileArgs)
	}
	cmdArgs, err := options.ParseKeyValues(f.opts)
	if err != nil {
		return nil, err
	}
	args.Merge(cmdArgs)

	if err := model.Initialize(args); err != nil {
		return nil, err
	}
	for _, key := range args.Unused() {
		logger.Warn("option not used by model", zap.String("option", key), zap.String("model", f.name))
	}
	return model, nil
}
