package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	logLevel  string
	logFormat string
)

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "aslmodel",
		Usage: "Inspect and evaluate ASL forward models",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: "info", Destination: &logLevel},
			&cli.StringFlag{Name: "log-format", Usage: "json or console", Value: "console", Destination: &logFormat},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			modelsCmd(),
			usageCmd(),
			namesCmd(),
			priorsCmd(),
			evaluateCmd(),
			simulateCmd(),
		},
	}
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
