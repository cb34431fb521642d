// arenademo walks an arena through its lifecycle and logs what happens.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML file with the arena configuration",
	}
	InitialCapacityFlag = &cli.IntFlag{
		Name:  "initial-capacity",
		Usage: "Capacity of the first block in bytes (overrides the config file)",
		Value: 200,
	}
	GrowthFactorFlag = &cli.Float64Flag{
		Name:  "growth-factor",
		Usage: "Multiplier applied to requests when sizing new blocks (overrides the config file)",
	}
	LimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Cap the memory source at this many bytes (0 means no cap)",
	}
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (trace, debug, info, warn, error)",
		Value: "info",
	}
	MetricsFlag = &cli.BoolFlag{
		Name:  "metrics",
		Usage: "Print the arena and memory source metrics on exit",
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:   "arenademo",
		Usage:  "exercise a block arena allocator",
		Flags:  []cli.Flag{ConfigFlag, InitialCapacityFlag, GrowthFactorFlag, LimitFlag, LogLevelFlag, MetricsFlag},
		Action: runDemo,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(ctx *cli.Context) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(ctx.App.ErrWriter)
	logger.SetLevel(level)
	return logger, nil
}
