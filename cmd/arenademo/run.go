package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pavanmanishd/blockarena"
	"github.com/pavanmanishd/blockarena/promarena"
	"github.com/pavanmanishd/blockarena/source"
)

func runDemo(ctx *cli.Context) error {
	logger, err := newLogger(ctx)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	src, err := cfg.MemorySource.Source()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	src = source.NewInstrumented(source.NewLogged(src, logger), reg)

	s, err := blockarena.NewSafeArena(cfg.InitialCapacity,
		blockarena.WithSource(src),
		blockarena.WithGrowthFactor(cfg.GrowthFactor),
		blockarena.WithDefaultAlignment(cfg.DefaultAlignment))
	if err != nil {
		return err
	}
	defer s.Release()
	reg.MustRegister(promarena.NewCollector(s, prometheus.Labels{"arena": "demo"}))

	if err := runScenario(s, logger); err != nil {
		return err
	}
	if !ctx.Bool(MetricsFlag.Name) {
		return nil
	}
	return dumpMetrics(ctx, reg)
}

func loadConfig(ctx *cli.Context) (blockarena.Config, error) {
	cfg := blockarena.DefaultConfig()
	if path := ctx.String(ConfigFlag.Name); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, errors.Wrap(err, "open config")
		}
		defer f.Close()
		if cfg, err = blockarena.LoadConfig(f); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(InitialCapacityFlag.Name) || ctx.String(ConfigFlag.Name) == "" {
		cfg.InitialCapacity = ctx.Int(InitialCapacityFlag.Name)
	}
	if ctx.IsSet(GrowthFactorFlag.Name) {
		cfg.GrowthFactor = ctx.Float64(GrowthFactorFlag.Name)
	}
	if limit := ctx.Int(LimitFlag.Name); limit > 0 {
		cfg.MemorySource = blockarena.SourceConfig{Kind: blockarena.SourceLimited, LimitBytes: limit}
	}
	return cfg, cfg.Validate()
}

// runScenario fills the first block, forces one growth, resets, reuses the
// older block and destroys the arena.
func runScenario(s *blockarena.SafeArena, logger logrus.FieldLogger) error {
	log := logger.WithField("action", "arena_demo")
	step := func(name string) {
		log.WithField("step", name).Infof("%v", s.Metrics())
	}
	step("created")

	numbers, err := blockarena.SafeAllocSlice[int32](s, 49)
	if err != nil {
		return errors.Wrap(err, "allocate 49 ints")
	}
	numbers[48] = 4
	step("allocated 49 ints")

	first, err := blockarena.SafeAlloc[int32](s)
	if err != nil {
		return errors.Wrap(err, "allocate first int")
	}
	*first = 69
	step("allocated first int")

	second, err := blockarena.SafeAlloc[int32](s)
	if err != nil {
		return errors.Wrap(err, "allocate second int")
	}
	*second = 420
	step("allocated second int")

	if err := s.Reset(); err != nil {
		return err
	}
	step("reset")

	more, err := blockarena.SafeAllocSlice[int32](s, 30)
	if err != nil {
		return errors.Wrap(err, "allocate 30 ints")
	}
	more[0] = 1
	step("allocated 30 ints")

	if err := s.Destroy(); err != nil {
		return err
	}
	step("destroyed")
	return nil
}

func dumpMetrics(ctx *cli.Context, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(ctx.App.Writer, mf); err != nil {
			return err
		}
	}
	return nil
}
