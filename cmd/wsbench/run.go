package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mhr3/wsbench/bench"
	"github.com/mhr3/wsbench/internal/bytealg"
	"github.com/mhr3/wsbench/sample"
)

// selectStrategies resolves --strategies into the strategies to time.
var selectStrategies = bench.Select

// run generates each requested sample in turn, times the selected
// strategies over it and writes the report. Only one sample buffer is
// alive at a time.
func run(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) error {
	strategies, err := selectStrategies(cfg.strategies)
	if err != nil {
		return err
	}
	gens := make([]sample.Generator, len(cfg.samples))
	for i, name := range cfg.samples {
		if gens[i], err = sample.Lookup(name); err != nil {
			return err
		}
	}

	rep := bench.Report{CPU: bytealg.Features()}
	logger.Debug("starting",
		"length", cfg.length,
		"samples", cfg.samples,
		"strategies", strategyNames(strategies),
		"cpu", rep.CPU)

	var text *bench.TextWriter
	if cfg.format == "text" {
		text = bench.NewTextWriter(stdout, strategies)
	}
	runner := &bench.Runner{Strategies: strategies, Logger: logger}

	var mismatches []error
	for i, gen := range gens {
		seed := cfg.seed
		if seed != 0 {
			seed += uint64(i)
		}
		smp, err := gen(cfg.length, seed)
		if err != nil {
			return err
		}
		logger.Debug("sample generated", "sample", smp.Name, "seed", smp.Seed, "ascii", smp.ASCII)

		res, err := runner.Run(ctx, smp)
		if err != nil {
			return fmt.Errorf("%s: %w", smp.Title, err)
		}
		if err := bench.CrossCheck(res, strategies); err != nil {
			logger.Warn("count mismatch", "sample", smp.Name, "seed", smp.Seed, "err", err)
			mismatches = append(mismatches, err)
		}

		if text != nil {
			if err := text.WriteSample(res); err != nil {
				return err
			}
		}
		rep.Samples = append(rep.Samples, res)
	}

	switch cfg.format {
	case "json":
		err = bench.WriteJSON(stdout, rep)
	case "yaml":
		err = bench.WriteYAML(stdout, rep)
	}
	if err != nil {
		return err
	}

	if cfg.strict {
		return errors.Join(mismatches...)
	}
	return nil
}
