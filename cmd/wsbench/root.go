package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhr3/wsbench/bench"
	"github.com/mhr3/wsbench/sample"
)

var errInvalidFlag = errors.New("invalid flag")

// config holds the parsed command line.
type config struct {
	length     int
	seed       uint64
	samples    []string
	strategies []string
	format     string
	strict     bool
	logLevel   string
}

var formats = []string{"text", "json", "yaml"}

func defaultConfig() config {
	return config{
		length:     sample.DefaultLength,
		samples:    sample.Names(),
		strategies: []string{"branches", "table", "switch", "crt"},
		format:     "text",
		logLevel:   "warn",
	}
}

func (c config) validate() error {
	if c.length < 0 {
		return fmt.Errorf("%w: --length must not be negative, got %d", errInvalidFlag, c.length)
	}
	if len(c.samples) == 0 {
		return fmt.Errorf("%w: --samples must name at least one generator", errInvalidFlag)
	}
	// sample i is seeded with seed+i, which must not wrap around to 0
	if c.seed > math.MaxUint64-uint64(len(c.samples)-1) {
		return fmt.Errorf("%w: --seed %d overflows with %d samples", errInvalidFlag, c.seed, len(c.samples))
	}
	for _, f := range formats {
		if c.format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: --format %q, want one of %s", errInvalidFlag, c.format, strings.Join(formats, ", "))
}

func (c config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.logLevel)); err != nil {
		return 0, fmt.Errorf("%w: --log-level: %w", errInvalidFlag, err)
	}
	return lvl, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "wsbench",
		Short: "Time whitespace predicates over large synthetic buffers",
		Long: `Generates large synthetic text buffers and counts the whitespace
bytes (space, newline, tab, carriage return) in each one with several
interchangeable predicates, printing the match count and elapsed time of
every pass.

Each pass runs once with no warm-up, so numbers are indicative only; use
"go test -bench . ./ascii" for repeatable measurements.

Examples:
  wsbench                         # two 100MB samples, four predicates
  wsbench -n 1000000 -s all       # every strategy on 1MB samples
  wsbench --seed 42 -f json       # reproducible run, JSON output`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			lvl, err := cfg.level()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
			return run(cmd.Context(), cfg, stdout, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.length, "length", "n", cfg.length, "bytes per sample")
	flags.Uint64Var(&cfg.seed, "seed", cfg.seed, "random seed (0 picks one per sample)")
	flags.StringSliceVar(&cfg.samples, "samples", cfg.samples, "generators to run, in order ("+strings.Join(sample.Names(), ", ")+")")
	flags.StringSliceVarP(&cfg.strategies, "strategies", "s", cfg.strategies, "strategies to time, or \"all\"")
	flags.StringVarP(&cfg.format, "format", "f", cfg.format, "output format ("+strings.Join(formats, ", ")+")")
	flags.BoolVar(&cfg.strict, "strict", cfg.strict, "fail when strategies disagree on a count")
	flags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "diagnostic log level (debug, info, warn, error)")

	return cmd
}

// strategyNames is used for debug logging.
func strategyNames(ss []bench.Strategy) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name
	}
	return out
}
