package bench

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mhr3/wsbench/ascii"
	"github.com/mhr3/wsbench/sample"
)

// platformOnly holds the bytes unicode.IsSpace accepts beyond the exact set.
var platformOnly = ascii.MakeCharSet("\v\f\x85\xa0")

// Result is the outcome of one timed counting pass.
type Result struct {
	Strategy string        `json:"strategy" yaml:"strategy"`
	Count    int           `json:"count" yaml:"count"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// SampleResult collects the results of every strategy over one sample.
type SampleResult struct {
	Name   string `json:"name" yaml:"name"`
	Title  string `json:"title" yaml:"title"`
	Length int    `json:"length" yaml:"length"`
	Seed   uint64 `json:"seed" yaml:"seed"`
	ASCII  bool   `json:"ascii" yaml:"ascii"`
	// Expected is the whitespace count taken from an untimed byte histogram.
	Expected int `json:"expected" yaml:"expected"`
	// Ambiguous is set when the sample holds bytes only the platform
	// predicate treats as whitespace, so its count is expected to differ.
	Ambiguous bool     `json:"ambiguous" yaml:"ambiguous"`
	Results   []Result `json:"results" yaml:"results"`
}

// TimeCount runs one counting pass of s over data and measures it.
func TimeCount(s Strategy, data string) Result {
	return timeCount(time.Now, s, data)
}

func timeCount(now func() time.Time, s Strategy, data string) Result {
	start := now()
	n := s.Count(data)
	stop := now()
	return Result{Strategy: s.Name, Count: n, Elapsed: stop.Sub(start)}
}

// Runner times a fixed list of strategies over samples.
type Runner struct {
	Strategies []Strategy
	// Now defaults to time.Now.
	Now func() time.Time
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// Run times every strategy over smp once, in order. The context is checked
// between passes; a pass in progress always completes.
func (r *Runner) Run(ctx context.Context, smp sample.Sample) (SampleResult, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	hist := ascii.BuildHistogram(smp.Data)
	res := SampleResult{
		Name:      smp.Name,
		Title:     smp.Title,
		Length:    len(smp.Data),
		Seed:      smp.Seed,
		ASCII:     smp.ASCII,
		Expected:  hist.CountIn(ascii.Whitespace),
		Ambiguous: hist.CountIn(platformOnly) > 0,
		Results:   make([]Result, 0, len(r.Strategies)),
	}

	for _, s := range r.Strategies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		out := timeCount(now, s, smp.Data)
		logger.Debug("pass complete",
			"sample", smp.Name,
			"strategy", out.Strategy,
			"count", out.Count,
			"elapsed", out.Elapsed)
		res.Results = append(res.Results, out)
	}
	return res, nil
}
