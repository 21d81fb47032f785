// Package bench times whitespace-counting strategies over generated samples.
package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mhr3/wsbench/ascii"
	"github.com/mhr3/wsbench/internal/bytealg"
)

// ErrUnknownStrategy is returned when no strategy has the given name.
var ErrUnknownStrategy = errors.New("bench: unknown strategy")

// Strategy is one way of counting whitespace bytes in a buffer.
type Strategy struct {
	Name  string
	Count func(string) int
	// Exact is set when the strategy matches exactly ' ', '\n', '\t' and '\r'.
	Exact bool
}

const namePrefix = "use_"

// registry lists strategies in report order. The first four are the default set.
var registry = []Strategy{
	{Name: "use_branches", Count: ascii.CountBranch, Exact: true},
	{Name: "use_table", Count: ascii.CountTable, Exact: true},
	{Name: "use_switch", Count: ascii.CountSwitch, Exact: true},
	{Name: "use_crt", Count: ascii.CountPlatform},
	{Name: "use_bitset", Count: ascii.Whitespace.Count, Exact: true},
	{Name: "use_swar", Count: ascii.CountSpaceSWAR[string], Exact: true},
	{Name: "use_bytealg", Count: countBytealg, Exact: true},
}

const defaultCount = 4

func countBytealg(s string) int {
	return bytealg.CountAny(s, " \n\t\r")
}

// Strategies returns every registered strategy.
func Strategies() []Strategy {
	out := make([]Strategy, len(registry))
	copy(out, registry)
	return out
}

// Default returns the four strategies run when nothing else is selected.
func Default() []Strategy {
	out := make([]Strategy, defaultCount)
	copy(out, registry[:defaultCount])
	return out
}

// Lookup finds a strategy by name; the "use_" prefix is optional.
func Lookup(name string) (Strategy, error) {
	full := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(full, namePrefix) {
		full = namePrefix + full
	}
	for _, s := range registry {
		if s.Name == full {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// Select resolves names into strategies, preserving order and dropping
// duplicates. "all" expands to every strategy; an empty list means Default.
func Select(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Default(), nil
	}

	var out []Strategy
	seen := make(map[string]bool)
	add := func(s Strategy) {
		if !seen[s.Name] {
			seen[s.Name] = true
			out = append(out, s)
		}
	}

	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, s := range registry {
				add(s)
			}
			continue
		}
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		add(s)
	}
	return out, nil
}
