package bench

import (
	"errors"
	"fmt"
)

// ErrCountMismatch is returned when a strategy reports an unexpected count.
var ErrCountMismatch = errors.New("bench: strategies disagree")

// CrossCheck verifies every result against the sample's expected count.
// Exact strategies are always checked; the others only when the sample
// holds no bytes on which they are known to differ.
func CrossCheck(res SampleResult, strategies []Strategy) error {
	exact := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		exact[s.Name] = s.Exact
	}

	var errs []error
	for _, r := range res.Results {
		if !exact[r.Strategy] && res.Ambiguous {
			continue
		}
		if r.Count != res.Expected {
			errs = append(errs, fmt.Errorf("%w on %q: %s found %d, want %d",
				ErrCountMismatch, res.Title, r.Strategy, r.Count, res.Expected))
		}
	}
	return errors.Join(errs...)
}
