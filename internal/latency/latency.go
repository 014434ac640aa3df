// Package latency simulates network delay for the mock API. Handlers
// declare a base delay per endpoint; the configured policy decides how
// much of it is actually spent.
package latency

import (
	"context"
	"time"
)

// Policy is the artificial delay applied before a response is produced.
type Policy interface {
	// Wait blocks for the policy's rendition of the base delay. It
	// returns the context error if the caller goes away first.
	Wait(ctx context.Context, base time.Duration) error
}

// Fixed waits for the base delay multiplied by Scale.
type Fixed struct {
	Scale float64
}

func (f Fixed) Wait(ctx context.Context, base time.Duration) error {
	d := time.Duration(float64(base) * f.Scale)
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None skips the delay entirely. Used in tests.
type None struct{}

func (None) Wait(context.Context, time.Duration) error { return nil }

// FromConfig maps the latency config onto a policy.
func FromConfig(enabled bool, scale float64) Policy {
	if !enabled {
		return None{}
	}
	if scale <= 0 {
		scale = 1
	}
	return Fixed{Scale: scale}
}
