// internal/engine/backoff.go
package engine

import "time"

// Step maps a consecutive-failure ceiling to an interval multiplier.
type Step struct {
	Failures   int
	Multiplier int
}

// Backoff is a stepped delay policy. The multiplier is a function of
// the CURRENT failure count only, recomputed every tick, so a single
// success collapses the delay back to the base interval.
type Backoff struct {
	steps []Step
	final int
}

// NewBackoff builds a policy from ordered steps plus a final multiplier
// applied past the last ceiling.
func NewBackoff(final int, steps ...Step) *Backoff {
	return &Backoff{steps: steps, final: final}
}

// DefaultBackoff matches the reference schedule:
// 1x up to 3 failures, 2x up to 6, 4x beyond.
func DefaultBackoff() *Backoff {
	return NewBackoff(4, Step{Failures: 3, Multiplier: 1}, Step{Failures: 6, Multiplier: 2})
}

// Delay computes the wait before the next tick.
// A nil policy means a constant interval.
func (b *Backoff) Delay(base time.Duration, failures int) time.Duration {
	if b == nil {
		return base
	}
	for _, s := range b.steps {
		if failures <= s.Failures {
			return base * time.Duration(s.Multiplier)
		}
	}
	return base * time.Duration(b.final)
}
