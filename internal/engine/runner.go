// internal/engine/runner.go
package engine

import (
	"context"
	"fmt"
	"time"
)

// panicPause is the fixed cool-down after an unanticipated tick error.
const panicPause = 5 * time.Second

// Run drives the keep-alive loop until the context is canceled, Stop is
// called, or a configured terminal condition is hit. It blocks.
//
// Startup performs one connectivity test. In strict mode a failed test
// is terminal; otherwise it is logged and the loop proceeds on its
// normal cadence.
func (e *Engine) Run(ctx context.Context) error {
	e.startedAt.Store(time.Now())
	e.log.Info().Str("target", e.cfg.target()).Msg("starting keep-alive")

	if err := e.TestConnection(); err != nil {
		if e.cfg.StrictStartup {
			e.log.Error().Err(err).Msg("initial connection test failed")
			return fmt.Errorf("%w: %v", ErrStartupUnreachable, err)
		}
		e.log.Warn().Err(err).Msg("initial connection test failed, will keep trying")
	}

	e.running.Store(true)
	defer func() {
		e.running.Store(false)
		e.log.Info().Msg("keep-alive stopped")
	}()

	for {
		err, panicked := e.tickSafe()

		switch {
		case panicked:
			// Never let the loop die on a programming error.
			e.log.Error().Err(err).Msg("unexpected error in keep-alive tick")
			if stopped := e.wait(ctx, panicPause); stopped {
				return nil
			}
			continue

		case err == nil:
			e.failures.Store(0)
			e.lastOK.Store(time.Now())
			e.log.Debug().Msg("keep-alive sent")

		default:
			n := e.failures.Add(1)
			e.log.Warn().Err(err).Uint32("consecutive_failures", n).Msg("keep-alive failed")

			if int(n) >= e.cfg.MaxFailures {
				if e.cfg.StopOnMaxFailures {
					e.log.Error().Int("max_failures", e.cfg.MaxFailures).Msg("max failures reached, stopping")
					return ErrMaxFailures
				}
				e.log.Error().Int("max_failures", e.cfg.MaxFailures).Msg("max failures reached, will keep trying")
			}
		}

		delay := e.cfg.Backoff.Delay(e.cfg.Interval, int(e.failures.Load()))
		if stopped := e.wait(ctx, delay); stopped {
			return nil
		}
	}
}

// wait blocks for d or until a stop arrives, whichever first.
// It reports whether the loop should terminate.
func (e *Engine) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		e.log.Info().Msg("context canceled")
		return true
	case <-e.stop:
		return true
	case <-t.C:
		return false
	}
}
