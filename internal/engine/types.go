// internal/engine/types.go
package engine

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// DialFunc opens one TCP connection. ONE attempt per call.
// The engine never retries inside a dial; retry cadence is loop policy.
type DialFunc func(addr string, timeout time.Duration) (net.Conn, error)

// Config is the immutable runtime config for one engine run.
type Config struct {
	Address string
	Port    int

	// Command is the keep-alive byte sequence sent on every tick.
	Command []byte

	Interval       time.Duration
	ConnectTimeout time.Duration

	// ReadTimeout bounds the optional acknowledgment read.
	// Zero skips the read entirely.
	ReadTimeout time.Duration

	// MaxFailures is the escalation threshold.
	MaxFailures int

	// StopOnMaxFailures stops the loop at the threshold instead of
	// retrying forever.
	StopOnMaxFailures bool

	// StrictStartup makes a failed initial connectivity test fatal.
	StrictStartup bool

	// Backoff stretches the tick delay under sustained failure.
	// Nil means a constant interval.
	Backoff *Backoff
}

func (c Config) target() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// ErrStartupUnreachable is returned by Run in strict mode when the
// initial connectivity test fails.
var ErrStartupUnreachable = errors.New("engine: target unreachable at startup")

// ErrMaxFailures is returned by Run when StopOnMaxFailures is set and
// the failure threshold is reached.
var ErrMaxFailures = errors.New("engine: max consecutive failures reached")
