// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/trim21/errgo"
	"go.uber.org/atomic"

	"github.com/tamzrod/printer-keepalive/internal/status"
)

// Engine owns the keep-alive loop for exactly one target.
// Observable state has ONE writer (the loop) and any number of readers.
type Engine struct {
	cfg  Config
	dial DialFunc
	log  zerolog.Logger

	running   atomic.Bool
	failures  atomic.Uint32
	lastOK    atomic.Time
	startedAt atomic.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// New creates an engine with immutable config.
// A nil dial uses plain TCP.
func New(cfg Config, dial DialFunc, log zerolog.Logger) (*Engine, error) {
	if cfg.Address == "" {
		return nil, errors.New("engine: address required")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, errors.New("engine: port out of range")
	}
	if len(cfg.Command) == 0 {
		return nil, errors.New("engine: keep-alive command required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("engine: interval must be > 0")
	}
	if cfg.ConnectTimeout <= 0 {
		return nil, errors.New("engine: connect timeout must be > 0")
	}
	if cfg.MaxFailures <= 0 {
		return nil, errors.New("engine: max failures must be > 0")
	}

	if dial == nil {
		dial = func(addr string, timeout time.Duration) (net.Conn, error) {
			return net.DialTimeout("tcp", addr, timeout)
		}
	}

	return &Engine{
		cfg:  cfg,
		dial: dial,
		log:  log,
		stop: make(chan struct{}),
	}, nil
}

// TestConnection checks plain TCP reachability of the target.
// No data is sent.
func (e *Engine) TestConnection() error {
	conn, err := e.dial(e.cfg.target(), e.cfg.ConnectTimeout)
	if err != nil {
		return err
	}
	return conn.Close()
}

// Stop requests loop termination. Safe from any goroutine, idempotent.
// The in-flight network operation is left to finish or time out.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.log.Info().Msg("stop requested")
		close(e.stop)
	})
}

// Status returns a snapshot safe to read concurrently with the loop.
// Fields are independently atomic; a torn read across fields is
// harmless because each field is monotonic on its own.
func (e *Engine) Status() status.Snapshot {
	var uptime time.Duration
	startedAt := e.startedAt.Load()
	if !startedAt.IsZero() {
		uptime = time.Since(startedAt)
	}

	return status.Snapshot{
		Running:             e.running.Load(),
		Address:             e.cfg.Address,
		Port:                e.cfg.Port,
		LastSuccess:         e.lastOK.Load(),
		ConsecutiveFailures: int(e.failures.Load()),
		MaxFailures:         e.cfg.MaxFailures,
		StartedAt:           startedAt,
		Uptime:              uptime,
	}
}

// tick performs exactly one keep-alive cycle: connect, send the full
// command, optionally wait for an acknowledgment. The connection is
// closed on every path.
func (e *Engine) tick() error {
	conn, err := e.dial(e.cfg.target(), e.cfg.ConnectTimeout)
	if err != nil {
		return errgo.Wrap(err, "connect")
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(e.cfg.ConnectTimeout))
	n, err := conn.Write(e.cfg.Command)
	if err != nil {
		return errgo.Wrap(err, "send")
	}
	if n != len(e.cfg.Command) {
		return fmt.Errorf("send: short write %d of %d bytes", n, len(e.cfg.Command))
	}

	if e.cfg.ReadTimeout > 0 {
		// Some printers ack the command, most stay silent.
		// A read timeout or a clean close is NOT a failure.
		_ = conn.SetReadDeadline(time.Now().Add(e.cfg.ReadTimeout))
		buf := make([]byte, 1024)
		if _, err := conn.Read(buf); err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errgo.Wrap(err, "read")
		}
	}

	return nil
}

// tickSafe shields the loop from programming errors inside a tick.
func (e *Engine) tickSafe() (err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick panic: %v", r)
			panicked = true
		}
	}()
	return e.tick(), false
}
