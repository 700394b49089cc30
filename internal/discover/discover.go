// internal/discover/discover.go
package discover

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// CandidatePorts is the fixed scan order for printer-class devices:
// raw print first, then IPP/LPD, then management fallbacks.
var CandidatePorts = []int{9100, 631, 515, 721, 9101, 9102, 9103, 23, 80, 443}

// DialFunc opens one TCP connection. ONE attempt per call.
type DialFunc func(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error)

// Scanner tests candidate ports for TCP reachability.
type Scanner struct {
	// Ports overrides the candidate list. Nil means CandidatePorts.
	Ports []int

	timeout time.Duration
	dial    DialFunc
	log     zerolog.Logger
}

// New creates a scanner with a per-port connect timeout.
// A nil dial uses plain TCP.
func New(timeout time.Duration, dial DialFunc, log zerolog.Logger) *Scanner {
	if dial == nil {
		dial = func(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error) {
			d := net.Dialer{Timeout: timeout}
			return d.DialContext(ctx, "tcp", addr)
		}
	}
	return &Scanner{
		timeout: timeout,
		dial:    dial,
		log:     log,
	}
}

// Scan tests each candidate port and returns the open ones in
// candidate-list order. A refused or timed-out connect marks the port
// closed and scanning proceeds; Scan never fails.
func (s *Scanner) Scan(ctx context.Context, address string) []int {
	ports := s.Ports
	if ports == nil {
		ports = CandidatePorts
	}

	s.log.Info().Str("address", address).Msg("scanning for open printer ports")

	var open []int
	for _, port := range ports {
		if ctx.Err() != nil {
			return open
		}

		addr := net.JoinHostPort(address, strconv.Itoa(port))
		conn, err := s.dial(ctx, addr, s.timeout)
		if err != nil {
			s.log.Debug().Int("port", port).Msg("closed")
			continue
		}
		_ = conn.Close()

		s.log.Info().Int("port", port).Msg("open")
		open = append(open, port)
	}

	return open
}
