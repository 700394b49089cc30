// internal/discover/probe.go
package discover

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"time"
)

// Probe timeouts are deliberately short; the probe is advisory.
const (
	probeConnectTimeout = 3 * time.Second
	probeReadTimeout    = 1 * time.Second
)

// probeCommands are tried in order on fresh connections.
var probeCommands = [][]byte{
	{0x1b, 0x40, 0x1b, 0x41, 0x1b, 0x5a}, // SBPL keep-alive
	{0x1b, 0x40},                         // ESC @ (initialize)
	{0x0d, 0x0a},                         // bare line terminator
}

// Probe reports whether a port looks like it accepts printer commands.
//
// Success means some command either drew a response or was sent cleanly
// with no response inside the read timeout. This cannot distinguish a
// real command channel from a port that swallows arbitrary bytes, so
// callers must treat the result as a hint, never a gate.
func (s *Scanner) Probe(ctx context.Context, address string, port int) bool {
	addr := net.JoinHostPort(address, strconv.Itoa(port))

	for i, cmd := range probeCommands {
		ok, err := s.probeOnce(ctx, addr, cmd)
		if err != nil {
			s.log.Debug().Err(err).Int("port", port).Int("command", i+1).Msg("probe attempt failed")
			continue
		}
		if ok {
			return true
		}
	}

	return false
}

func (s *Scanner) probeOnce(ctx context.Context, addr string, cmd []byte) (bool, error) {
	conn, err := s.dial(ctx, addr, probeConnectTimeout)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(probeConnectTimeout))
	if _, err := conn.Write(cmd); err != nil {
		return false, err
	}

	_ = conn.SetReadDeadline(time.Now().Add(probeReadTimeout))
	buf := make([]byte, 1024)
	if _, err := conn.Read(buf); err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			// Sent cleanly, no response expected.
			return true, nil
		}
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}

	// Got an acknowledgment.
	return true, nil
}
