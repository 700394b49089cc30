// internal/status/snapshot.go
package status

import "time"

// Snapshot is a point-in-time view of the keep-alive loop.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Running bool
	Address string
	Port    int

	// LastSuccess is zero when no keep-alive has succeeded yet.
	LastSuccess time.Time

	ConsecutiveFailures int
	MaxFailures         int

	// StartedAt is zero before the first run.
	StartedAt time.Time
	Uptime    time.Duration
}
