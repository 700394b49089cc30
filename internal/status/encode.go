// internal/status/encode.go
package status

import (
	"encoding/json"
	"net"
	"strconv"
	"time"
)

// Health derives the health class from the snapshot.
// No IO. No side effects.
func (s Snapshot) Health() Health {
	switch {
	case !s.Running:
		return HealthUnknown
	case s.ConsecutiveFailures == 0 && s.LastSuccess.IsZero():
		return HealthUnknown
	case s.ConsecutiveFailures == 0:
		return HealthOK
	case s.MaxFailures > 0 && s.ConsecutiveFailures >= s.MaxFailures:
		return HealthDown
	default:
		return HealthDegraded
	}
}

// MarshalJSON renders the snapshot for the HTTP status surface.
// last_success is null until the first successful keep-alive.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var last *string
	if !s.LastSuccess.IsZero() {
		v := s.LastSuccess.Format(time.RFC3339)
		last = &v
	}

	return json.Marshal(struct {
		Running             bool    `json:"running"`
		Target              string  `json:"target"`
		Health              Health  `json:"health"`
		LastSuccess         *string `json:"last_success"`
		ConsecutiveFailures int     `json:"consecutive_failures"`
		UptimeSeconds       int64   `json:"uptime_seconds"`
	}{
		Running:             s.Running,
		Target:              net.JoinHostPort(s.Address, strconv.Itoa(s.Port)),
		Health:              s.Health(),
		LastSuccess:         last,
		ConsecutiveFailures: s.ConsecutiveFailures,
		UptimeSeconds:       int64(s.Uptime / time.Second),
	})
}
