// internal/status/constants.go
package status

// Health classifies a snapshot for operators and for the /healthz probe.

type Health string

// HealthUnknown represents a boot state with no evidence either way.
const HealthUnknown Health = "unknown"

// HealthOK represents a target that answered the most recent keep-alive.
const HealthOK Health = "ok"

// HealthDegraded represents one or more consecutive failures below the
// escalation threshold.
const HealthDegraded Health = "degraded"

// HealthDown represents consecutive failures at or past the threshold.
const HealthDown Health = "down"
