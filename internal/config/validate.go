// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// PRINTER TARGET
	// ------------------------------------------------------------

	if cfg.Printer.Address == "" {
		return fmt.Errorf("printer: address is required")
	}

	// Port 0 means "use the default".
	if cfg.Printer.Port < 0 || cfg.Printer.Port > 65535 {
		return fmt.Errorf("printer: port %d out of range", cfg.Printer.Port)
	}

	// ------------------------------------------------------------
	// KEEP-ALIVE LOOP
	// ------------------------------------------------------------

	if cfg.KeepAlive.IntervalMs < 0 {
		return fmt.Errorf("keepalive: interval_ms must be >= 0")
	}
	if cfg.KeepAlive.ConnectTimeoutMs < 0 {
		return fmt.Errorf("keepalive: connect_timeout_ms must be >= 0")
	}
	if cfg.KeepAlive.ReadTimeoutMs < 0 {
		return fmt.Errorf("keepalive: read_timeout_ms must be >= 0")
	}
	if cfg.KeepAlive.MaxFailures < 0 {
		return fmt.Errorf("keepalive: max_failures must be >= 0")
	}

	if cfg.KeepAlive.Payload != "" {
		if _, err := cfg.KeepAlive.Command(); err != nil {
			return fmt.Errorf("keepalive: %v", err)
		}
	}

	// ------------------------------------------------------------
	// DISCOVERY
	// ------------------------------------------------------------

	if cfg.Discovery.PortTimeoutMs < 0 {
		return fmt.Errorf("discovery: port_timeout_ms must be >= 0")
	}

	return nil
}
