// internal/config/config.go
package config

type Config struct {
	Printer   PrinterConfig   `yaml:"printer"`
	KeepAlive KeepAliveConfig `yaml:"keepalive"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Status    StatusConfig    `yaml:"status"`
}

// ---- PRINTER ----

type PrinterConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
}

// ---- KEEP-ALIVE ----

type KeepAliveConfig struct {
	// Payload is the keep-alive command as a hex string.
	// Empty means the SBPL default (1b 40 1b 41 1b 5a).
	Payload string `yaml:"payload"`

	IntervalMs       int `yaml:"interval_ms"`
	ConnectTimeoutMs int `yaml:"connect_timeout_ms"`
	ReadTimeoutMs    int `yaml:"read_timeout_ms"`

	MaxFailures int `yaml:"max_failures"`

	// StopOnMaxFailures stops the loop at the failure threshold
	// instead of retrying forever.
	StopOnMaxFailures bool `yaml:"stop_on_max_failures"`

	// StrictStartup makes a failed initial connectivity test fatal.
	StrictStartup bool `yaml:"strict_startup"`

	// Backoff enables the stepped retry delay (1x/2x/4x interval).
	Backoff bool `yaml:"backoff"`
}

// ---- DISCOVERY ----

type DiscoveryConfig struct {
	// Auto scans the candidate port list once at startup when the
	// configured port does not respond.
	Auto          bool `yaml:"auto"`
	PortTimeoutMs int  `yaml:"port_timeout_ms"`
}

// ---- STATUS ----

type StatusConfig struct {
	// Listen is the HTTP status listen address. Empty disables it.
	Listen string `yaml:"listen"`
}
