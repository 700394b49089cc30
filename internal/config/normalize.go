// internal/config/normalize.go
package config

// Reference defaults. The payload is the SBPL keep-alive sequence
// (ESC @, ESC A, ESC Z).
const (
	DefaultPort             = 9100
	DefaultPayload          = "1b401b411b5a"
	DefaultIntervalMs       = 30000
	DefaultConnectTimeoutMs = 5000
	DefaultReadTimeoutMs    = 2000
	DefaultMaxFailures      = 10
	DefaultPortTimeoutMs    = 2000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Printer.Port == 0 {
		cfg.Printer.Port = DefaultPort
	}
	if cfg.KeepAlive.Payload == "" {
		cfg.KeepAlive.Payload = DefaultPayload
	}
	if cfg.KeepAlive.IntervalMs == 0 {
		cfg.KeepAlive.IntervalMs = DefaultIntervalMs
	}
	if cfg.KeepAlive.ConnectTimeoutMs == 0 {
		cfg.KeepAlive.ConnectTimeoutMs = DefaultConnectTimeoutMs
	}
	if cfg.KeepAlive.ReadTimeoutMs == 0 {
		cfg.KeepAlive.ReadTimeoutMs = DefaultReadTimeoutMs
	}
	if cfg.KeepAlive.MaxFailures == 0 {
		cfg.KeepAlive.MaxFailures = DefaultMaxFailures
	}
	if cfg.Discovery.PortTimeoutMs == 0 {
		cfg.Discovery.PortTimeoutMs = DefaultPortTimeoutMs
	}
}
