// internal/config/validate_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	var cfg Config
	cfg.Printer.Address = "192.168.1.27"
	cfg.Printer.Port = 9100
	return cfg
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Printer.Address = ""
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for missing address")
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Printer.Port = 70000
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for port out of range")
	}
}

func TestValidate_BadPayload(t *testing.T) {
	cfg := validConfig()
	cfg.KeepAlive.Payload = "zz"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for non-hex payload")
	}
}

func TestValidate_NegativeInterval(t *testing.T) {
	cfg := validConfig()
	cfg.KeepAlive.IntervalMs = -1
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for negative interval")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	var cfg Config
	cfg.Printer.Address = "192.168.1.27"

	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
	Normalize(&cfg)

	if cfg.Printer.Port != DefaultPort {
		t.Fatalf("port default: got %d", cfg.Printer.Port)
	}
	if cfg.KeepAlive.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval default: got %d", cfg.KeepAlive.IntervalMs)
	}
	if cfg.KeepAlive.MaxFailures != DefaultMaxFailures {
		t.Fatalf("max failures default: got %d", cfg.KeepAlive.MaxFailures)
	}

	cmd, err := cfg.KeepAlive.Command()
	if err != nil {
		t.Fatalf("Command() err=%v", err)
	}
	want := []byte{0x1b, 0x40, 0x1b, 0x41, 0x1b, 0x5a}
	if len(cmd) != len(want) {
		t.Fatalf("default payload: got %x", cmd)
	}
	for i := range want {
		if cmd[i] != want[i] {
			t.Fatalf("default payload: got %x", cmd)
		}
	}
}

func TestCommand_SpacedHex(t *testing.T) {
	k := KeepAliveConfig{Payload: "1b 40 1b 41 1b 5a"}
	cmd, err := k.Command()
	if err != nil {
		t.Fatalf("Command() err=%v", err)
	}
	if len(cmd) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(cmd))
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	raw := `
printer:
  address: 192.168.1.27
  port: 9100
keepalive:
  interval_ms: 10000
  max_failures: 5
  backoff: true
discovery:
  auto: true
status:
  listen: 127.0.0.1:8090
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}

	if cfg.Printer.Address != "192.168.1.27" {
		t.Fatalf("address: got %q", cfg.Printer.Address)
	}
	if cfg.KeepAlive.IntervalMs != 10000 {
		t.Fatalf("interval: got %d", cfg.KeepAlive.IntervalMs)
	}
	if !cfg.KeepAlive.Backoff {
		t.Fatalf("backoff flag not decoded")
	}
	if !cfg.Discovery.Auto {
		t.Fatalf("discovery.auto not decoded")
	}
	if cfg.Status.Listen != "127.0.0.1:8090" {
		t.Fatalf("status listen: got %q", cfg.Status.Listen)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
