// internal/config/load.go
package config

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/trim21/errgo"
	"gopkg.in/yaml.v3"
)

// Load reads and decodes a YAML config file.
// It performs no validation and no normalization.
func Load(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errgo.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	return cfg, nil
}

// Command decodes the configured keep-alive payload.
// Whitespace separators are allowed ("1b 40 1b 41 1b 5a").
func (k KeepAliveConfig) Command() ([]byte, error) {
	s := strings.Join(strings.Fields(k.Payload), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errgo.Wrap(err, "payload is not valid hex")
	}
	return b, nil
}
