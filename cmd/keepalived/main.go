// cmd/keepalived/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/tamzrod/printer-keepalive/internal/config"
	"github.com/tamzrod/printer-keepalive/internal/discover"
	"github.com/tamzrod/printer-keepalive/internal/engine"
	"github.com/tamzrod/printer-keepalive/internal/web"
)

func main() {
	var cfgPath = pflag.String("config", "", "path to yaml config file")
	var address = pflag.String("address", "", "printer address (overrides config)")
	var port = pflag.Int("port", 0, "printer port (overrides config)")
	var listen = pflag.String("status-listen", "", "http status listen address (overrides config)")
	var doDiscover = pflag.Bool("discover", false, "scan candidate ports, probe the open ones, then exit")
	var strict = pflag.Bool("strict", false, "fail startup when the printer is unreachable")
	var debug = pflag.Bool("debug", false, "enable debug logging")

	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if !*debug {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	// --------------------
	// Load + validate config
	// --------------------

	var cfg config.Config
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
	}

	if *address != "" {
		cfg.Printer.Address = *address
	}
	if *port != 0 {
		cfg.Printer.Port = *port
	}
	if *listen != "" {
		cfg.Status.Listen = *listen
	}
	if *strict {
		cfg.KeepAlive.StrictStartup = true
	}

	if err := config.Validate(&cfg); err != nil {
		log.Fatal().Err(err).Msg("config validation failed")
	}
	config.Normalize(&cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scanner := discover.New(
		time.Duration(cfg.Discovery.PortTimeoutMs)*time.Millisecond,
		nil,
		log.Logger,
	)

	// --------------------
	// Discovery-only mode
	// --------------------

	if *doDiscover {
		runDiscovery(ctx, scanner, cfg.Printer.Address)
		return
	}

	// --------------------
	// Build the engine
	// --------------------

	ecfg := engineConfig(cfg)

	eng := lo.Must(engine.New(ecfg, nil, log.Logger))

	// One-shot auto-discovery when the configured port is dead.
	if cfg.Discovery.Auto {
		if err := eng.TestConnection(); err != nil {
			log.Warn().Err(err).Int("port", ecfg.Port).Msg("configured port not responding, scanning")
			if open := scanner.Scan(ctx, cfg.Printer.Address); len(open) > 0 {
				ecfg.Port = open[0]
				log.Info().Int("port", ecfg.Port).Msg("auto-discovered printer port")
				eng = lo.Must(engine.New(ecfg, nil, log.Logger))
			}
		}
	}

	// --------------------
	// Status surface (optional)
	// --------------------

	if cfg.Status.Listen != "" {
		server := web.New(eng)
		go func() {
			log.Info().Str("listen", cfg.Status.Listen).Msg("status surface listening")
			if err := http.ListenAndServe(cfg.Status.Listen, server); err != nil {
				log.Error().Err(err).Msg("status surface failed")
			}
		}()
	}

	// --------------------
	// Run until stopped
	// --------------------

	if err := eng.Run(ctx); err != nil {
		if errors.Is(err, engine.ErrStartupUnreachable) {
			log.Error().Err(err).Msg("startup failed")
			os.Exit(1)
		}
		log.Error().Err(err).Msg("keep-alive terminated")
		os.Exit(1)
	}
}

// runDiscovery scans the candidate list and probes each open port so an
// operator can pick one. Selection itself stays flag-driven.
func runDiscovery(ctx context.Context, scanner *discover.Scanner, address string) {
	open := scanner.Scan(ctx, address)
	if len(open) == 0 {
		log.Error().Str("address", address).Msg("no open ports found; check the address, power and cabling")
		os.Exit(1)
	}

	for _, p := range open {
		if scanner.Probe(ctx, address, p) {
			log.Info().Int("port", p).Msg("port answers printer commands")
		} else {
			log.Info().Int("port", p).Msg("port open but silent")
		}
	}
}

func engineConfig(cfg config.Config) engine.Config {
	var backoff *engine.Backoff
	if cfg.KeepAlive.Backoff {
		backoff = engine.DefaultBackoff()
	}

	return engine.Config{
		Address:           cfg.Printer.Address,
		Port:              cfg.Printer.Port,
		Command:           lo.Must(cfg.KeepAlive.Command()),
		Interval:          time.Duration(cfg.KeepAlive.IntervalMs) * time.Millisecond,
		ConnectTimeout:    time.Duration(cfg.KeepAlive.ConnectTimeoutMs) * time.Millisecond,
		ReadTimeout:       time.Duration(cfg.KeepAlive.ReadTimeoutMs) * time.Millisecond,
		MaxFailures:       cfg.KeepAlive.MaxFailures,
		StopOnMaxFailures: cfg.KeepAlive.StopOnMaxFailures,
		StrictStartup:     cfg.KeepAlive.StrictStartup,
		Backoff:           backoff,
	}
}
