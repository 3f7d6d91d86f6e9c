package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/connect4-solver/internal/api"
	"github.com/mcoot/connect4-solver/internal/factory"
)

// writeTimeoutMargin is added to the solve timeout so a timed out solve can
// still write its 504 response
const writeTimeoutMargin = 10 * time.Second

// serverConfig is everything the server reads from its environment
type serverConfig struct {
	Server       api.ServerConfig
	LogLevel     slog.Level
	SolveTimeout time.Duration
}

// loadConfig reads PORT, HOST, LOG_LEVEL and SOLVE_TIMEOUT through getenv
func loadConfig(getenv func(string) string) (serverConfig, error) {
	cfg := serverConfig{
		Server:       api.DefaultServerConfig(),
		LogLevel:     slog.LevelInfo,
		SolveTimeout: factory.DefaultSolveTimeout,
	}

	if v := getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Server.Port = port
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	if v := getenv("SOLVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SOLVE_TIMEOUT %q: must be a positive duration", v)
		}
		cfg.SolveTimeout = d
	}

	cfg.Server.WriteTimeout = max(cfg.Server.WriteTimeout, cfg.SolveTimeout+writeTimeoutMargin)
	return cfg, nil
}
