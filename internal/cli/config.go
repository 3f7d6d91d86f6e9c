package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("C4SOLVE_SERVER", "http://localhost:8080"),
		Output:    FormatText,
		Verbose:   false,
	}
}

// Validate checks the flag values that cobra cannot check itself
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON}, c.Output) {
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, FormatText, FormatJSON)
	}
	return nil
}

// Logger returns the CLI logger: warnings and errors only, or everything
// down to debug when verbose
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
