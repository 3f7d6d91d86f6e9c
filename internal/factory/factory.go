package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/connect4-solver/internal/dependencies/clock"
	"github.com/mcoot/connect4-solver/internal/dependencies/random"
	"github.com/mcoot/connect4-solver/internal/services/batch"
	"github.com/mcoot/connect4-solver/internal/services/generator"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// DefaultSolveTimeout bounds a single solve when Config.SolveTimeout is zero
const DefaultSolveTimeout = 30 * time.Second

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SolverService    *solver.Service
	BatchRunner      *batch.Runner
	GeneratorService *generator.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// SolveTimeout bounds each solve made through the solver service
	// If zero, DefaultSolveTimeout is used
	SolveTimeout time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	timeout := cfg.SolveTimeout
	switch {
	case timeout < 0:
		return nil, errors.New("invalid SolveTimeout: must not be negative")
	case timeout == 0:
		timeout = DefaultSolveTimeout
	}

	return newWithDependencies(clock.New(), random.New(), timeout, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, timeout time.Duration, logger *slog.Logger) *App {
	return &App{
		Clock:            clk,
		Random:           rnd,
		SolverService:    solver.NewService(clk, timeout, logger),
		BatchRunner:      batch.NewRunner(clk, logger),
		GeneratorService: generator.NewService(rnd, logger),
	}
}
