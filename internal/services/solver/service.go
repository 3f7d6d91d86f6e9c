package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/connect4-solver/internal/dependencies/clock"
	"github.com/mcoot/connect4-solver/internal/model"
)

// ErrSolveTimeout is returned when a solve does not finish before its deadline
var ErrSolveTimeout = errors.New("solve deadline exceeded")

// Service solves positions on behalf of the API and CLI.
//
// Every request gets its own Solver, so a Service can be shared between
// goroutines. The search runs on its own goroutine. When the context is
// done the caller gets an error straight away and the search is told to
// stop, so it unwinds shortly after.
type Service struct {
	clock    clock.Clock
	timeout  time.Duration
	logger   *slog.Logger
	inFlight atomic.Int64
}

// NewService creates a new solver Service. A zero timeout means solves are
// bounded only by the caller's context.
func NewService(clk clock.Clock, timeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		clock:   clk,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "solver-service")),
	}
}

// Solve parses a move sequence and solves the resulting position
func (s *Service) Solve(ctx context.Context, seq string, mode string) (*model.SolveResult, error) {
	pos, err := model.PositionFromMoves(seq)
	if err != nil {
		return nil, err
	}
	return s.SolvePosition(ctx, pos, seq, mode)
}

// SolvePosition solves a position. seq is only used to label the result.
func (s *Service) SolvePosition(ctx context.Context, pos model.Position, seq string, mode string) (*model.SolveResult, error) {
	mode, err := model.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	slv := New()
	result, err := runWithDeadline(ctx, &s.inFlight, slv, func() *model.SolveResult {
		start := s.clock.Now()
		score := slv.Solve(pos, model.IsWeak(mode))
		return &model.SolveResult{
			Sequence: seq,
			Mode:     mode,
			Score:    score,
			Outcome:  model.OutcomeOf(score),
			Nodes:    slv.NodeCount(),
			Elapsed:  s.clock.Since(start),
		}
	})
	if err != nil {
		s.logger.Warn("solve abandoned",
			slog.String("sequence", seq),
			slog.String("mode", mode),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Debug("position solved",
		slog.String("sequence", seq),
		slog.String("mode", mode),
		slog.Int("score", result.Score),
		slog.Uint64("nodes", result.Nodes),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// AnalyzeMoves parses a move sequence and scores every playable column
func (s *Service) AnalyzeMoves(ctx context.Context, seq string, mode string) (*model.MoveAnalysis, error) {
	pos, err := model.PositionFromMoves(seq)
	if err != nil {
		return nil, err
	}
	return s.AnalyzePosition(ctx, pos, seq, mode)
}

// AnalyzePosition scores every playable column of a position from the
// point of view of the player to move. A column that wins immediately
// scores the win without being searched.
func (s *Service) AnalyzePosition(ctx context.Context, pos model.Position, seq string, mode string) (*model.MoveAnalysis, error) {
	mode, err := model.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	slv := New()
	analysis, err := runWithDeadline(ctx, &s.inFlight, slv, func() *model.MoveAnalysis {
		start := s.clock.Now()
		moves := lo.Map(pos.PlayableColumns(), func(col int, _ int) model.MoveScore {
			if pos.IsWinningMove(col) {
				return model.MoveScore{Column: col, Score: model.WinScore(pos.MoveCount()), Winning: true}
			}
			child := pos
			child.Play(col)
			score := -slv.Solve(child, model.IsWeak(mode))
			return model.MoveScore{Column: col, Score: score, Nodes: slv.NodeCount()}
		})
		return &model.MoveAnalysis{
			Sequence: seq,
			Mode:     mode,
			Moves:    moves,
			Best:     bestColumns(moves),
			Elapsed:  s.clock.Since(start),
		}
	})
	if err != nil {
		s.logger.Warn("analysis abandoned",
			slog.String("sequence", seq),
			slog.String("mode", mode),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Debug("moves analyzed",
		slog.String("sequence", seq),
		slog.String("mode", mode),
		slog.Any("best", analysis.Best),
		slog.Duration("elapsed", analysis.Elapsed),
	)
	return analysis, nil
}

func bestColumns(moves []model.MoveScore) []int {
	if len(moves) == 0 {
		return []int{}
	}
	best := lo.MaxBy(moves, func(a, b model.MoveScore) bool {
		return a.Score > b.Score
	})
	return lo.FilterMap(moves, func(m model.MoveScore, _ int) (int, bool) {
		return m.Column, m.Score == best.Score
	})
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// InFlight returns the number of searches still running, including those
// whose caller has already given up on them
func (s *Service) InFlight() int64 {
	return s.inFlight.Load()
}

// runWithDeadline runs work on its own goroutine and waits for it or for
// the context, whichever comes first. When the context wins, slv is stopped.
// inFlight counts the goroutine until work returns.
func runWithDeadline[T any](ctx context.Context, inFlight *atomic.Int64, slv *Solver, work func() T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, deadlineError(err)
	}

	done := make(chan T, 1)
	inFlight.Add(1)
	go func() {
		result := work()
		inFlight.Add(-1)
		done <- result
	}()

	select {
	case result := <-done:
		return result, nil
	case <-ctx.Done():
		slv.Stop()
		return zero, deadlineError(ctx.Err())
	}
}

func deadlineError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrSolveTimeout, err)
	}
	return err
}
