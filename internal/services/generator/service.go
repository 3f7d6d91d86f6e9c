package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/connect4-solver/internal/dependencies/random"
	"github.com/mcoot/connect4-solver/internal/model"
)

// maxAttempts bounds how often a single sequence is restarted after running
// into a position where every playable column would win
const maxAttempts = 100

var (
	ErrInvalidCount  = errors.New("count must be at least 1")
	ErrInvalidLength = fmt.Errorf("moves must be between 0 and %d", model.Range)
	ErrDeadEnd       = errors.New("could not extend sequence without completing four in a row")
)

// Service generates random move sequences for benchmarking the solver.
// Every generated sequence is valid input for the batch harness: no move
// fills an already full column and no move completes four in a row.
type Service struct {
	random random.Random
	logger *slog.Logger
}

// NewService creates a new generator Service
func NewService(rng random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rng,
		logger: logger.With(slog.String("component", "generator-service")),
	}
}

// Sequences generates count sequences of exactly moves moves each
func (s *Service) Sequences(count, moves int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if moves < 0 || moves > model.Range {
		return nil, ErrInvalidLength
	}

	sequences := make([]string, 0, count)
	for range count {
		seq, err := s.sequence(moves)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, seq)
	}

	s.logger.Debug("sequences generated",
		slog.Int("count", count),
		slog.Int("moves", moves),
	)
	return sequences, nil
}

func (s *Service) sequence(moves int) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if seq, ok := s.tryPlay(moves); ok {
			return seq, nil
		}
		s.logger.Debug("sequence hit a dead end, restarting", slog.Int("attempt", attempt))
	}
	return "", fmt.Errorf("%w after %d attempts", ErrDeadEnd, maxAttempts)
}

func (s *Service) tryPlay(moves int) (string, bool) {
	pos := model.NewPosition()
	var b strings.Builder
	for range moves {
		candidates := lo.Reject(pos.PlayableColumns(), func(col int, _ int) bool {
			return pos.IsWinningMove(col)
		})
		if len(candidates) == 0 {
			return "", false
		}
		col := candidates[s.random.Intn(len(candidates))]
		pos.Play(col)
		b.WriteByte(byte('1' + col))
	}
	return b.String(), true
}
