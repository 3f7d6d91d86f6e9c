package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/connect4-solver/internal/dependencies/clock"
	"github.com/mcoot/connect4-solver/internal/model"
	"github.com/mcoot/connect4-solver/internal/services/solver"
)

// maxLineLength bounds how much of an input line is kept. No line that long
// is a valid sequence, so the rest is dropped and the diagnostic quotes the
// kept prefix.
const maxLineLength = 4096

// Stats summarises a batch run
type Stats struct {
	Lines   int
	Solved  int
	Invalid int
	Nodes   uint64
	Elapsed time.Duration
}

// Runner solves move sequences read one per line.
//
// For every valid line it writes
//
//	<sequence> <score> <nodes> <nodes per microsecond>
//
// to the output. For an invalid line it writes a diagnostic naming the line
// and the first invalid move to the diagnostic writer and an empty line to
// the output, so output lines stay aligned with input lines.
type Runner struct {
	clock  clock.Clock
	logger *slog.Logger
}

// NewRunner creates a new batch Runner
func NewRunner(clk clock.Clock, logger *slog.Logger) *Runner {
	return &Runner{
		clock:  clk,
		logger: logger.With(slog.String("component", "batch-runner")),
	}
}

// Run processes every line of in until EOF or until ctx is done. Malformed
// sequences are not errors; only I/O failures and cancellation are.
func (r *Runner) Run(ctx context.Context, in io.Reader, out, diag io.Writer, weak bool) (*Stats, error) {
	stats := &Stats{}
	slv := solver.New()

	reader := bufio.NewReader(in)
	for line := 1; ; line++ {
		raw, truncated, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Lines++

		seq := strings.TrimSuffix(raw, "\r")
		pos := model.NewPosition()
		if n := pos.PlaySequence(seq); n != len(seq) {
			stats.Invalid++
			quoted := seq
			if truncated {
				quoted += "..."
			}
			if _, err := fmt.Fprintf(diag, "Line %d: Invalid move %d \"%s\"\n", line, n+1, quoted); err != nil {
				return stats, fmt.Errorf("failed to write diagnostic: %w", err)
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return stats, fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}

		start := r.clock.Now()
		score := slv.Solve(pos, weak)
		result := model.SolveResult{
			Sequence: seq,
			Score:    score,
			Nodes:    slv.NodeCount(),
			Elapsed:  r.clock.Since(start),
		}
		stats.Solved++
		stats.Nodes += result.Nodes
		stats.Elapsed += result.Elapsed

		if _, err := fmt.Fprintln(out, FormatResult(result)); err != nil {
			return stats, fmt.Errorf("failed to write output: %w", err)
		}
	}

	r.logger.Info("batch complete",
		slog.Int("lines", stats.Lines),
		slog.Int("solved", stats.Solved),
		slog.Int("invalid", stats.Invalid),
		slog.Uint64("nodes", stats.Nodes),
		slog.Duration("elapsed", stats.Elapsed),
	)
	return stats, nil
}

// readLine returns the next line of r without its terminator. Anything past
// maxLineLength is read and discarded and reported as truncated. io.EOF is only
// returned when no line is left.
func readLine(r *bufio.Reader) (string, bool, error) {
	var buf []byte
	started, truncated := false, false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return string(buf), truncated, nil
			}
			return "", false, err
		}
		started = true

		if room := maxLineLength - len(buf); len(chunk) > room {
			chunk = chunk[:room]
			truncated = true
		}
		buf = append(buf, chunk...)
		if !isPrefix {
			return string(buf), truncated, nil
		}
	}
}

// FormatResult renders a result as a batch output line without the newline
func FormatResult(r model.SolveResult) string {
	return fmt.Sprintf("%s %d %d %s",
		r.Sequence,
		r.Score,
		r.Nodes,
		strconv.FormatFloat(r.Throughput(), 'g', 6, 64),
	)
}
