package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/connect4-solver/internal/api/response"
	"github.com/mcoot/connect4-solver/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Solve:
		o.printSolve(v)
	case response.Analysis:
		o.printAnalysis(v)
	case response.Position:
		o.printPosition(v)
	case response.Health:
		o.printHealth(v)
	case Sequences:
		o.printSequences(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Sequences is the output of the generate command
type Sequences struct {
	Moves     int      `json:"moves"`
	Sequences []string `json:"sequences"`
}

func (o *Output) printSolve(s response.Solve) {
	fmt.Fprintf(o.w, "Sequence: %s\n", displaySequence(s.Sequence))
	fmt.Fprintf(o.w, "Mode: %s\n", model.ModeDisplayName(s.Mode))
	fmt.Fprintf(o.w, "Score: %d (%s)\n", s.Score, s.Outcome)
	fmt.Fprintf(o.w, "Nodes: %d\n", s.Nodes)
	fmt.Fprintf(o.w, "Elapsed: %dus (%g nodes/us)\n", s.ElapsedUS, s.Throughput)
}

func (o *Output) printAnalysis(a response.Analysis) {
	fmt.Fprintf(o.w, "Sequence: %s\n", displaySequence(a.Sequence))
	fmt.Fprintf(o.w, "Mode: %s\n", model.ModeDisplayName(a.Mode))
	if len(a.Moves) == 0 {
		fmt.Fprintln(o.w, "No playable columns")
		return
	}

	fmt.Fprintln(o.w, "Moves:")
	for _, m := range a.Moves {
		marker := " "
		if lo.Contains(a.Best, m.Column) {
			marker = "*"
		}
		note := ""
		if m.Winning {
			note = ", wins immediately"
		}
		fmt.Fprintf(o.w, " %s column %d: %d (%s%s)\n", marker, m.Column, m.Score, m.Outcome, note)
	}
	fmt.Fprintf(o.w, "Best: %s\n", joinInts(a.Best))
}

func (o *Output) printPosition(p response.Position) {
	for _, row := range p.Board {
		fmt.Fprintf(o.w, "|%s|\n", row)
	}
	fmt.Fprintf(o.w, "+%s+\n", strings.Repeat("-", model.Width))
	fmt.Fprintf(o.w, " %s\n", joinDigits(model.Width))

	fmt.Fprintf(o.w, "Moves: %d\n", p.Moves)
	if p.Full {
		fmt.Fprintln(o.w, "Board is full")
	} else {
		fmt.Fprintf(o.w, "To move: %s\n", p.CurrentPlayer)
	}
	if len(p.WinningColumns) > 0 {
		fmt.Fprintf(o.w, "Winning columns: %s\n", joinInts(p.WinningColumns))
	}

	if p.Analysis != nil {
		fmt.Fprintln(o.w)
		o.printAnalysis(*p.Analysis)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

func (o *Output) printSequences(s Sequences) {
	for _, seq := range s.Sequences {
		fmt.Fprintln(o.w, seq)
	}
}

func displaySequence(seq string) string {
	if seq == "" {
		return "(empty board)"
	}
	return seq
}

func joinInts(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string {
		return fmt.Sprint(v)
	}), ", ")
}

func joinDigits(n int) string {
	return strings.Join(lo.Map(lo.RangeFrom(1, n), func(v int, _ int) string {
		return fmt.Sprint(v)
	}), "")
}
