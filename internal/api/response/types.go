package response

import (
	"github.com/samber/lo"

	"github.com/mcoot/connect4-solver/internal/model"
)

// Columns are 1-indexed in every response, matching move sequences.

// Solve is the response for a solved position
type Solve struct {
	Sequence   string  `json:"sequence"`
	Mode       string  `json:"mode"`
	Score      int     `json:"score"`
	Outcome    string  `json:"outcome"`
	Nodes      uint64  `json:"nodes"`
	ElapsedUS  int64   `json:"elapsed_us"`
	Throughput float64 `json:"nodes_per_us"`
}

// SolveFromModel converts a model.SolveResult
func SolveFromModel(r *model.SolveResult) Solve {
	return Solve{
		Sequence:   r.Sequence,
		Mode:       r.Mode,
		Score:      r.Score,
		Outcome:    string(r.Outcome),
		Nodes:      r.Nodes,
		ElapsedUS:  r.Elapsed.Microseconds(),
		Throughput: r.Throughput(),
	}
}

// MoveScore is the score of playing one column
type MoveScore struct {
	Column  int    `json:"column"`
	Score   int    `json:"score"`
	Outcome string `json:"outcome"`
	Winning bool   `json:"winning,omitempty"`
	Nodes   uint64 `json:"nodes"`
}

// Analysis is the response for a move analysis
type Analysis struct {
	Sequence  string      `json:"sequence"`
	Mode      string      `json:"mode"`
	Moves     []MoveScore `json:"moves"`
	Best      []int       `json:"best"`
	ElapsedUS int64       `json:"elapsed_us"`
}

// AnalysisFromModel converts a model.MoveAnalysis
func AnalysisFromModel(a *model.MoveAnalysis) Analysis {
	return Analysis{
		Sequence: a.Sequence,
		Mode:     a.Mode,
		Moves: lo.Map(a.Moves, func(m model.MoveScore, _ int) MoveScore {
			return MoveScore{
				Column:  m.Column + 1,
				Score:   m.Score,
				Outcome: string(model.OutcomeOf(m.Score)),
				Winning: m.Winning,
				Nodes:   m.Nodes,
			}
		}),
		Best:      oneIndexed(a.Best),
		ElapsedUS: a.Elapsed.Microseconds(),
	}
}

// Position describes a position without solving it
type Position struct {
	Sequence       string    `json:"sequence,omitempty"`
	Moves          int       `json:"moves"`
	CurrentPlayer  string    `json:"current_player"`
	Board          []string  `json:"board"`
	Heights        []int     `json:"heights"`
	Playable       []int     `json:"playable"`
	WinningColumns []int     `json:"winning_columns"`
	Full           bool      `json:"full"`
	Analysis       *Analysis `json:"analysis,omitempty"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position, seq string) Position {
	return Position{
		Sequence:      seq,
		Moves:         p.MoveCount(),
		CurrentPlayer: string(p.CurrentPlayer().Symbol()),
		Board:         p.Rows(),
		Heights: lo.Map(lo.Range(model.Width), func(col int, _ int) int {
			return p.Height(col)
		}),
		Playable:       oneIndexed(p.PlayableColumns()),
		WinningColumns: oneIndexed(p.WinningColumns()),
		Full:           p.IsFull(),
	}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}

func oneIndexed(cols []int) []int {
	return lo.Map(cols, func(col int, _ int) int {
		return col + 1
	})
}
