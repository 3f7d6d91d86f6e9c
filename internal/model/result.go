package model

import "time"

// Outcome is the game-theoretic result for the player to move
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

// OutcomeOf classifies a score by its sign
func OutcomeOf(score int) Outcome {
	switch {
	case score > 0:
		return OutcomeWin
	case score < 0:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// WinScore is the score of winning with the next stone when moves stones
// have already been played
func WinScore(moves int) int {
	return (Range + 1 - moves) / 2
}

// SolveResult is the outcome of solving a single position
type SolveResult struct {
	Sequence string
	Mode     string
	Score    int
	Outcome  Outcome
	Nodes    uint64
	Elapsed  time.Duration
}

// Throughput returns explored nodes per microsecond. Elapsed times below
// one microsecond count as one microsecond.
func (r SolveResult) Throughput() float64 {
	us := r.Elapsed.Microseconds()
	if us < 1 {
		us = 1
	}
	return float64(r.Nodes) / float64(us)
}

// MoveScore is the score of playing a single column from a position
type MoveScore struct {
	Column  int // 0-indexed
	Score   int
	Winning bool // the move completes four in a row
	Nodes   uint64
}

// MoveAnalysis scores every playable column of a position
type MoveAnalysis struct {
	Sequence string
	Mode     string
	Moves    []MoveScore
	Best     []int // 0-indexed columns sharing the best score
	Elapsed  time.Duration
}
