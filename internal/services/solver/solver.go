package solver

import (
	"sync/atomic"

	"github.com/mcoot/connect4-solver/internal/model"
)

// ExplorationOrder lists the columns center first, then alternating
// outward: 3, 2, 4, 1, 5, 0, 6 on a seven column board.
var ExplorationOrder = explorationOrder(model.Width)

func explorationOrder(width int) []int {
	order := make([]int, width)
	for i := range order {
		order[i] = width/2 + (1-2*(i%2))*(i+1)/2
	}
	return order
}

// Solver computes exact Connect Four scores with a negamax alpha-beta search.
//
// A Solver is not safe for concurrent use; it owns the node counter of the
// search in progress. Stop is the exception and may be called from any
// goroutine.
type Solver struct {
	nodeCount uint64
	stopped   atomic.Bool
}

// New creates a new Solver
func New() *Solver {
	return &Solver{}
}

// Solve returns the score of a position for the player to move. The
// position must not already contain four in a row.
//
// With weak set the search only distinguishes win, draw and loss: the sign
// of the result is exact but its magnitude is not.
func (s *Solver) Solve(p model.Position, weak bool) int {
	s.nodeCount = 0
	if weak {
		return s.negamax(p, -1, 1)
	}
	return s.negamax(p, model.MinScore, model.MaxScore)
}

// Stop makes the search in progress, and any later Solve, unwind without
// exploring further nodes. The score returned by a stopped Solve is
// meaningless.
func (s *Solver) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called
func (s *Solver) Stopped() bool {
	return s.stopped.Load()
}

// NodeCount returns the number of positions explored by the last Solve
func (s *Solver) NodeCount() uint64 {
	return s.nodeCount
}

// negamax scores p within the window (alpha, beta), alpha < beta:
//   - if the true score is <= alpha the result is an upper bound <= alpha
//   - if the true score is >= beta the result is a lower bound >= beta
//   - otherwise the result is the true score
func (s *Solver) negamax(p model.Position, alpha, beta int) int {
	if s.stopped.Load() {
		return 0
	}
	s.nodeCount++

	if p.MoveCount() == model.Range {
		return 0
	}

	for col := 0; col < model.Width; col++ {
		if p.CanPlay(col) && p.IsWinningMove(col) {
			return model.WinScore(p.MoveCount())
		}
	}

	best := model.MinScore
	for _, col := range ExplorationOrder {
		if !p.CanPlay(col) {
			continue
		}
		child := p
		child.Play(col)
		score := -s.negamax(child, -beta, -alpha)
		best = max(best, score)
		alpha = max(alpha, score)
		if alpha >= beta {
			return alpha
		}
	}
	return best
}
