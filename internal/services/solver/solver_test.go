package solver

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connect4-solver/internal/dependencies/mocks"
	"github.com/mcoot/connect4-solver/internal/model"
	"github.com/mcoot/connect4-solver/internal/services/generator"
	"github.com/mcoot/connect4-solver/internal/testutil"
)

// drawnGame fills the board without either player completing four in a row
const drawnGame = "133333311111244444422222577777755555666666"

func mustPosition(t *testing.T, seq string) model.Position {
	t.Helper()
	p, err := model.PositionFromMoves(seq)
	require.NoError(t, err)
	return p
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

type SolverSuite struct {
	suite.Suite
	solver *Solver
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) SetupTest() {
	s.solver = New()
}

func (s *SolverSuite) solve(seq string, weak bool) (int, uint64) {
	score := s.solver.Solve(mustPosition(s.T(), seq), weak)
	return score, s.solver.NodeCount()
}

// Exploration order tests

func (s *SolverSuite) TestExplorationOrderIsCenterFirst() {
	s.Equal([]int{3, 2, 4, 1, 5, 0, 6}, ExplorationOrder)
}

func (s *SolverSuite) TestExplorationOrderOtherWidths() {
	s.Equal([]int{0}, explorationOrder(1))
	s.Equal([]int{1, 0}, explorationOrder(2))
	s.Equal([]int{3, 2, 4, 1, 5, 0}, explorationOrder(6))
}

// Terminal position tests

func (s *SolverSuite) TestFullBoardIsDraw() {
	for _, weak := range []bool{false, true} {
		score, nodes := s.solve(drawnGame, weak)
		s.Equal(0, score)
		s.Equal(uint64(1), nodes)
	}
}

func (s *SolverSuite) TestLastMoveIsDraw() {
	score, nodes := s.solve(drawnGame[:41], false)
	s.Equal(0, score)
	s.Equal(uint64(2), nodes)

	score, nodes = s.solve(drawnGame[:40], false)
	s.Equal(0, score)
	s.Equal(uint64(3), nodes)
}

// Immediate win tests

func (s *SolverSuite) TestImmediateWinScoresWithoutSearching() {
	score, nodes := s.solve("121212", false)
	s.Equal(model.WinScore(6), score)
	s.Equal(18, score)
	s.Equal(uint64(1), nodes)
}

func (s *SolverSuite) TestImmediateWinBeatsOpponentThreats() {
	// both players have two threats; the player to move wins first
	score, nodes := s.solve("314151374757", false)
	s.Equal(15, score)
	s.Equal(uint64(1), nodes)
}

func (s *SolverSuite) TestImmediateWinInWeakMode() {
	score, nodes := s.solve("121212", true)
	s.Equal(18, score)
	s.Equal(uint64(1), nodes)
}

// Forced loss tests

func (s *SolverSuite) TestDoubleThreatIsLost() {
	// first player has an open three on the bottom row
	score, nodes := s.solve("31415", false)
	s.Equal(-18, score)
	s.Equal(uint64(8), nodes)
}

func (s *SolverSuite) TestDoubleThreatIsLostInWeakMode() {
	score, nodes := s.solve("31415", true)
	s.Equal(-1, sign(score))
	s.Equal(uint64(8), nodes)
}

func (s *SolverSuite) TestPruningExploresFewerNodesWithImmediateWin() {
	_, withWin := s.solve("121212", false)
	_, withoutWin := s.solve("31415", false)
	s.Less(withWin, withoutWin)
}

// Node counter tests

func (s *SolverSuite) TestNodeCountResetsOnEverySolve() {
	_, first := s.solve("31415", false)
	_, _ = s.solve(drawnGame[:30], false)
	_, again := s.solve("31415", false)
	s.Equal(first, again)
}

func (s *SolverSuite) TestSolveDoesNotMutateInput() {
	p := mustPosition(s.T(), drawnGame[:30])
	before := p

	s.solver.Solve(p, false)
	s.Equal(before, p)
}

// Stop tests

func (s *SolverSuite) TestStoppedSolverExploresNothing() {
	s.solver.Stop()
	s.True(s.solver.Stopped())

	score, nodes := s.solve("", false)
	s.Equal(0, score)
	s.Equal(uint64(0), nodes)
}

func TestStopInterruptsRunningSearch(t *testing.T) {
	slv := New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		slv.Solve(model.NewPosition(), false)
	}()

	time.Sleep(10 * time.Millisecond)
	slv.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop")
	}
}

// Symmetry tests

func (s *SolverSuite) TestMirroredSequenceHasSameScore() {
	for _, seq := range []string{"31415", "121212", "314151374757", drawnGame[:32]} {
		score, _ := s.solve(seq, false)
		mirrored, _ := s.solve(model.MirrorSequence(seq), false)
		s.Equal(score, mirrored, "sequence %q", seq)
	}
}

// generatedSequences returns mid-game sequences built by the generator from
// a fixed stream of choices, so every run checks the same positions
func generatedSequences(t *testing.T) []string {
	t.Helper()
	rng := mocks.NewMockRandom()
	for i := range 5000 {
		rng.QueueIntn((i*i + 3*i + i/7) % model.Width)
	}
	gen := generator.NewService(rng, testutil.NopLogger())

	var seqs []string
	for _, moves := range []int{30, 31, 32, 33} {
		generated, err := gen.Sequences(3, moves)
		require.NoError(t, err)
		seqs = append(seqs, generated...)
	}
	require.Greater(t, len(lo.Uniq(seqs)), 1)
	return seqs
}

// lateGameSequences covers every prefix of a drawn game that is small
// enough to search exhaustively in a unit test, plus generated positions
func lateGameSequences(t *testing.T) []string {
	t.Helper()
	seqs := lo.Map(lo.RangeFrom(30, len(drawnGame)-30+1), func(n int, _ int) string {
		return drawnGame[:n]
	})
	return append(seqs, generatedSequences(t)...)
}

func TestLateGameProperties(t *testing.T) {
	slv := New()
	for _, seq := range lateGameSequences(t) {
		p := mustPosition(t, seq)

		strong := slv.Solve(p, false)
		weak := slv.Solve(p, true)
		mirrored := slv.Solve(p.Mirror(), false)

		assert.GreaterOrEqual(t, strong, model.MinScore, "sequence %q", seq)
		assert.LessOrEqual(t, strong, model.MaxScore, "sequence %q", seq)
		assert.Equal(t, sign(strong), sign(weak), "sequence %q", seq)
		assert.Equal(t, strong, mirrored, "sequence %q", seq)
	}
}

func TestScoreMatchesBestChild(t *testing.T) {
	slv := New()
	for _, seq := range lateGameSequences(t) {
		p := mustPosition(t, seq)
		if p.MoveCount() == model.Range {
			continue
		}
		want := slv.Solve(p, false)

		best := model.MinScore
		for _, col := range p.PlayableColumns() {
			if p.IsWinningMove(col) {
				best = max(best, model.WinScore(p.MoveCount()))
				continue
			}
			child := p
			child.Play(col)
			best = max(best, -slv.Solve(child, false))
		}
		assert.Equal(t, want, best, "sequence %q", seq)
	}
}
