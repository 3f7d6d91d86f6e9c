package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PositionSuite struct {
	suite.Suite
}

func TestPositionSuite(t *testing.T) {
	suite.Run(t, new(PositionSuite))
}

// Empty position tests

func (s *PositionSuite) TestNewPositionIsEmpty() {
	p := NewPosition()

	s.Equal(0, p.MoveCount())
	s.Equal(CellPlayerA, p.CurrentPlayer())
	s.Equal([]int{0, 1, 2, 3, 4, 5, 6}, p.PlayableColumns())
	s.Empty(p.WinningColumns())
	s.False(p.IsFull())
}

func (s *PositionSuite) TestZeroValueMatchesNewPosition() {
	var p Position
	s.Equal(NewPosition(), p)
}

// CanPlay tests

func (s *PositionSuite) TestCanPlayOutOfRange() {
	p := NewPosition()
	s.False(p.CanPlay(-1))
	s.False(p.CanPlay(Width))
}

func (s *PositionSuite) TestCanPlayFullColumn() {
	p := NewPosition()
	for i := 0; i < Height; i++ {
		s.Require().True(p.CanPlay(0))
		p.Play(0)
	}
	s.False(p.CanPlay(0))
	s.Equal(Height, p.Height(0))
}

// Play tests

func (s *PositionSuite) TestPlayStacksAndAlternates() {
	p := NewPosition()
	p.Play(3)
	p.Play(3)

	s.Equal(CellPlayerA, p.Cell(3, 0))
	s.Equal(CellPlayerB, p.Cell(3, 1))
	s.Equal(CellEmpty, p.Cell(3, 2))
	s.Equal(2, p.Height(3))
	s.Equal(2, p.MoveCount())
	s.Equal(CellPlayerA, p.CurrentPlayer())
}

func (s *PositionSuite) TestCopyIsIndependent() {
	p := NewPosition()
	p.Play(3)

	child := p
	child.Play(3)

	s.Equal(1, p.MoveCount())
	s.Equal(CellEmpty, p.Cell(3, 1))
	s.Equal(2, child.MoveCount())
	s.Equal(CellPlayerB, child.Cell(3, 1))
}

// PlaySequence tests

func (s *PositionSuite) TestPlaySequenceValid() {
	p := NewPosition()
	s.Equal(7, p.PlaySequence("4453343"))
	s.Equal(7, p.MoveCount())
}

func (s *PositionSuite) TestPlaySequenceEmpty() {
	p := NewPosition()
	s.Equal(0, p.PlaySequence(""))
	s.Equal(NewPosition(), p)
}

func (s *PositionSuite) TestPlaySequenceStopsAtInvalidMove() {
	cases := map[string]int{
		"12a":     2, // not a digit
		"8":       0, // beyond the last column
		"0":       0, // before the first column
		"1111111": 6, // seventh stone in a full column
		"1212121": 6, // vertical win
		"4455667": 6, // horizontal win
	}
	for seq, want := range cases {
		p := NewPosition()
		s.Equal(want, p.PlaySequence(seq), "sequence %q", seq)
		s.Equal(want, p.MoveCount(), "sequence %q", seq)
	}
}

func (s *PositionSuite) TestPlaySequenceMatchesSingleMoves() {
	seq := "4453343"

	bulk := NewPosition()
	s.Require().Equal(len(seq), bulk.PlaySequence(seq))

	single := NewPosition()
	for _, c := range seq {
		single.Play(int(c - '1'))
	}

	s.Equal(single, bulk)
	for col := 0; col < Width; col++ {
		for row := 0; row < Height; row++ {
			s.Equal(single.Cell(col, row), bulk.Cell(col, row))
		}
	}
}

func (s *PositionSuite) TestPlaySequenceContinuesFromCurrentPosition() {
	p := NewPosition()
	p.PlaySequence("44")
	s.Equal(3, p.PlaySequence("533"))

	q := NewPosition()
	q.PlaySequence("44533")
	s.Equal(q, p)
}

// IsWinningMove tests

func (s *PositionSuite) TestIsWinningMoveVertical() {
	p := NewPosition()
	p.PlaySequence("121212")

	s.True(p.IsWinningMove(0))
	s.False(p.IsWinningMove(1))
	s.Equal([]int{0}, p.WinningColumns())
}

func (s *PositionSuite) TestIsWinningMoveHorizontal() {
	p := NewPosition()
	p.PlaySequence("445566")

	s.True(p.IsWinningMove(2))
	s.True(p.IsWinningMove(6))
	s.False(p.IsWinningMove(0))
	s.Equal([]int{2, 6}, p.WinningColumns())
}

func (s *PositionSuite) TestIsWinningMoveDiagonal() {
	p := NewPosition()
	s.Require().Equal(10, p.PlaySequence("1223433464"))

	s.True(p.IsWinningMove(3))
	s.Equal(10, p.PlaySequence("12234334644"))
}

func (s *PositionSuite) TestIsWinningMoveAntiDiagonal() {
	p := NewPosition()
	s.Require().Equal(10, p.PlaySequence(MirrorSequence("1223433464")))

	s.True(p.IsWinningMove(3))
}

func (s *PositionSuite) TestIsWinningMoveIgnoresOpponentStones() {
	p := NewPosition()
	// second player to move with three of the first player's stones in column 1
	p.PlaySequence("12121")

	s.False(p.IsWinningMove(0))
}

// Full board tests

func (s *PositionSuite) TestDrawnSequenceFillsBoard() {
	p := NewPosition()
	seq := "133333311111244444422222577777755555666666"

	s.Require().Equal(len(seq), p.PlaySequence(seq))
	s.True(p.IsFull())
	s.Equal(Range, p.MoveCount())
	s.Empty(p.PlayableColumns())
}

// Mirror tests

func (s *PositionSuite) TestMirrorSequence() {
	s.Equal("7665455424", MirrorSequence("1223433464"))
	s.Equal("", MirrorSequence(""))
	s.Equal("4a7", MirrorSequence("4a1"))
}

func (s *PositionSuite) TestMirrorMatchesMirroredSequence() {
	p := NewPosition()
	p.PlaySequence("1223433464")

	q := NewPosition()
	q.PlaySequence(MirrorSequence("1223433464"))

	s.Equal(q, p.Mirror())
	s.Equal(p, q.Mirror())
}

// Rendering tests

func (s *PositionSuite) TestString() {
	p := NewPosition()
	p.PlaySequence("443")

	expected := "" +
		".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		"...O...\n" +
		"..XX...\n"
	s.Equal(expected, p.String())
}

func (s *PositionSuite) TestRows() {
	p := NewPosition()
	p.PlaySequence("4")

	rows := p.Rows()
	s.Len(rows, Height)
	s.Equal(".......", rows[0])
	s.Equal("...X...", rows[Height-1])
}
