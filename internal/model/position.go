package model

import (
	"strings"

	"github.com/samber/lo"
)

// Board dimensions for standard Connect Four
const (
	Width  = 7
	Height = 6
	// Range is the number of cells on the board, which is also the maximum
	// number of moves in a game
	Range = Width * Height

	MinScore = -Range / 2
	MaxScore = Range / 2
)

// Cell is the content of a single board cell
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayerA
	CellPlayerB
)

// Symbol returns the character used to render the cell
func (c Cell) Symbol() byte {
	switch c {
	case CellPlayerA:
		return 'X'
	case CellPlayerB:
		return 'O'
	default:
		return '.'
	}
}

// Position is a Connect Four board state.
//
// Position is a plain value: assigning it copies the whole board, which is
// how the solver gives every explored node its own independent position.
// The zero value is the empty board.
type Position struct {
	cells   [Width][Height]Cell // cells[col][row], row 0 is the bottom
	heights [Width]int
	moves   int
}

// NewPosition returns the empty board
func NewPosition() Position {
	return Position{}
}

// CanPlay reports whether a stone can be dropped in the 0-indexed column
func (p *Position) CanPlay(col int) bool {
	if col < 0 || col >= Width {
		return false
	}
	return p.heights[col] < Height
}

// Play drops the current player's stone in the 0-indexed column.
// The column must be playable and must not complete a four-in-a-row.
func (p *Position) Play(col int) {
	p.cells[col][p.heights[col]] = p.CurrentPlayer()
	p.heights[col]++
	p.moves++
}

// PlaySequence replays a string of 1-based column digits from the current
// position. Processing stops at the first character that is not a digit
// in 1..Width, targets a full column, or would win the game outright.
// It returns the number of characters played; the sequence was valid iff
// that equals len(seq).
func (p *Position) PlaySequence(seq string) int {
	for i := 0; i < len(seq); i++ {
		col := int(seq[i]) - '1'
		if col < 0 || col >= Width || !p.CanPlay(col) || p.IsWinningMove(col) {
			return i
		}
		p.Play(col)
	}
	return len(seq)
}

// IsWinningMove reports whether the current player completes four-in-a-row
// by playing the 0-indexed column. The column must be playable.
func (p *Position) IsWinningMove(col int) bool {
	player := p.CurrentPlayer()
	row := p.heights[col]

	if row >= 3 &&
		p.cells[col][row-1] == player &&
		p.cells[col][row-2] == player &&
		p.cells[col][row-3] == player {
		return true
	}

	// dy = 0 is horizontal, dy = -1 and dy = 1 are the two diagonals
	for dy := -1; dy <= 1; dy++ {
		count := 0
		for dx := -1; dx <= 1; dx += 2 {
			x, y := col+dx, row+dx*dy
			for x >= 0 && x < Width && y >= 0 && y < Height && p.cells[x][y] == player {
				count++
				x += dx
				y += dx * dy
			}
		}
		if count >= 3 {
			return true
		}
	}
	return false
}

// MoveCount returns the number of stones played since the empty board
func (p *Position) MoveCount() int {
	return p.moves
}

// CurrentPlayer returns the cell value of the player to move
func (p *Position) CurrentPlayer() Cell {
	return CellPlayerA + Cell(p.moves%2)
}

// Cell returns the content of the cell at the 0-indexed column and row
// (row 0 is the bottom). Out-of-range coordinates are empty.
func (p *Position) Cell(col, row int) Cell {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return CellEmpty
	}
	return p.cells[col][row]
}

// Height returns the number of stones in the 0-indexed column
func (p *Position) Height(col int) int {
	if col < 0 || col >= Width {
		return 0
	}
	return p.heights[col]
}

// IsFull reports whether every cell is occupied
func (p *Position) IsFull() bool {
	return p.moves == Range
}

// PlayableColumns returns the 0-indexed columns that are not full
func (p *Position) PlayableColumns() []int {
	return lo.Filter(allColumns(), func(col int, _ int) bool {
		return p.CanPlay(col)
	})
}

// WinningColumns returns the playable columns that win immediately
func (p *Position) WinningColumns() []int {
	return lo.Filter(p.PlayableColumns(), func(col int, _ int) bool {
		return p.IsWinningMove(col)
	})
}

// Mirror returns the position reflected left to right
func (p *Position) Mirror() Position {
	m := *p
	for col := 0; col < Width; col++ {
		m.cells[col] = p.cells[Width-1-col]
		m.heights[col] = p.heights[Width-1-col]
	}
	return m
}

// String renders the board top row first, one line per row
func (p *Position) String() string {
	var sb strings.Builder
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			sb.WriteByte(p.cells[col][row].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns the rendered board rows, top row first
func (p *Position) Rows() []string {
	return strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n")
}

// MirrorSequence maps every column digit of a move sequence to its
// left-right reflection. Characters that are not column digits are kept.
func MirrorSequence(seq string) string {
	return string(lo.Map([]byte(seq), func(c byte, _ int) byte {
		if c < '1' || c >= '1'+Width {
			return c
		}
		return '1' + byte(Width-1) - (c - '1')
	}))
}

func allColumns() []int {
	return lo.Range(Width)
}
