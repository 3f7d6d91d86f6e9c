package model

import (
	"fmt"
	"strings"
)

// PositionFromMoves builds a position from a string of 1-based column digits.
// It is a checked wrapper over PlaySequence that explains why the first
// rejected move was rejected.
func PositionFromMoves(seq string) (Position, error) {
	p := NewPosition()
	n := p.PlaySequence(seq)
	if n == len(seq) {
		return p, nil
	}
	return p, &InvalidMoveError{
		Index:  n,
		Move:   seq[n : n+1],
		Reason: p.rejectReason(seq[n]),
	}
}

func (p *Position) rejectReason(c byte) error {
	if c < '0' || c > '9' {
		return ErrInvalidCharacter
	}
	col := int(c) - '1'
	switch {
	case col < 0 || col >= Width:
		return ErrColumnOutOfRange
	case !p.CanPlay(col):
		return ErrColumnFull
	default:
		return ErrWinningMove
	}
}

// PositionFromField parses a board described as Range comma-separated
// tokens listed row by row from the top-left cell: "." is empty, "0" is the
// first player and "1" the second player. The player to move is derived
// from the stone counts.
func PositionFromField(field string) (Position, error) {
	tokens := strings.Split(strings.TrimSpace(field), ",")
	if len(tokens) != Range {
		return Position{}, &InvalidFieldError{
			Column: -1,
			Reason: ErrInvalidFieldLength,
			Detail: fmt.Sprintf("found %d cells, expected %d", len(tokens), Range),
		}
	}

	var p Position
	counts := map[Cell]int{}
	for i, tok := range tokens {
		row := Height - 1 - i/Width
		col := i % Width

		var cell Cell
		switch strings.TrimSpace(tok) {
		case ".":
			cell = CellEmpty
		case "0":
			cell = CellPlayerA
		case "1":
			cell = CellPlayerB
		default:
			return Position{}, &InvalidFieldError{
				Column: col,
				Reason: ErrInvalidFieldToken,
				Detail: fmt.Sprintf("token %q at row %d", tok, Height-row),
			}
		}
		p.cells[col][row] = cell
		counts[cell]++
	}

	for col := 0; col < Width; col++ {
		h := 0
		for h < Height && p.cells[col][h] != CellEmpty {
			h++
		}
		for row := h; row < Height; row++ {
			if p.cells[col][row] != CellEmpty {
				return Position{}, &InvalidFieldError{Column: col, Reason: ErrFloatingStone}
			}
		}
		p.heights[col] = h
	}

	a, b := counts[CellPlayerA], counts[CellPlayerB]
	if a != b && a != b+1 {
		return Position{}, &InvalidFieldError{
			Column: -1,
			Reason: ErrStoneCount,
			Detail: fmt.Sprintf("first player %d, second player %d", a, b),
		}
	}
	p.moves = a + b

	if p.hasAlignment(CellPlayerA) || p.hasAlignment(CellPlayerB) {
		return Position{}, &InvalidFieldError{Column: -1, Reason: ErrAlreadyWon}
	}
	return p, nil
}

// hasAlignment reports whether the player already has four in a row anywhere
func (p *Position) hasAlignment(player Cell) bool {
	directions := [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for col := 0; col < Width; col++ {
		for row := 0; row < Height; row++ {
			for _, d := range directions {
				n := 0
				for n < 4 && p.Cell(col+n*d[0], row+n*d[1]) == player {
					n++
				}
				if n == 4 {
					return true
				}
			}
		}
	}
	return false
}
