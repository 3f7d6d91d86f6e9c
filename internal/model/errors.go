package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Move sequence errors
	ErrInvalidCharacter = errors.New("invalid character")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrWinningMove      = errors.New("move completes four in a row")

	// Field errors
	ErrInvalidFieldLength = errors.New("invalid field length")
	ErrInvalidFieldToken  = errors.New("invalid field token")
	ErrFloatingStone      = errors.New("stone above an empty cell")
	ErrStoneCount         = errors.New("stone counts do not alternate")
	ErrAlreadyWon         = errors.New("position already contains four in a row")

	// Mode errors
	ErrInvalidMode = errors.New("invalid solve mode")
)

// InvalidMoveError describes the first move of a sequence that could not be played
type InvalidMoveError struct {
	Index  int    // 0-based index into the sequence
	Move   string // the offending character
	Reason error  // one of the move sequence sentinels
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %d (%q): %s", e.Index+1, e.Move, e.Reason)
}

func (e *InvalidMoveError) Unwrap() error {
	return e.Reason
}

// InvalidFieldError describes why a field string could not be parsed
type InvalidFieldError struct {
	Column int // 0-indexed column, -1 when not column specific
	Reason error
	Detail string
}

func (e *InvalidFieldError) Error() string {
	msg := e.Reason.Error()
	if e.Column >= 0 {
		msg = fmt.Sprintf("column %d: %s", e.Column+1, msg)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return "invalid field: " + msg
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Reason
}
