package board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for them.
var (
	// ErrMalformedSquare indicates square notation that is not a file A-H followed by a rank 1-8.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrIllegalMove indicates a move that fails the legality filter.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSetup indicates a position record that cannot form a Position.
	ErrInvalidSetup = errors.New("invalid setup")
)

// MoveError reports a move that could not be applied.
type MoveError struct {
	Move Move
	Side Color
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s move %s: %v", e.Side, e.Move, e.Err)
}

// Unwrap returns the underlying error so errors.Is(err, ErrIllegalMove) works.
func (e *MoveError) Unwrap() error {
	return e.Err
}
