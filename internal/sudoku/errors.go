package sudoku

import "errors"

var (
	ErrOutOfRange        = errors.New("coordinates out of range")
	ErrInvalidValue      = errors.New("value out of range")
	ErrFixedCell         = errors.New("cell is a fixed clue")
	ErrInvalidGrid       = errors.New("grid violates sudoku constraints")
	ErrNoSolution        = errors.New("grid has no solution")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// AssertionError marks a broken invariant inside this package, never bad
// input from a caller. It is panicked internally and recovered at the
// public generator boundary.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
