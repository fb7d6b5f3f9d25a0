// Package sudoku implements the 9x9 puzzle core: the board model,
// constraint checking, a randomized backtracking solver, solution counting
// with an early-termination cap, puzzle generation and player move
// application. Grids are value types; every mutating operation returns a
// new grid and leaves its input untouched.
package sudoku

import "strconv"

type CellKind int8

const (
	// Empty marks a cell holding no value.
	Empty CellKind = iota
	// Fixed marks a clue placed by the generator. Fixed cells are immutable
	// for the lifetime of a puzzle: moves that target them are rejected.
	Fixed
	// Player marks a value entered during play. Player cells may be
	// replaced or cleared freely.
	Player
)

// Cell is one square of the board: a kind plus, for filled cells, a digit
// in 1..9. The zero Cell is empty.
type Cell struct {
	Kind  CellKind
	Value int8
}

// FixedCell returns a clue cell holding v.
func FixedCell(v int) Cell {
	return Cell{Kind: Fixed, Value: int8(v)}
}

// PlayerCell returns a player-entered cell holding v.
func PlayerCell(v int) Cell {
	return Cell{Kind: Player, Value: int8(v)}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

func (c Cell) String() string {
	if c.Kind == Empty {
		return "."
	}
	return strconv.Itoa(int(c.Value))
}
