package sudoku

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Size      = 9
	BoxSize   = 3
	CellCount = Size * Size
)

// Grid is a 9x9 sudoku board, indexed [row][col] with both in 0..8.
// Assigning or passing a Grid copies it.
type Grid [Size][Size]Cell

// Group holds the nine cells of one row, column or box — the unit over
// which the uniqueness constraints run.
type Group [Size]Cell

func validCoords(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func validValue(value int) bool {
	return value >= 1 && value <= Size
}

// BoxIndex returns the index in 0..8 of the 3x3 box containing (row, col),
// counted left to right, top to bottom.
func BoxIndex(row, col int) int {
	return row/BoxSize*BoxSize + col/BoxSize
}

// At returns the cell at (row, col), or ErrOutOfRange for coordinates
// outside the board.
func (g Grid) At(row, col int) (Cell, error) {
	if !validCoords(row, col) {
		return Cell{}, ErrOutOfRange
	}
	return g[row][col], nil
}

// RowGroup returns the nine cells of a row. The group accessors index the
// board directly; bounds are the caller's responsibility.
func (g Grid) RowGroup(row int) Group {
	return Group(g[row])
}

// ColGroup returns the nine cells of a column.
func (g Grid) ColGroup(col int) (group Group) {
	for r := range Size {
		group[r] = g[r][col]
	}
	return group
}

// BoxGroup returns the nine cells of the box containing (row, col).
func (g Grid) BoxGroup(row, col int) (group Group) {
	r0, c0 := row/BoxSize*BoxSize, col/BoxSize*BoxSize
	i := 0
	for r := r0; r < r0+BoxSize; r++ {
		for c := c0; c < c0+BoxSize; c++ {
			group[i] = g[r][c]
			i++
		}
	}
	return group
}

// FromInts builds a grid from a plain 9x9 array where 0 denotes an empty
// cell and 1..9 a fixed clue. This is the hand-off format shared with the
// UI layer.
func FromInts(values [Size][Size]int) (Grid, error) {
	var g Grid
	for r := range Size {
		for c := range Size {
			v := values[r][c]
			switch {
			case v == 0:
				// stays empty
			case validValue(v):
				g[r][c] = FixedCell(v)
			default:
				return Grid{}, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, v, ErrInvalidValue)
			}
		}
	}
	return g, nil
}

// Ints flattens the grid to plain integers, 0 for empty cells.
func (g Grid) Ints() (values [Size][Size]int) {
	for r := range Size {
		for c := range Size {
			values[r][c] = int(g[r][c].Value)
		}
	}
	return values
}

// FixedMask reports which cells hold fixed clues, for UIs that render
// clues differently from player entries.
func (g Grid) FixedMask() (mask [Size][Size]bool) {
	for r := range Size {
		for c := range Size {
			mask[r][c] = g[r][c].Kind == Fixed
		}
	}
	return mask
}

// FilledCount returns the number of non-empty cells.
func (g Grid) FilledCount() (n int) {
	for r := range Size {
		for c := range Size {
			if g[r][c].Kind != Empty {
				n++
			}
		}
	}
	return n
}

// ParseGrid reads a board from 81 cell characters in row-major order,
// ignoring whitespace. '.' and '0' denote empty cells; digits become fixed
// clues.
func ParseGrid(s string) (Grid, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(compact) != CellCount {
		return Grid{}, fmt.Errorf("grid text must hold %d cells, got %d", CellCount, len(compact))
	}
	var g Grid
	for i := 0; i < CellCount; i++ {
		r, c := i/Size, i%Size
		switch ch := compact[i]; {
		case ch == '.' || ch == '0':
			// stays empty
		case ch >= '1' && ch <= '9':
			g[r][c] = FixedCell(int(ch - '0'))
		default:
			return Grid{}, fmt.Errorf("cell (%d,%d): unexpected character %q", r, c, ch)
		}
	}
	return g, nil
}

func (g Grid) String() string {
	var b strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[r][c].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
