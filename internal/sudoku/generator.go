package sudoku

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Difficulty int8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// targetRemovals maps each difficulty to how many clues the generator
// tries to strip from the 81-cell solution. These are targets, not
// guarantees: removal stops early when every further clearing would break
// solution uniqueness.
func (d Difficulty) targetRemovals() int {
	switch d {
	case Easy:
		return 35
	case Medium:
		return 45
	case Hard:
		return 55
	}
	return 0
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int8(d))
}

// ParseDifficulty maps a difficulty name to its value, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Puzzle is a generated board. Grid holds the playable mix of fixed clues
// and empty cells; Solution keeps the full grid it was carved from, so a
// session can reveal the answer without re-solving. Removed counts the
// clues actually cleared, which may fall short of the difficulty target.
type Puzzle struct {
	Grid       Grid
	Solution   Grid
	Difficulty Difficulty
	Removed    int
}

// NewPuzzle generates a puzzle with a guaranteed unique solution. The
// three phases run in order: seed the independent diagonal boxes, complete
// the board with the randomized solver, then strip clues one at a time,
// keeping only removals that leave exactly one solution.
func NewPuzzle(d Difficulty, rnd *rand.Rand) (puzzle *Puzzle, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				puzzle, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	if d < Easy || d > Hard {
		return nil, ErrUnknownDifficulty
	}
	start := time.Now()

	var g Grid
	for origin := 0; origin < Size; origin += BoxSize {
		seedBox(&g, origin, origin, rnd)
	}

	solution, err := Solve(g, rnd)
	if err != nil {
		return nil, fmt.Errorf("complete seeded grid: %w", err)
	}

	puzzle = &Puzzle{
		Grid:       solution,
		Solution:   solution,
		Difficulty: d,
	}
	puzzle.Removed = removeClues(&puzzle.Grid, d.targetRemovals(), rnd)

	Log.WithFields(logrus.Fields{
		"difficulty": d.String(),
		"removed":    puzzle.Removed,
		"target":     d.targetRemovals(),
		"duration":   time.Since(start).String(),
	}).Debug("generated puzzle")

	return puzzle, nil
}

// seedBox fills the 3x3 box with origin (row, col) with a random
// permutation of 1..9. The three diagonal boxes share no row, column or
// box group with each other, so they can be seeded with no legality
// checks; any other origin is a bug in this package.
// panics [AssertionError]
func seedBox(g *Grid, row, col int, rnd *rand.Rand) {
	if row != col || row%BoxSize != 0 {
		panic(AssertionError{fmt.Sprintf("seedBox(%d,%d): not a diagonal box origin", row, col)})
	}
	digits := shuffledDigits(rnd)
	defer digitPool.Put(digits)
	for i, d := range digits {
		g[row+i/BoxSize][col+i%BoxSize] = FixedCell(int(d))
	}
}

// removeClues clears fixed cells in shuffled order, testing the whole
// remaining grid for solution uniqueness after each tentative clearing.
// A clearing that leaves more than one solution is rolled back. Stops at
// target removals or once every position has been tried.
func removeClues(g *Grid, target int, rnd *rand.Rand) int {
	positions := make([]int, 0, CellCount)
	for pos := range CellCount {
		if g[pos/Size][pos%Size].Kind == Fixed {
			positions = append(positions, pos)
		}
	}
	rnd.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	removed := 0
	for _, pos := range positions {
		if removed >= target {
			break
		}
		r, c := pos/Size, pos%Size
		clue := g[r][c]
		g[r][c] = Cell{}
		if HasUniqueSolution(*g) {
			removed++
		} else {
			g[r][c] = clue
		}
	}
	return removed
}
