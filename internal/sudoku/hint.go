package sudoku

import "math/bits"

// CandidateSet is a bitmask over the digits 1..9: bit v-1 is set when v is
// a candidate.
type CandidateSet uint16

func (s CandidateSet) Has(value int) bool {
	return validValue(value) && s&(1<<(value-1)) != 0
}

func (s CandidateSet) Add(value int) CandidateSet {
	if !validValue(value) {
		return s
	}
	return s | 1<<(value-1)
}

func (s CandidateSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Values lists the candidate digits in ascending order.
func (s CandidateSet) Values() []int {
	values := make([]int, 0, s.Count())
	for v := 1; v <= Size; v++ {
		if s.Has(v) {
			values = append(values, v)
		}
	}
	return values
}

// Candidates returns the digits that could legally go at (row, col) given
// the board as it stands. Filled cells have no candidates: hints apply
// only to empty cells.
func (g Grid) Candidates(row, col int) (CandidateSet, error) {
	if !validCoords(row, col) {
		return 0, ErrOutOfRange
	}
	if g[row][col].Kind != Empty {
		return 0, nil
	}
	var set CandidateSet
	for v := 1; v <= Size; v++ {
		if g.IsLegalPlacement(row, col, v) {
			set = set.Add(v)
		}
	}
	return set, nil
}

// AllCandidates computes Candidates for all 81 cells. The result is a
// derived view of the grid; nothing is cached between calls.
func (g Grid) AllCandidates() (all [Size][Size]CandidateSet) {
	for r := range Size {
		for c := range Size {
			all[r][c], _ = g.Candidates(r, c)
		}
	}
	return all
}
