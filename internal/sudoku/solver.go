package sudoku

import (
	"math/rand/v2"
	"sync"
)

// digitPool recycles candidate permutations so the solver does not allocate
// a fresh one for every cell it visits. Each pooled array is re-shuffled
// before use; pooling saves the allocation, not the ordering.
var digitPool = sync.Pool{
	New: func() any {
		digits := new([Size]int8)
		for i := range digits {
			digits[i] = int8(i + 1)
		}
		return digits
	},
}

func shuffledDigits(rnd *rand.Rand) *[Size]int8 {
	digits := digitPool.Get().(*[Size]int8)
	rnd.Shuffle(Size, func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	return digits
}

// Solve completes the grid into a full valid solution. Candidate digits are
// tried in shuffled order, so repeated runs from the same starting grid
// reach different solutions while staying correct regardless of order.
// Cells filled by the solver become fixed clues. Returns ErrInvalidGrid
// when the input already breaks a constraint and ErrNoSolution when no
// completion exists; success implies IsSolved on the result.
func Solve(g Grid, rnd *rand.Rand) (Grid, error) {
	if !g.IsValid() {
		return Grid{}, ErrInvalidGrid
	}
	if !complete(&g, 0, rnd) {
		return Grid{}, ErrNoSolution
	}
	return g, nil
}

// complete is the classic backtracking walk. Cells are visited in
// row-major order and filled cells are skipped. An empty cell tries each
// digit of a shuffled permutation, keeps a legal one and recurses; when
// the recursion fails the cell reverts to empty and the next digit goes in.
func complete(g *Grid, pos int, rnd *rand.Rand) bool {
	if pos == CellCount {
		return true
	}
	r, c := pos/Size, pos%Size
	if g[r][c].Kind != Empty {
		return complete(g, pos+1, rnd)
	}
	digits := shuffledDigits(rnd)
	defer digitPool.Put(digits)
	for _, d := range digits {
		v := int(d)
		if !g.IsLegalPlacement(r, c, v) {
			continue
		}
		g[r][c] = FixedCell(v)
		if complete(g, pos+1, rnd) {
			return true
		}
		g[r][c] = Cell{}
	}
	return false
}
