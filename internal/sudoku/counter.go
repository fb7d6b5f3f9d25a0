package sudoku

// CountSolutions counts distinct completions of the grid, stopping as soon
// as max have been found. Unlike Solve it keeps searching after reaching a
// full board, so the result is exact below the cap and clamped at it — a
// return of max means "at least max". The walk mirrors the solver's
// recursion but needs no randomness: the number of completions does not
// depend on candidate order. The by-value receiver grid serves as the
// search scratchpad, so the caller's grid is never touched. A grid that
// already breaks a constraint has zero completions.
func CountSolutions(g Grid, max int) int {
	if max <= 0 || !g.IsValid() {
		return 0
	}
	count := 0
	countFrom(&g, 0, max, &count)
	return count
}

// HasUniqueSolution reports whether the grid has exactly one completion.
// This is the generator's removal test: a capped count of 2 is enough to
// tell "one" apart from "more than one" without enumerating everything.
func HasUniqueSolution(g Grid) bool {
	return CountSolutions(g, 2) == 1
}

func countFrom(g *Grid, pos, max int, count *int) {
	if pos == CellCount {
		*count++
		return
	}
	r, c := pos/Size, pos%Size
	if g[r][c].Kind != Empty {
		countFrom(g, pos+1, max, count)
		return
	}
	for v := 1; v <= Size; v++ {
		if !g.IsLegalPlacement(r, c, v) {
			continue
		}
		g[r][c] = FixedCell(v)
		countFrom(g, pos+1, max, count)
		g[r][c] = Cell{}
		if *count >= max {
			return
		}
	}
}
