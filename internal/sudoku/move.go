package sudoku

// ClearCell returns a copy of the grid with (row, col) emptied. Fixed
// clues cannot be cleared: the move is rejected with ErrFixedCell rather
// than silently ignored. The receiving grid is untouched either way.
// Clearing a cell that is already empty succeeds trivially.
func (g Grid) ClearCell(row, col int) (Grid, error) {
	if !validCoords(row, col) {
		return Grid{}, ErrOutOfRange
	}
	if g[row][col].Kind == Fixed {
		return Grid{}, ErrFixedCell
	}
	g[row][col] = Cell{}
	return g, nil
}

// SetCell returns a copy of the grid with a player value written at
// (row, col), plus a flag reporting whether the placement obeys the row,
// column and box constraints. Legality is judged against the grid as it
// stood before the write, and the new grid comes back even for an illegal
// placement so a UI can display the attempted value; the flag separates
// "accepted" from "recorded but rule-violating". Out-of-range coordinates,
// values outside 1..9 and fixed-clue targets reject the move with no grid.
func (g Grid) SetCell(row, col, value int) (Grid, bool, error) {
	if !validCoords(row, col) {
		return Grid{}, false, ErrOutOfRange
	}
	if !validValue(value) {
		return Grid{}, false, ErrInvalidValue
	}
	if g[row][col].Kind == Fixed {
		return Grid{}, false, ErrFixedCell
	}
	valid := g.IsLegalPlacement(row, col, value)
	g[row][col] = PlayerCell(value)
	return g, valid, nil
}
