package sudoku

// fullMask has one bit set per digit 1..9.
const fullMask = 1<<Size - 1

// Contains reports whether some filled cell in the group holds value.
// Empty cells never match, and neither does a value outside 1..9.
func (grp Group) Contains(value int) bool {
	if !validValue(value) {
		return false
	}
	for _, c := range grp {
		if c.Kind != Empty && int(c.Value) == value {
			return true
		}
	}
	return false
}

// IsLegalPlacement reports whether value could go at (row, col) without
// duplicating a digit in the cell's row, column or box. The check runs
// against the grid as currently stored — a digit sitting in the target
// cell itself counts as a conflict. SetCell relies on that: it writes the
// tentative value into a copy and judges it against the board as it stood
// before the write. Out-of-range coordinates or values are never legal.
func (g Grid) IsLegalPlacement(row, col, value int) bool {
	if !validCoords(row, col) || !validValue(value) {
		return false
	}
	return !g.RowGroup(row).Contains(value) &&
		!g.ColGroup(col).Contains(value) &&
		!g.BoxGroup(row, col).Contains(value)
}

// IsValid reports whether the filled cells break any row, column or box
// constraint. Empty cells are fine: a half-played board with no duplicate
// digits is valid.
func (g Grid) IsValid() bool {
	var rows, cols, boxes [Size]uint16
	for r := range Size {
		for c := range Size {
			cell := g[r][c]
			if cell.Kind == Empty {
				continue
			}
			bit := uint16(1) << (cell.Value - 1)
			b := BoxIndex(r, c)
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				return false
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return true
}

// IsSolved reports whether the board is completely and correctly filled:
// no empty cells, and every row, column and box holding each digit exactly
// once. Nine cells per group each contributing a distinct bit means the
// accumulated mask is full exactly when the group is a permutation of 1..9.
func (g Grid) IsSolved() bool {
	var rows, cols, boxes [Size]uint16
	for r := range Size {
		for c := range Size {
			cell := g[r][c]
			if cell.Kind == Empty {
				return false
			}
			bit := uint16(1) << (cell.Value - 1)
			b := BoxIndex(r, c)
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	for i := range Size {
		if rows[i] != fullMask || cols[i] != fullMask || boxes[i] != fullMask {
			return false
		}
	}
	return true
}
