package game

const (
	Columns = 7
	Rows    = 6

	connect = 4
)

// Board is the disc grid. Row 0 is the bottom row, so a drop lands on the
// lowest empty cell of its column. Board is a value type: assignment copies
// the whole grid, which is what keeps Play free of shared state.
type Board struct {
	cells  [Rows][Columns]Player
	height [Columns]int
	filled int
}

// Cell returns the disc at the given row and column, or Nobody.
func (b *Board) Cell(row, col int) Player {
	return b.cells[row][col]
}

// ColumnFull reports whether a disc can no longer be dropped into col.
func (b *Board) ColumnFull(col Move) bool {
	return b.height[col] == Rows
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return b.filled == Rows*Columns
}

// drop places p's disc into col and reports the row it landed on.
// The caller must check ColumnFull first.
func (b *Board) drop(col Move, p Player) int {
	row := b.height[col]
	b.cells[row][col] = p
	b.height[col]++
	b.filled++
	return row
}

// winner scans rows, columns and both diagonals for four in a row and
// returns the owning player, or Nobody.
func (b *Board) winner() Player {
	// Rows
	for y := 0; y < Rows; y++ {
		for x := 0; x+connect <= Columns; x++ {
			if p := b.cells[y][x]; p != Nobody &&
				p == b.cells[y][x+1] && p == b.cells[y][x+2] && p == b.cells[y][x+3] {
				return p
			}
		}
	}
	// Columns
	for x := 0; x < Columns; x++ {
		for y := 0; y+connect <= Rows; y++ {
			if p := b.cells[y][x]; p != Nobody &&
				p == b.cells[y+1][x] && p == b.cells[y+2][x] && p == b.cells[y+3][x] {
				return p
			}
		}
	}
	// Rising diagonals
	for y := 0; y+connect <= Rows; y++ {
		for x := 0; x+connect <= Columns; x++ {
			if p := b.cells[y][x]; p != Nobody &&
				p == b.cells[y+1][x+1] && p == b.cells[y+2][x+2] && p == b.cells[y+3][x+3] {
				return p
			}
		}
	}
	// Falling diagonals
	for y := 0; y+connect <= Rows; y++ {
		for x := connect - 1; x < Columns; x++ {
			if p := b.cells[y][x]; p != Nobody &&
				p == b.cells[y+1][x-1] && p == b.cells[y+2][x-2] && p == b.cells[y+3][x-3] {
				return p
			}
		}
	}
	return Nobody
}
