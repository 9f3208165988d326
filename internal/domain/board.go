package domain

// Board is a fixed rows x cols grid. Row 0 is the top, rows-1 the bottom.
// A nil cell is empty.
type Board struct {
	rows  int
	cols  int
	cells [][]*Disc
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]*Disc, rows)
	for i := range cells {
		cells[i] = make([]*Disc, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) IsInBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.cols
}

// CellAt returns nil for an empty or out of range cell.
func (b *Board) CellAt(row, col int) *Disc {
	if !b.IsInBounds(row, col) {
		return nil
	}
	return b.cells[row][col]
}

// SetCell stores disc (nil clears the cell). It reports false when out of range.
func (b *Board) SetCell(row, col int, disc *Disc) bool {
	if !b.IsInBounds(row, col) {
		return false
	}
	b.cells[row][col] = disc
	return true
}

func (b *Board) swap(rowA, rowB, col int) {
	b.cells[rowA][col], b.cells[rowB][col] = b.cells[rowB][col], b.cells[rowA][col]
}

// LowestEmptyRow scans the column from the bottom up and returns the first
// empty row, or -1 if the column is full or out of range.
func (b *Board) LowestEmptyRow(col int) int {
	if !b.IsValidColumn(col) {
		return -1
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][col] == nil {
			return row
		}
	}
	return -1
}

func (b *Board) IsFull() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == nil {
				return false
			}
		}
	}
	return true
}

// OpenColumns lists the columns that still have an empty cell.
func (b *Board) OpenColumns() []int {
	open := []int{}
	for col := 0; col < b.cols; col++ {
		if b.LowestEmptyRow(col) >= 0 {
			open = append(open, col)
		}
	}
	return open
}
