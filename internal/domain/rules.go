package domain

import "math"

// Directions are the six line vectors tried from every occupied cell. Since
// every cell is tried as a line start, they cover horizontal, vertical and
// both diagonals.
var Directions = [6][2]int{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{1, -1},
}

// WinningThreshold derives the line length from the board area. It is not
// clamped: tiny boards give 0 or 1 and large ones can exceed both sides.
func WinningThreshold(rows, cols int) int {
	return int(math.Floor(float64(rows*cols) * ThresholdRatio))
}

// CountRun counts same-owner discs starting at (row, col), the start cell
// included, stepping one way along (deltaRow, deltaCol) for at most limit-1
// extra steps.
func CountRun(board *Board, row, col, deltaRow, deltaCol, limit int) int {
	start := board.CellAt(row, col)
	if start == nil {
		return 0
	}

	count := 1
	r, c := row+deltaRow, col+deltaCol
	for step := 1; step < limit; step++ {
		cell := board.CellAt(r, c)
		if cell == nil || cell.PlayerID != start.PlayerID {
			break
		}
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// Evaluate scans the board row-major and returns the owner of the first
// occupied cell that starts a run of threshold discs.
func Evaluate(board *Board, threshold int) (PlayerID, bool) {
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(row, col)
			if cell == nil {
				continue
			}
			for _, dir := range Directions {
				if CountRun(board, row, col, dir[0], dir[1], threshold) >= threshold {
					return cell.PlayerID, true
				}
			}
		}
	}
	return Empty, false
}
