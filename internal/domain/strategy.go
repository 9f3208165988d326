package domain

// PlacementStrategy drops disc into column. It reports false, leaving the
// board untouched, when the column is out of range or the drop is impossible.
type PlacementStrategy interface {
	Place(board *Board, disc *Disc, column int) bool
}

// DiscReturner refunds a disc removed from the board to its owner's inventory.
type DiscReturner interface {
	ReturnDisc(owner PlayerID, t DiscType)
}

type OrdinaryStrategy struct{}

func (OrdinaryStrategy) Place(board *Board, disc *Disc, column int) bool {
	return drop(board, disc, column) >= 0
}

// drop is the gravity step shared by ordinary and magnetic discs.
func drop(board *Board, disc *Disc, column int) int {
	row := board.LowestEmptyRow(column)
	if row < 0 {
		return -1
	}
	board.SetCell(row, column, disc)
	return row
}

// BoringStrategy empties the whole column, refunding each removed disc to
// its own owner, then settles on the bottom row.
type BoringStrategy struct {
	Returns DiscReturner
}

func (s BoringStrategy) Place(board *Board, disc *Disc, column int) bool {
	if !board.IsValidColumn(column) {
		return false
	}

	for row := 0; row < board.Rows(); row++ {
		removed := board.CellAt(row, column)
		if removed == nil {
			continue
		}
		board.SetCell(row, column, nil)
		if s.Returns != nil && removed.PlayerID.Valid() {
			s.Returns.ReturnDisc(removed.PlayerID, removed.Type)
		}
	}

	board.SetCell(board.Rows()-1, column, disc)
	return true
}

// MagneticStrategy drops like an ordinary disc, then looks below the landing
// row. Only ordinary discs take part: the first one owned by the mover is
// nearestOwn, and opponent discs update lastOpponent until nearestOwn is
// found. When both exist and nearestOwn lies deeper, the two swap places.
type MagneticStrategy struct{}

func (MagneticStrategy) Place(board *Board, disc *Disc, column int) bool {
	landed := drop(board, disc, column)
	if landed < 0 {
		return false
	}

	mover := disc.PlayerID
	nearestOwn, lastOpponent := -1, -1
	for row := landed + 1; row < board.Rows(); row++ {
		cell := board.CellAt(row, column)
		if cell == nil || cell.Type != Ordinary {
			continue
		}
		if cell.PlayerID == mover {
			if nearestOwn == -1 {
				nearestOwn = row
			}
		} else if nearestOwn == -1 {
			lastOpponent = row
		}
	}

	if nearestOwn != -1 && lastOpponent != -1 && nearestOwn > lastOpponent {
		board.swap(nearestOwn, lastOpponent, column)
	}
	return true
}

// StrategyFor picks the placement algorithm for a disc type.
func StrategyFor(t DiscType, returns DiscReturner) PlacementStrategy {
	switch t {
	case Boring:
		return BoringStrategy{Returns: returns}
	case Magnetic:
		return MagneticStrategy{}
	default:
		return OrdinaryStrategy{}
	}
}
