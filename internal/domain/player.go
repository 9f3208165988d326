package domain

// Player owns one inventory slot per disc type. A slot is a Disc whose
// Number is the remaining count.
type Player struct {
	ID         PlayerID
	IsComputer bool
	Symbol     string
	inventory  [len(DiscTypes)]Disc
}

func NewPlayer(id PlayerID, isComputer bool, ordinary, boring, magnetic int) *Player {
	p := &Player{ID: id, IsComputer: isComputer, Symbol: SymbolFor(id)}
	counts := [len(DiscTypes)]int{ordinary, boring, magnetic}
	for i, t := range DiscTypes {
		p.inventory[i] = Disc{Type: t, PlayerID: id, Number: max(counts[i], 0), Symbol: p.Symbol}
	}
	return p
}

// NewStartingPlayer hands out the standard allotment for a board size.
func NewStartingPlayer(id PlayerID, isComputer bool, rows, cols int) *Player {
	return NewPlayer(id, isComputer, rows*cols/2, InitialBoring, InitialMagnetic)
}

func (p *Player) Count(t DiscType) int {
	if !t.Valid() {
		return 0
	}
	return p.inventory[t].Number
}

// Slot returns a copy of the inventory slot for t.
func (p *Player) Slot(t DiscType) Disc {
	if !t.Valid() {
		return Disc{Type: t, PlayerID: p.ID, Symbol: p.Symbol}
	}
	return p.inventory[t]
}

func (p *Player) HasAnyDisc() bool {
	for _, t := range DiscTypes {
		if p.Count(t) > 0 {
			return true
		}
	}
	return false
}

// MakeDisc yields a fresh token of type t without consuming stock.
// ok is false when the slot is empty.
func (p *Player) MakeDisc(t DiscType) (*Disc, bool) {
	if p.Count(t) <= 0 {
		return nil, false
	}
	return CreateDisc(StandardDiscFactory{}, t, p.ID, 1)
}

// DeductDisc consumes one disc of type t once it has reached the board.
func (p *Player) DeductDisc(t DiscType) bool {
	if p.Count(t) <= 0 {
		return false
	}
	p.inventory[t].Number--
	return true
}

func (p *Player) ReturnDisc(t DiscType) {
	if !t.Valid() {
		return
	}
	p.inventory[t].Number++
}
