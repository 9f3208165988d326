package domain

import "fmt"

type DiscType int

const (
	Ordinary DiscType = iota
	Boring
	Magnetic
)

// DiscTypes lists every disc type in inventory order.
var DiscTypes = [...]DiscType{Ordinary, Boring, Magnetic}

func (t DiscType) Valid() bool {
	return t >= Ordinary && t <= Magnetic
}

func (t DiscType) String() string {
	switch t {
	case Ordinary:
		return "Ordinary"
	case Boring:
		return "Boring"
	case Magnetic:
		return "Magnetic"
	}
	return fmt.Sprintf("DiscType(%d)", int(t))
}

// Letter is the one-character tag used by move scripts and the grid renderer.
func (t DiscType) Letter() string {
	switch t {
	case Ordinary:
		return "O"
	case Boring:
		return "B"
	case Magnetic:
		return "M"
	}
	return "?"
}

// Disc is either a token placed on the board or, when held by a Player,
// an inventory slot whose Number is the remaining count.
type Disc struct {
	Type     DiscType
	PlayerID PlayerID
	Number   int
	Symbol   string
}

// DiscFactory builds discs by type. The codec dispatches decoded type tags through it.
type DiscFactory interface {
	CreateOrdinaryDisc(playerID PlayerID, number int) *Disc
	CreateBoringDisc(playerID PlayerID, number int) *Disc
	CreateMagneticDisc(playerID PlayerID, number int) *Disc
}

type StandardDiscFactory struct{}

func (StandardDiscFactory) CreateOrdinaryDisc(playerID PlayerID, number int) *Disc {
	return &Disc{Type: Ordinary, PlayerID: playerID, Number: number, Symbol: SymbolFor(playerID)}
}

func (StandardDiscFactory) CreateBoringDisc(playerID PlayerID, number int) *Disc {
	return &Disc{Type: Boring, PlayerID: playerID, Number: number, Symbol: SymbolFor(playerID)}
}

func (StandardDiscFactory) CreateMagneticDisc(playerID PlayerID, number int) *Disc {
	return &Disc{Type: Magnetic, PlayerID: playerID, Number: number, Symbol: SymbolFor(playerID)}
}

// CreateDisc dispatches on the type tag. ok is false for an unknown tag.
func CreateDisc(f DiscFactory, t DiscType, playerID PlayerID, number int) (*Disc, bool) {
	switch t {
	case Ordinary:
		return f.CreateOrdinaryDisc(playerID, number), true
	case Boring:
		return f.CreateBoringDisc(playerID, number), true
	case Magnetic:
		return f.CreateMagneticDisc(playerID, number), true
	}
	return nil, false
}
