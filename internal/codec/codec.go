// Package codec converts a game to and from its persisted JSON record.
//
// Field names are a stable contract shared with every save slot backend.
// Required fields are pointers so a missing key can be told apart from a
// zero value.
package codec

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/iamasit07/lineup/internal/domain"
)

type DiscDoc struct {
	Type     *int   `json:"type"`
	PlayerID *int   `json:"playerId"`
	Number   int    `json:"number"`
	Symbol   string `json:"symbol"`
}

type PlayerDoc struct {
	PlayerID     *int     `json:"playerId"`
	IsComputer   bool     `json:"isComputer"`
	OrdinaryDisc *DiscDoc `json:"ordinaryDisc"`
	BoringDisc   *DiscDoc `json:"boringDisc"`
	MagneticDisc *DiscDoc `json:"magneticDisc"`
}

type Document struct {
	Rows          *int         `json:"rows"`
	Cols          *int         `json:"cols"`
	Grid          [][]*DiscDoc `json:"grid"`
	Player1       *PlayerDoc   `json:"player1"`
	Player2       *PlayerDoc   `json:"player2"`
	CurrentPlayer *PlayerDoc   `json:"currentPlayer"`
}

func intPtr(v int) *int { return &v }

func encodeDisc(d domain.Disc) *DiscDoc {
	return &DiscDoc{
		Type:     intPtr(int(d.Type)),
		PlayerID: intPtr(int(d.PlayerID)),
		Number:   d.Number,
		Symbol:   d.Symbol,
	}
}

func encodePlayer(p *domain.Player) *PlayerDoc {
	return &PlayerDoc{
		PlayerID:     intPtr(int(p.ID)),
		IsComputer:   p.IsComputer,
		OrdinaryDisc: encodeDisc(p.Slot(domain.Ordinary)),
		BoringDisc:   encodeDisc(p.Slot(domain.Boring)),
		MagneticDisc: encodeDisc(p.Slot(domain.Magnetic)),
	}
}

// Encode snapshots the game into a document.
func Encode(g *domain.Game) *Document {
	b := g.Board()
	grid := make([][]*DiscDoc, b.Rows())
	for row := range grid {
		grid[row] = make([]*DiscDoc, b.Cols())
		for col := range grid[row] {
			if cell := b.CellAt(row, col); cell != nil {
				grid[row][col] = encodeDisc(*cell)
			}
		}
	}

	return &Document{
		Rows:          intPtr(b.Rows()),
		Cols:          intPtr(b.Cols()),
		Grid:          grid,
		Player1:       encodePlayer(g.Player1()),
		Player2:       encodePlayer(g.Player2()),
		CurrentPlayer: encodePlayer(g.CurrentPlayer()),
	}
}

func decodeDisc(doc *DiscDoc) (*domain.Disc, error) {
	if doc == nil || doc.Type == nil || doc.PlayerID == nil {
		return nil, errors.Wrap(domain.ErrDecode, "disc is missing type or playerId")
	}
	owner := domain.PlayerID(*doc.PlayerID)
	if !owner.Valid() {
		return nil, errors.Wrapf(domain.ErrDecode, "disc owner %d", *doc.PlayerID)
	}

	disc, ok := domain.CreateDisc(domain.StandardDiscFactory{}, domain.DiscType(*doc.Type), owner, doc.Number)
	if !ok {
		return nil, errors.Wrapf(domain.ErrDecode, "unknown disc type %d", *doc.Type)
	}
	if doc.Symbol != "" {
		disc.Symbol = doc.Symbol
	}
	return disc, nil
}

func decodeSlot(doc *DiscDoc, want domain.DiscType, owner domain.PlayerID) (int, error) {
	disc, err := decodeDisc(doc)
	if err != nil {
		return 0, errors.Wrapf(err, "%s slot", want)
	}
	if disc.Type != want || disc.PlayerID != owner {
		return 0, errors.Wrapf(domain.ErrDecode, "%s slot holds %s disc of player %d", want, disc.Type, disc.PlayerID)
	}
	if disc.Number < 0 {
		return 0, errors.Wrapf(domain.ErrDecode, "%s slot has negative count %d", want, disc.Number)
	}
	return disc.Number, nil
}

func decodePlayer(doc *PlayerDoc, want domain.PlayerID) (*domain.Player, error) {
	if doc == nil || doc.PlayerID == nil {
		return nil, errors.Wrapf(domain.ErrDecode, "player %d is missing", want)
	}
	if domain.PlayerID(*doc.PlayerID) != want {
		return nil, errors.Wrapf(domain.ErrDecode, "player%d has playerId %d", want, *doc.PlayerID)
	}

	ordinary, err := decodeSlot(doc.OrdinaryDisc, domain.Ordinary, want)
	if err != nil {
		return nil, err
	}
	boring, err := decodeSlot(doc.BoringDisc, domain.Boring, want)
	if err != nil {
		return nil, err
	}
	magnetic, err := decodeSlot(doc.MagneticDisc, domain.Magnetic, want)
	if err != nil {
		return nil, err
	}
	return domain.NewPlayer(want, doc.IsComputer, ordinary, boring, magnetic), nil
}

// Decode rebuilds a game. Every structural problem is reported as a
// wrapped domain.ErrDecode.
func Decode(doc *Document) (*domain.Game, error) {
	if doc == nil || doc.Rows == nil || doc.Cols == nil {
		return nil, errors.Wrap(domain.ErrDecode, "missing board dimensions")
	}
	rows, cols := *doc.Rows, *doc.Cols

	// The grid shape must match before rows and cols size any allocation.
	if len(doc.Grid) != rows {
		return nil, errors.Wrapf(domain.ErrDecode, "grid has %d rows, want %d", len(doc.Grid), rows)
	}
	for row, cells := range doc.Grid {
		if len(cells) != cols {
			return nil, errors.Wrapf(domain.ErrDecode, "grid row %d has %d cells, want %d", row, len(cells), cols)
		}
	}

	board, err := domain.NewBoard(rows, cols)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrDecode, "board %dx%d: %v", rows, cols, err)
	}
	for row, cells := range doc.Grid {
		for col, cell := range cells {
			if cell == nil {
				continue
			}
			disc, err := decodeDisc(cell)
			if err != nil {
				return nil, errors.Wrapf(err, "cell (%d,%d)", row, col)
			}
			board.SetCell(row, col, disc)
		}
	}

	player1, err := decodePlayer(doc.Player1, domain.Player1)
	if err != nil {
		return nil, err
	}
	player2, err := decodePlayer(doc.Player2, domain.Player2)
	if err != nil {
		return nil, err
	}

	if doc.CurrentPlayer == nil || doc.CurrentPlayer.PlayerID == nil {
		return nil, errors.Wrap(domain.ErrDecode, "missing currentPlayer")
	}
	g, err := domain.RestoreGame(board, player1, player2, domain.PlayerID(*doc.CurrentPlayer.PlayerID))
	if err != nil {
		return nil, errors.Wrapf(err, "currentPlayer %d", *doc.CurrentPlayer.PlayerID)
	}
	return g, nil
}

func Marshal(g *domain.Game) ([]byte, error) {
	data, err := json.MarshalIndent(Encode(g), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal game record")
	}
	return data, nil
}

func Unmarshal(data []byte) (*domain.Game, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(domain.ErrDecode, "parse game record: %v", err)
	}
	return Decode(&doc)
}
