package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refundLog struct {
	refunds map[PlayerID][]DiscType
}

func (r *refundLog) ReturnDisc(owner PlayerID, t DiscType) {
	if r.refunds == nil {
		r.refunds = map[PlayerID][]DiscType{}
	}
	r.refunds[owner] = append(r.refunds[owner], t)
}

func TestOrdinaryDropFillsBottomUp(t *testing.T) {
	b := newTestBoard(t, 6, 7)
	s := OrdinaryStrategy{}

	for n := 0; n < 6; n++ {
		require.True(t, s.Place(b, ordinary(Player1), 2), "drop %d", n)
		assert.NotNil(t, b.CellAt(5-n, 2))
	}

	before := copyBoard(b)
	assert.False(t, s.Place(b, ordinary(Player2), 2))
	for row := 0; row < 6; row++ {
		assert.Equal(t, before.CellAt(row, 2).PlayerID, b.CellAt(row, 2).PlayerID)
	}
}

func TestOrdinaryRejectsInvalidColumn(t *testing.T) {
	b := newTestBoard(t, 6, 7)
	assert.False(t, OrdinaryStrategy{}.Place(b, ordinary(Player1), -1))
	assert.False(t, OrdinaryStrategy{}.Place(b, ordinary(Player1), 7))
	assert.Len(t, b.OpenColumns(), 7)
}

func TestBoringClearsColumnAndRefundsOwners(t *testing.T) {
	b := newTestBoard(t, 6, 7)
	b.SetCell(5, 4, ordinary(Player1))
	b.SetCell(4, 4, ordinary(Player2))
	b.SetCell(3, 4, StandardDiscFactory{}.CreateMagneticDisc(Player1, 1))

	refunds := &refundLog{}
	bore := StandardDiscFactory{}.CreateBoringDisc(Player2, 1)
	require.True(t, BoringStrategy{Returns: refunds}.Place(b, bore, 4))

	assert.Same(t, bore, b.CellAt(5, 4))
	for row := 0; row < 5; row++ {
		assert.Nil(t, b.CellAt(row, 4), "row %d", row)
	}
	assert.ElementsMatch(t, []DiscType{Magnetic, Ordinary}, refunds.refunds[Player1])
	assert.Equal(t, []DiscType{Ordinary}, refunds.refunds[Player2])
}

func TestBoringSucceedsOnEmptyAndFullColumns(t *testing.T) {
	b := newTestBoard(t, 3, 3)
	assert.True(t, BoringStrategy{}.Place(b, StandardDiscFactory{}.CreateBoringDisc(Player1, 1), 0))

	for row := 0; row < 3; row++ {
		b.SetCell(row, 1, ordinary(Player2))
	}
	refunds := &refundLog{}
	assert.True(t, BoringStrategy{Returns: refunds}.Place(b, StandardDiscFactory{}.CreateBoringDisc(Player1, 1), 1))
	assert.Len(t, refunds.refunds[Player2], 3)
	assert.False(t, BoringStrategy{Returns: refunds}.Place(b, StandardDiscFactory{}.CreateBoringDisc(Player1, 1), 3))
}

func TestMagneticPlacement(t *testing.T) {
	tests := []struct {
		name   string
		column map[int]*Disc // row -> disc, before the move
		landed int
		want   map[int]PlayerID
	}{
		{
			name:   "own disc below opponents swaps with the last opponent",
			column: map[int]*Disc{3: ordinary(Player2), 4: ordinary(Player2), 5: ordinary(Player1)},
			landed: 2,
			want:   map[int]PlayerID{3: Player2, 4: Player1, 5: Player2},
		},
		{
			name:   "own disc between opponents swaps with the one above it",
			column: map[int]*Disc{3: ordinary(Player2), 4: ordinary(Player1), 5: ordinary(Player2)},
			landed: 2,
			want:   map[int]PlayerID{3: Player1, 4: Player2, 5: Player2},
		},
		{
			name:   "own disc directly below does not swap",
			column: map[int]*Disc{4: ordinary(Player1), 5: ordinary(Player2)},
			landed: 3,
			want:   map[int]PlayerID{4: Player1, 5: Player2},
		},
		{
			name:   "special opponent discs are ignored",
			column: map[int]*Disc{4: StandardDiscFactory{}.CreateBoringDisc(Player2, 1), 5: ordinary(Player1)},
			landed: 3,
			want:   map[int]PlayerID{4: Player2, 5: Player1},
		},
		{
			name:   "no own disc means no swap",
			column: map[int]*Disc{4: ordinary(Player2), 5: ordinary(Player2)},
			landed: 3,
			want:   map[int]PlayerID{4: Player2, 5: Player2},
		},
		{
			name:   "gap below the landing row",
			column: map[int]*Disc{3: ordinary(Player2), 5: ordinary(Player1)},
			landed: 4,
			want:   map[int]PlayerID{3: Player2, 5: Player1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 6, 7)
			for row, d := range tt.column {
				b.SetCell(row, 1, d)
			}
			magnet := StandardDiscFactory{}.CreateMagneticDisc(Player1, 1)

			require.True(t, MagneticStrategy{}.Place(b, magnet, 1))
			assert.Same(t, magnet, b.CellAt(tt.landed, 1))
			for row, owner := range tt.want {
				require.NotNil(t, b.CellAt(row, 1), "row %d", row)
				assert.Equal(t, owner, b.CellAt(row, 1).PlayerID, "row %d", row)
			}
		})
	}
}

func TestMagneticFailsOnFullColumn(t *testing.T) {
	b := newTestBoard(t, 2, 2)
	b.SetCell(0, 0, ordinary(Player2))
	b.SetCell(1, 0, ordinary(Player1))

	assert.False(t, MagneticStrategy{}.Place(b, StandardDiscFactory{}.CreateMagneticDisc(Player1, 1), 0))
	assert.Equal(t, Player2, b.CellAt(0, 0).PlayerID)
	assert.Equal(t, Player1, b.CellAt(1, 0).PlayerID)
}

func TestStrategyFor(t *testing.T) {
	assert.IsType(t, OrdinaryStrategy{}, StrategyFor(Ordinary, nil))
	assert.IsType(t, BoringStrategy{}, StrategyFor(Boring, nil))
	assert.IsType(t, MagneticStrategy{}, StrategyFor(Magnetic, nil))
}
