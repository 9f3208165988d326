package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameInitialState(t *testing.T) {
	g, err := NewGame(6, 7, true)
	require.NoError(t, err)

	assert.Equal(t, 4, g.WinningThreshold())
	assert.Same(t, g.Player1(), g.CurrentPlayer())
	assert.Same(t, g.Player2(), g.Opponent())
	assert.False(t, g.Player1().IsComputer)
	assert.True(t, g.Player2().IsComputer)
	assert.Equal(t, StatusActive, g.Status())

	for _, p := range []*Player{g.Player1(), g.Player2()} {
		assert.Equal(t, 21, p.Count(Ordinary))
		assert.Equal(t, InitialBoring, p.Count(Boring))
		assert.Equal(t, InitialMagnetic, p.Count(Magnetic))
	}
}

func TestNewGameRejectsBadDimensions(t *testing.T) {
	_, err := NewGame(0, 7, false)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestSwitchTurnAlternates(t *testing.T) {
	g, err := NewGame(6, 7, false)
	require.NoError(t, err)

	g.SwitchTurn()
	assert.Equal(t, Player2, g.CurrentPlayer().ID)
	g.SwitchTurn()
	assert.Equal(t, Player1, g.CurrentPlayer().ID)
}

func TestBoringPlacementRefundsThroughGame(t *testing.T) {
	g, err := NewGame(6, 7, false)
	require.NoError(t, err)
	g.Board().SetCell(5, 3, ordinary(Player1))
	g.Board().SetCell(4, 3, ordinary(Player2))
	g.SwitchTurn()

	p1, p2 := g.Player1(), g.Player2()
	p1Ordinary, p2Ordinary, p2Boring := p1.Count(Ordinary), p2.Count(Ordinary), p2.Count(Boring)

	disc, ok := p2.MakeDisc(Boring)
	require.True(t, ok)
	require.True(t, g.PlaceDisc(disc, 3))
	require.True(t, p2.DeductDisc(Boring))

	assert.Equal(t, Boring, g.Board().CellAt(5, 3).Type)
	assert.Nil(t, g.Board().CellAt(4, 3))
	assert.Equal(t, p1Ordinary+1, p1.Count(Ordinary))
	assert.Equal(t, p2Ordinary+1, p2.Count(Ordinary))
	assert.Equal(t, p2Boring-1, p2.Count(Boring))
}

func TestGameStatus(t *testing.T) {
	g, err := NewGame(6, 7, false)
	require.NoError(t, err)

	drawPattern(g.Board())
	assert.Equal(t, StatusDraw, g.Status())
	assert.True(t, g.EndGame())

	g.Board().SetCell(0, 0, ordinary(Player1))
	g.Board().SetCell(0, 1, ordinary(Player1))
	g.Board().SetCell(0, 2, ordinary(Player1))
	g.Board().SetCell(0, 3, ordinary(Player1))
	winner, ok := g.Winner()
	assert.True(t, ok)
	assert.Equal(t, Player1, winner)
	assert.Equal(t, StatusWon, g.Status())
}

func TestRestoreGameLinksCurrentPlayer(t *testing.T) {
	b := newTestBoard(t, 6, 7)
	p1 := NewPlayer(Player1, false, 3, 1, 0)
	p2 := NewPlayer(Player2, true, 4, 2, 2)

	g, err := RestoreGame(b, p1, p2, Player2)
	require.NoError(t, err)
	assert.Same(t, p2, g.CurrentPlayer())
	assert.Equal(t, 4, g.WinningThreshold())

	_, err = RestoreGame(b, p1, p2, Empty)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = RestoreGame(b, p2, p1, Player1)
	assert.ErrorIs(t, err, ErrDecode)
}
