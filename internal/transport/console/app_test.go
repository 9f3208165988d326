package console

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/lineup/internal/domain"
	"github.com/iamasit07/lineup/internal/service/bot"
)

type memoryStore struct {
	games map[string]*domain.Game
}

func (s *memoryStore) Save(_ context.Context, slot string, g *domain.Game) error {
	if s.games == nil {
		s.games = map[string]*domain.Game{}
	}
	s.games[slot] = g
	return nil
}

func (s *memoryStore) Load(_ context.Context, slot string) (*domain.Game, error) {
	g, ok := s.games[slot]
	if !ok {
		return nil, domain.ErrNoSavedGame
	}
	return g, nil
}

// stampedStore also reports when a slot was written.
type stampedStore struct {
	memoryStore
	at time.Time
}

func (s *stampedStore) UpdatedAt(_ context.Context, slot string) (time.Time, error) {
	if _, ok := s.games[slot]; !ok {
		return time.Time{}, domain.ErrNoSavedGame
	}
	return s.at, nil
}

// lines joins answers into console input.
func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func TestAppNewGameVerticalWin(t *testing.T) {
	input := lines(
		"2", "1", "", "", // new game, PvP, default 6x7
		"1", "1", "1", "2",
		"1", "1", "1", "2",
		"1", "1", "1", "2",
		"1", "1",
	)
	c, out := newTestConsole(input)
	app := NewApp(c, &memoryStore{}, nil, Settings{Slot: "record.json"}, nil, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Player 1 (@) wins!")
	assert.Contains(t, out.String(), "7. Place Ordinary disc in column 1 by Player 1")
}

func TestAppLoadMissing(t *testing.T) {
	c, out := newTestConsole(lines("1"))
	app := NewApp(c, &memoryStore{}, nil, Settings{Slot: "record.json"}, nil, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Cannot load the game record. please create a new game.")
}

func TestAppLoadSaveAndExit(t *testing.T) {
	store := &memoryStore{}
	g, err := domain.NewGame(6, 7, false)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "slot", g))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var exitCode = -1
	exit := func(code int) {
		exitCode = code
		cancel()
	}

	c, out := newTestConsole(lines("1", "4", "5", "6"))
	app := NewApp(c, store, nil, Settings{Slot: "slot"}, exit, nil)

	err = app.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, exitCode)
	text := out.String()
	assert.Contains(t, text, "Loaded game from slot.")
	assert.Contains(t, text, "Game saved.")
	assert.Contains(t, text, "============= HELP =============")
	assert.Contains(t, text, "1. Save game to slot\n  2. Show help information\n")
}

func TestAppLoadShowsSaveTime(t *testing.T) {
	store := &stampedStore{at: time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)}
	g, err := domain.NewGame(6, 7, false)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "record.json", g))

	c, out := newTestConsole(lines("1"))
	app := NewApp(c, store, nil, Settings{Slot: "record.json"}, nil, nil)

	assert.ErrorIs(t, app.Run(context.Background()), io.EOF)
	assert.Contains(t, out.String(), "Loaded game from record.json (saved 2026-03-14 09:26:53).")
}

func TestAppPlayerVsComputer(t *testing.T) {
	c, out := newTestConsole(lines("2", "2", "", "", "1", "4"))
	policy := bot.NewRandomPolicy(rand.NewSource(1))
	app := NewApp(c, &memoryStore{}, policy, Settings{Slot: "record.json"}, nil, nil)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Computer: Place ")
	assert.Contains(t, out.String(), "by Player 2")
}

func TestAppTestMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "vertical win",
			input: lines("3", "", "", "O1,O2,O1,O2,O1,O2,O1"),
			want:  []string{"Move 7: Place Ordinary disc in column 1 by Player 1", "Player 1 (@) wins!"},
		},
		{
			name:  "failed move keeps player",
			input: lines("3", "", "", "O9,O1"),
			want:  []string{"Move 1: Invalid column.", "Move 2: Place Ordinary disc in column 1 by Player 1"},
		},
		{
			name:  "malformed script",
			input: lines("3", "", "", "X1"),
			want:  []string{"Invalid test sequence"},
		},
		{
			name:  "empty script",
			input: lines("3", "", "", ""),
			want:  []string{"No test input provided."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			app := NewApp(c, nil, nil, Settings{}, nil, nil)

			require.NoError(t, app.Run(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
