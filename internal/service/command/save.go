package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/domain"
)

// GameStore persists a game under a named slot.
type GameStore interface {
	Save(ctx context.Context, slot string, g *domain.Game) error
	Load(ctx context.Context, slot string) (*domain.Game, error)
}

type SaveGameCommand struct {
	irreversible
	ctx    context.Context
	game   *domain.Game
	store  GameStore
	slot   string
	logger *zap.Logger
	err    error
}

func NewSaveGameCommand(ctx context.Context, game *domain.Game, store GameStore, slot string, logger *zap.Logger) *SaveGameCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveGameCommand{ctx: ctx, game: game, store: store, slot: slot, logger: logger}
}

func (c *SaveGameCommand) Description() string {
	return fmt.Sprintf("Save game to %s", c.slot)
}

func (c *SaveGameCommand) CanExecute() bool {
	return c.game != nil && c.store != nil && c.slot != ""
}

func (c *SaveGameCommand) Execute() bool {
	if !c.CanExecute() {
		return false
	}

	c.err = c.store.Save(c.ctx, c.slot, c.game)
	if c.err != nil {
		c.logger.Warn("failed to save game", zap.String("slot", c.slot), zap.Error(c.err))
		return false
	}
	c.logger.Info("game saved", zap.String("slot", c.slot))
	return true
}

// Err is the store error from the last Execute.
func (c *SaveGameCommand) Err() error {
	return c.err
}
