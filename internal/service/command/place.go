package command

import (
	"fmt"

	"github.com/iamasit07/lineup/internal/domain"
)

type PlaceDiscCommand struct {
	irreversible
	game   *domain.Game
	player *domain.Player
	disc   *domain.Disc
	column int
}

// NewPlaceDiscCommand drops disc for the current player. column is 0-based.
func NewPlaceDiscCommand(game *domain.Game, disc *domain.Disc, column int) *PlaceDiscCommand {
	return &PlaceDiscCommand{
		game:   game,
		player: game.CurrentPlayer(),
		disc:   disc,
		column: column,
	}
}

func (c *PlaceDiscCommand) Description() string {
	if c.disc == nil {
		return fmt.Sprintf("Place nothing in column %d by Player %d", c.column+1, c.player.ID)
	}
	return fmt.Sprintf("Place %s disc in column %d by Player %d", c.disc.Type, c.column+1, c.player.ID)
}

func (c *PlaceDiscCommand) CanExecute() bool {
	return c.disc != nil &&
		c.game.Board().IsValidColumn(c.column) &&
		c.player.Count(c.disc.Type) > 0 &&
		!c.game.EndGame()
}

// Execute places the disc with the strategy for its type and takes it out
// of the player's inventory once it is on the board.
func (c *PlaceDiscCommand) Execute() bool {
	if !c.CanExecute() {
		return false
	}
	if !c.game.PlaceDisc(c.disc, c.column) {
		return false
	}
	c.player.DeductDisc(c.disc.Type)
	return true
}

// Failure explains why the command cannot run or did not place its disc.
func (c *PlaceDiscCommand) Failure() error {
	switch {
	case c.disc == nil || c.player.Count(c.disc.Type) <= 0:
		return domain.ErrInventoryExhausted
	case !c.game.Board().IsValidColumn(c.column):
		return domain.ErrInvalidColumn
	case c.game.EndGame():
		return domain.ErrGameOver
	default:
		return domain.ErrColumnFull
	}
}
