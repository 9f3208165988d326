package bot

import (
	"github.com/iamasit07/lineup/internal/domain"
)

// Policy decides the computer player's next disc and column. ok is false
// when the current player has no legal move left.
type Policy interface {
	Choose(g *domain.Game) (discType domain.DiscType, column int, ok bool)
}

var _ Policy = (*RandomPolicy)(nil)
