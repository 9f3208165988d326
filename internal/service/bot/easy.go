package bot

import (
	"math/rand"

	"github.com/iamasit07/lineup/internal/domain"
)

// RandomPolicy picks uniformly among the disc types still in stock, then
// uniformly among the columns that disc can enter.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(src rand.Source) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(src)}
}

func (p *RandomPolicy) Choose(g *domain.Game) (domain.DiscType, int, bool) {
	player := g.CurrentPlayer()
	board := g.Board()

	if !player.HasAnyDisc() {
		return domain.Ordinary, -1, false
	}

	available := []domain.DiscType{}
	for _, t := range domain.DiscTypes {
		if player.Count(t) > 0 {
			available = append(available, t)
		}
	}
	discType := available[p.rng.Intn(len(available))]

	// boring discs clear the column first, so any column works
	columns := board.OpenColumns()
	if discType == domain.Boring {
		columns = make([]int, board.Cols())
		for i := range columns {
			columns[i] = i
		}
	}
	if len(columns) == 0 {
		return discType, -1, false
	}
	return discType, columns[p.rng.Intn(len(columns))], true
}
