package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/lineup/internal/domain"
)

const emptyCell = "   "

// cellText is the owner's symbol and the disc letter, padded to the cell width.
func cellText(d *domain.Disc) string {
	if d == nil {
		return emptyCell
	}
	return fmt.Sprintf("%-3s", d.Symbol+d.Type.Letter())
}

// RenderBoard draws the grid top row first with 1-based column numbers underneath.
func RenderBoard(w io.Writer, b *domain.Board) {
	var sb strings.Builder
	sb.WriteString("\n")
	for r := 0; r < b.Rows(); r++ {
		sb.WriteString("|")
		for c := 0; c < b.Cols(); c++ {
			sb.WriteString(cellText(b.CellAt(r, c)))
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for c := 0; c < b.Cols(); c++ {
		fmt.Fprintf(&sb, "%-3d ", c+1)
	}
	sb.WriteString("\n\n")
	io.WriteString(w, sb.String())
}

// RenderInventory prints what a player still holds.
func RenderInventory(w io.Writer, p *domain.Player) {
	kind := "Human"
	if p.IsComputer {
		kind = "Computer"
	}
	fmt.Fprintf(w, "Player %d (%s, %s): Ordinary=%d Boring=%d Magnetic=%d\n",
		p.ID, p.Symbol, kind,
		p.Count(domain.Ordinary), p.Count(domain.Boring), p.Count(domain.Magnetic))
}
