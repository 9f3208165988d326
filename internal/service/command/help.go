package command

import (
	"fmt"
	"io"
)

type ShowHelpCommand struct {
	irreversible
	out       io.Writer
	threshold int
}

func NewShowHelpCommand(out io.Writer, winningThreshold int) *ShowHelpCommand {
	return &ShowHelpCommand{out: out, threshold: winningThreshold}
}

func (c *ShowHelpCommand) Description() string {
	return "Show help information"
}

func (c *ShowHelpCommand) CanExecute() bool {
	return true
}

func (c *ShowHelpCommand) Execute() bool {
	if c.out == nil {
		return true
	}
	fmt.Fprintln(c.out, "============= HELP =============")
	fmt.Fprintf(c.out, "Goal: Get consecutive %d discs in a row (horizontal, vertical, or diagonal)\n", c.threshold)
	fmt.Fprintln(c.out, "Disc Types:")
	fmt.Fprintln(c.out, "1. Ordinary(O): Falls to lowest available space.")
	fmt.Fprintln(c.out, "2. Boring(B): Removes all discs in column, then places itself.")
	fmt.Fprintln(c.out, "3. Magnetic(M): Special disc and pull up the nearest below disc.")
	return true
}
