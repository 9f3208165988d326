package command

import "os"

type ExitGameCommand struct {
	irreversible
	exit func(code int)
}

// NewExitGameCommand ends the session through exit, or os.Exit when nil.
func NewExitGameCommand(exit func(code int)) *ExitGameCommand {
	if exit == nil {
		exit = os.Exit
	}
	return &ExitGameCommand{exit: exit}
}

func (c *ExitGameCommand) Description() string {
	return "Exit Game."
}

func (c *ExitGameCommand) CanExecute() bool {
	return true
}

func (c *ExitGameCommand) Execute() bool {
	c.exit(0)
	return true
}
