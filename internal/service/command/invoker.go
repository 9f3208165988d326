package command

import (
	"go.uber.org/zap"
)

// Invoker runs commands and keeps the ones that succeeded, in order.
type Invoker struct {
	history []Command
	logger  *zap.Logger
}

func NewInvoker(logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{logger: logger}
}

func (i *Invoker) ExecuteCommand(cmd Command) bool {
	if !cmd.CanExecute() {
		i.logger.Debug("command rejected", zap.String("command", cmd.Description()))
		return false
	}

	ok := cmd.Execute()
	if ok {
		i.history = append(i.history, cmd)
		i.logger.Info("executed", zap.String("command", cmd.Description()), zap.Int("history", len(i.history)))
	}
	return ok
}

// UndoLast asks the latest command to undo itself. History only shrinks
// when the undo succeeds, which no command currently supports.
func (i *Invoker) UndoLast() error {
	if len(i.history) == 0 {
		return nil
	}
	last := i.history[len(i.history)-1]
	if err := last.Undo(); err != nil {
		return err
	}
	i.history = i.history[:len(i.history)-1]
	return nil
}

func (i *Invoker) History() []Command {
	out := make([]Command, len(i.history))
	copy(out, i.history)
	return out
}

func (i *Invoker) Descriptions() []string {
	out := make([]string, len(i.history))
	for n, cmd := range i.history {
		out[n] = cmd.Description()
	}
	return out
}

func (i *Invoker) Count() int {
	return len(i.history)
}
