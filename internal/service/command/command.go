// Package command wraps every player intent as a Command that an Invoker
// checks, runs and records.
package command

import (
	"errors"
)

// Command is one player intent. Undo and Redo are part of the contract but
// no command keeps the state needed to reverse itself.
type Command interface {
	Execute() bool
	CanExecute() bool
	Undo() error
	Redo() error
	Description() string
}

// ErrUndoUnsupported is returned by every Undo and Redo.
var ErrUndoUnsupported = errors.ErrUnsupported

// irreversible provides the Undo/Redo half of Command.
type irreversible struct{}

func (irreversible) Undo() error { return ErrUndoUnsupported }
func (irreversible) Redo() error { return ErrUndoUnsupported }
