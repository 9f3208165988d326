package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iamasit07/lineup/internal/domain"
)

// Action is the integer tag an action selector hands to the engine.
type Action int

const (
	ActionPlaceOrdinary Action = iota + 1
	ActionPlaceBoring
	ActionPlaceMagnetic
	ActionSave
	ActionHelp
	ActionExit
)

const (
	ErrUnknownAction   domain.Error = "unknown action"
	ErrSaveUnavailable domain.Error = "no save slot configured"
	ErrNoMovesLeft     domain.Error = "computer player has no legal move"
	ErrBadScript       domain.Error = "malformed move script"
)

func (a Action) Valid() bool {
	return a >= ActionPlaceOrdinary && a <= ActionExit
}

// DiscType maps a place action to its disc type.
func (a Action) DiscType() (domain.DiscType, bool) {
	switch a {
	case ActionPlaceOrdinary:
		return domain.Ordinary, true
	case ActionPlaceBoring:
		return domain.Boring, true
	case ActionPlaceMagnetic:
		return domain.Magnetic, true
	}
	return domain.Ordinary, false
}

func ActionFor(t domain.DiscType) Action {
	switch t {
	case domain.Boring:
		return ActionPlaceBoring
	case domain.Magnetic:
		return ActionPlaceMagnetic
	default:
		return ActionPlaceOrdinary
	}
}

func (a Action) String() string {
	switch a {
	case ActionPlaceOrdinary:
		return "place-ordinary"
	case ActionPlaceBoring:
		return "place-boring"
	case ActionPlaceMagnetic:
		return "place-magnetic"
	case ActionSave:
		return "save"
	case ActionHelp:
		return "help"
	case ActionExit:
		return "exit"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Intent is one request from a player. Column is 0-based and only used by
// place actions.
type Intent struct {
	Action Action
	Column int
}

// ParseScript reads a test-mode move list such as "O4,B5,M3": a disc letter
// followed by a 1-based column. Nothing is applied if any token is bad.
func ParseScript(script string) ([]Intent, error) {
	var intents []Intent
	for _, raw := range strings.Split(script, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		if len(tok) < 2 {
			return nil, errors.Wrapf(ErrBadScript, "token %q", tok)
		}

		var action Action
		switch strings.ToUpper(tok[:1]) {
		case "O":
			action = ActionPlaceOrdinary
		case "B":
			action = ActionPlaceBoring
		case "M":
			action = ActionPlaceMagnetic
		default:
			return nil, errors.Wrapf(ErrBadScript, "token %q: unknown disc %q", tok, tok[:1])
		}

		col, err := strconv.Atoi(tok[1:])
		if err != nil || col < 1 {
			return nil, errors.Wrapf(ErrBadScript, "token %q: bad column", tok)
		}
		intents = append(intents, Intent{Action: action, Column: col - 1})
	}
	if len(intents) == 0 {
		return nil, errors.Wrap(ErrBadScript, "no moves")
	}
	return intents, nil
}
