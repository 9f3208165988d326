package game

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/domain"
	"github.com/iamasit07/lineup/internal/service/bot"
	"github.com/iamasit07/lineup/internal/service/command"
	"github.com/iamasit07/lineup/pkg/uid"
)

// TurnResult describes what one Step did.
type TurnResult struct {
	Player   domain.PlayerID
	Action   Action
	Command  string
	Executed bool
	Switched bool
	Status   domain.GameStatus
	Winner   domain.PlayerID
	Err      error
}

// Frontend supplies human intents and shows what happened. Reading input
// and drawing the grid live behind it.
type Frontend interface {
	NextIntent(ctx context.Context, g *domain.Game) (Intent, error)
	ShowTurn(g *domain.Game, res TurnResult)
}

type Options struct {
	Store   command.GameStore
	Slot    string
	Policy  bot.Policy
	HelpOut io.Writer
	Exit    func(code int)
	Logger  *zap.Logger
}

// Service drives one match: it turns intents into commands, runs them
// through the invoker and decides whether the turn passes.
type Service struct {
	MatchID string

	game    *domain.Game
	invoker *command.Invoker
	opts    Options
	logger  *zap.Logger
}

func NewService(g *domain.Game, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	matchID := uid.GenerateMatchID()
	logger = logger.With(zap.String("component", "game"), zap.String("match_id", matchID))

	return &Service{
		MatchID: matchID,
		game:    g,
		invoker: command.NewInvoker(logger),
		opts:    opts,
		logger:  logger,
	}
}

func (s *Service) Game() *domain.Game        { return s.game }
func (s *Service) Invoker() *command.Invoker { return s.invoker }

// BuildCommand maps an intent to a command. A place intent for an empty
// inventory slot yields no command at all.
func (s *Service) BuildCommand(ctx context.Context, in Intent) (command.Command, error) {
	if discType, ok := in.Action.DiscType(); ok {
		disc, ok := s.game.CurrentPlayer().MakeDisc(discType)
		if !ok {
			return nil, domain.ErrInventoryExhausted
		}
		return command.NewPlaceDiscCommand(s.game, disc, in.Column), nil
	}

	switch in.Action {
	case ActionSave:
		return command.NewSaveGameCommand(ctx, s.game, s.opts.Store, s.opts.Slot, s.logger), nil
	case ActionHelp:
		return command.NewShowHelpCommand(s.opts.HelpOut, s.game.WinningThreshold()), nil
	case ActionExit:
		return command.NewExitGameCommand(s.opts.Exit), nil
	}
	return nil, ErrUnknownAction
}

// Step runs one intent for the current player. The turn passes only after
// a placement that succeeded and did not end the game.
func (s *Service) Step(ctx context.Context, in Intent) TurnResult {
	res := TurnResult{Player: s.game.CurrentPlayer().ID, Action: in.Action}

	cmd, err := s.BuildCommand(ctx, in)
	if err != nil {
		res.Err = err
		return s.finish(res)
	}
	res.Command = cmd.Description()
	res.Executed = s.invoker.ExecuteCommand(cmd)

	switch c := cmd.(type) {
	case *command.PlaceDiscCommand:
		if !res.Executed {
			res.Err = c.Failure()
		} else if !s.game.EndGame() {
			s.game.SwitchTurn()
			res.Switched = true
		}
	case *command.SaveGameCommand:
		if !res.Executed {
			res.Err = c.Err()
			if res.Err == nil {
				res.Err = ErrSaveUnavailable
			}
		}
	}
	return s.finish(res)
}

func (s *Service) finish(res TurnResult) TurnResult {
	res.Status = s.game.Status()
	res.Winner, _ = s.game.Winner()

	fields := []zap.Field{
		zap.Int("player", int(res.Player)),
		zap.Stringer("action", res.Action),
		zap.Bool("executed", res.Executed),
		zap.Bool("switched", res.Switched),
		zap.String("status", string(res.Status)),
	}
	if res.Err != nil {
		s.logger.Debug("turn retained", append(fields, zap.Error(res.Err))...)
	} else {
		s.logger.Debug("turn played", fields...)
	}
	if res.Status != domain.StatusActive {
		s.logger.Info("game over", zap.String("status", string(res.Status)), zap.Int("winner", int(res.Winner)))
	}
	return res
}

// ComputerIntent asks the bot policy for the current player's move.
func (s *Service) ComputerIntent() (Intent, error) {
	if s.opts.Policy == nil {
		return Intent{}, ErrNoMovesLeft
	}
	discType, col, ok := s.opts.Policy.Choose(s.game)
	if !ok {
		return Intent{}, ErrNoMovesLeft
	}
	return Intent{Action: ActionFor(discType), Column: col}, nil
}

// Run loops until the game ends. Computer seats are played by the policy,
// human seats by the frontend. A failed intent leaves the same player on
// turn and the loop simply asks again.
func (s *Service) Run(ctx context.Context, fe Frontend) error {
	s.logger.Info("match started",
		zap.Int("rows", s.game.Board().Rows()),
		zap.Int("cols", s.game.Board().Cols()),
		zap.Int("threshold", s.game.WinningThreshold()))

	for !s.game.EndGame() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			in  Intent
			err error
		)
		if s.game.CurrentPlayer().IsComputer {
			in, err = s.ComputerIntent()
		} else {
			in, err = fe.NextIntent(ctx, s.game)
		}
		if err != nil {
			return err
		}

		fe.ShowTurn(s.game, s.Step(ctx, in))
	}
	return nil
}

// RunSequence applies a parsed move script in order, alternating players
// as the engine decides, and stops once the game is over.
func (s *Service) RunSequence(ctx context.Context, script string) ([]TurnResult, error) {
	intents, err := ParseScript(script)
	if err != nil {
		return nil, err
	}

	results := make([]TurnResult, 0, len(intents))
	for _, in := range intents {
		if s.game.EndGame() {
			break
		}
		results = append(results, s.Step(ctx, in))
	}
	return results, nil
}
