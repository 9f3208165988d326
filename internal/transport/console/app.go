package console

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/lineup/internal/domain"
	"github.com/iamasit07/lineup/internal/service/bot"
	"github.com/iamasit07/lineup/internal/service/command"
	"github.com/iamasit07/lineup/internal/service/game"
)

const (
	MenuLoad = iota + 1
	MenuNew
	MenuTest
)

const (
	ModePlayerVsPlayer = iota + 1
	ModePlayerVsComputer
)

// savedAtReporter is implemented by stores that record when a slot was written.
type savedAtReporter interface {
	UpdatedAt(ctx context.Context, slot string) (time.Time, error)
}

type Settings struct {
	Slot        string
	DefaultRows int
	DefaultCols int
}

// App is the interactive session: start menu, then one match.
type App struct {
	console  *Console
	store    command.GameStore
	policy   bot.Policy
	settings Settings
	exit     func(code int)
	logger   *zap.Logger
}

func NewApp(c *Console, store command.GameStore, policy bot.Policy, settings Settings, exit func(code int), logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.DefaultRows < 1 {
		settings.DefaultRows = domain.DefaultRows
	}
	if settings.DefaultCols < 1 {
		settings.DefaultCols = domain.DefaultColumns
	}
	return &App{
		console:  c,
		store:    store,
		policy:   policy,
		settings: settings,
		exit:     exit,
		logger:   logger.With(zap.String("component", "console")),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.console.Println("Hello, Welcome to Lineup. Please select options:")
	option, err := a.console.ReadInt("1: Load Game\n2: New Game\n3: Test Mode\n>> ", MenuLoad, MenuTest)
	if err != nil {
		return err
	}

	switch option {
	case MenuLoad:
		return a.load(ctx)
	case MenuNew:
		return a.newGame(ctx)
	default:
		return a.testMode(ctx)
	}
}

func (a *App) load(ctx context.Context) error {
	if a.store == nil {
		a.console.Println("Cannot load the game record. please create a new game.")
		return nil
	}
	g, err := a.store.Load(ctx, a.settings.Slot)
	if err != nil {
		a.logger.Warn("load failed", zap.String("slot", a.settings.Slot), zap.Error(err))
		a.console.Println("Cannot load the game record. please create a new game.")
		return nil
	}
	if r, ok := a.store.(savedAtReporter); ok {
		if at, err := r.UpdatedAt(ctx, a.settings.Slot); err == nil {
			a.console.Printf("Loaded game from %s (saved %s).\n", a.settings.Slot, at.Format("2006-01-02 15:04:05"))
			return a.play(ctx, g)
		}
	}
	a.console.Printf("Loaded game from %s.\n", a.settings.Slot)
	return a.play(ctx, g)
}

func (a *App) newGame(ctx context.Context) error {
	a.console.Println("Select Game Mode:")
	mode, err := a.console.ReadInt("1: Player vs Player\n2: Player vs Computer\n>> ", ModePlayerVsPlayer, ModePlayerVsComputer)
	if err != nil {
		return err
	}
	rows, cols, err := a.console.ReadGridSize(a.settings.DefaultRows, a.settings.DefaultCols, domain.DefaultRows, domain.DefaultColumns)
	if err != nil {
		return err
	}
	g, err := domain.NewGame(rows, cols, mode == ModePlayerVsComputer)
	if err != nil {
		return err
	}
	return a.play(ctx, g)
}

func (a *App) play(ctx context.Context, g *domain.Game) error {
	var svc *game.Service
	svc = game.NewService(g, game.Options{
		Store:   a.store,
		Slot:    a.settings.Slot,
		Policy:  a.policy,
		HelpOut: a.console.Out(),
		Exit: func(code int) {
			a.console.ShowHistory(svc.Invoker().Descriptions())
			if a.exit != nil {
				a.exit(code)
			}
		},
		Logger: a.logger,
	})

	if err := svc.Run(ctx, a.console); err != nil {
		return err
	}
	a.console.ShowHistory(svc.Invoker().Descriptions())
	return nil
}

func (a *App) testMode(ctx context.Context) error {
	a.console.Println("=== TEST MODE ===")
	rows, cols, err := a.console.ReadGridSize(a.settings.DefaultRows, a.settings.DefaultCols, 1, 1)
	if err != nil {
		return err
	}
	g, err := domain.NewGame(rows, cols, false)
	if err != nil {
		return err
	}

	a.console.Printf("Enter test sequence (comma-separated moves like O4,B5,M3):\n>> ")
	script, err := a.console.ReadLine()
	if err != nil {
		return err
	}
	if script == "" {
		a.console.Println("No test input provided.")
		return nil
	}

	svc := game.NewService(g, game.Options{HelpOut: a.console.Out(), Logger: a.logger})
	results, err := svc.RunSequence(ctx, script)
	if err != nil {
		a.console.Printf("Invalid test sequence: %v\n", err)
		return nil
	}
	for i, res := range results {
		if res.Err != nil {
			a.console.Printf("Move %d: %s\n", i+1, FailureMessage(res.Err))
			continue
		}
		a.console.Printf("Move %d: %s\n", i+1, res.Command)
	}
	if g.EndGame() {
		a.console.ShowOutcome(g)
	} else {
		RenderBoard(a.console.Out(), g.Board())
	}
	return nil
}
