package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/iamasit07/lineup/internal/domain"
	"github.com/iamasit07/lineup/internal/service/game"
)

// Console reads line-oriented answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

var _ game.Frontend = (*Console)(nil)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) Out() io.Writer { return c.out }

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// ReadLine returns the next trimmed line, or io.EOF once input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ReadInt keeps asking until it gets an integer in [min, max].
func (c *Console) ReadInt(prompt string, min, max int) (int, error) {
	for {
		c.Printf("%s", prompt)
		line, err := c.ReadLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= min && n <= max {
			return n, nil
		}
		c.Printf("Please try again, please enter valid integer (%d-%d):\n", min, max)
	}
}

// ReadSize reads one grid dimension. Empty input takes def.
func (c *Console) ReadSize(prompt string, def, min int, retry string) (int, error) {
	c.Printf("%s", prompt)
	for {
		line, err := c.ReadLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= min {
			return n, nil
		}
		c.Printf("%s", retry)
	}
}

// ReadGridSize asks for rows then columns, enforcing minRows and minCols.
func (c *Console) ReadGridSize(defRows, defCols, minRows, minCols int) (int, int, error) {
	c.Printf("Enter grid size (default %dx%d):\n", defRows, defCols)
	rows, err := c.ReadSize("Rows (press enter for default): ", defRows, minRows,
		fmt.Sprintf("Please input row number again (minimum %d) >> ", minRows))
	if err != nil {
		return 0, 0, err
	}
	cols, err := c.ReadSize("Columns (press enter for default): ", defCols, minCols,
		fmt.Sprintf("Please input column number again (minimum is %d) >> ", minCols))
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

const actionMenu = `Select an action:
1: Place Ordinary disc
2: Place Boring disc
3: Place Magnetic disc
4: Save game
5: Help
6: Exit
>> `

// NextIntent shows the board and asks the current player for an action,
// then a 1-based column for place actions.
func (c *Console) NextIntent(ctx context.Context, g *domain.Game) (game.Intent, error) {
	if err := ctx.Err(); err != nil {
		return game.Intent{}, err
	}

	RenderBoard(c.out, g.Board())
	player := g.CurrentPlayer()
	c.Printf("Player %d's turn (%s)\n", player.ID, player.Symbol)
	RenderInventory(c.out, player)

	n, err := c.ReadInt(actionMenu, int(game.ActionPlaceOrdinary), int(game.ActionExit))
	if err != nil {
		return game.Intent{}, err
	}
	in := game.Intent{Action: game.Action(n)}
	if _, ok := in.Action.DiscType(); !ok {
		return in, nil
	}

	col, err := c.ReadInt(fmt.Sprintf("Select column (1-%d) >> ", g.Board().Cols()), 1, g.Board().Cols())
	if err != nil {
		return game.Intent{}, err
	}
	in.Column = col - 1
	return in, nil
}

// ShowTurn reports the outcome of one step.
func (c *Console) ShowTurn(g *domain.Game, res game.TurnResult) {
	if res.Err != nil {
		c.Printf("%s Player %d, please try again.\n", FailureMessage(res.Err), res.Player)
		return
	}

	switch res.Action {
	case game.ActionSave:
		c.Println("Game saved.")
	case game.ActionPlaceOrdinary, game.ActionPlaceBoring, game.ActionPlaceMagnetic:
		if g.Player(res.Player).IsComputer {
			c.Printf("Computer: %s\n", res.Command)
		}
	}
	if res.Status != domain.StatusActive {
		c.ShowOutcome(g)
	}
}

// ShowOutcome prints the final board and who won.
func (c *Console) ShowOutcome(g *domain.Game) {
	RenderBoard(c.out, g.Board())
	if winner, ok := g.Winner(); ok {
		c.Printf("Player %d (%s) wins!\n", winner, domain.SymbolFor(winner))
		return
	}
	if g.EndGame() {
		c.Println("The board is full. It's a draw!")
	}
}

// ShowHistory lists executed commands in order.
func (c *Console) ShowHistory(descriptions []string) {
	c.Println("Command history:")
	if len(descriptions) == 0 {
		c.Println("  (none)")
		return
	}
	for i, d := range descriptions {
		c.Printf("  %d. %s\n", i+1, d)
	}
}

// FailureMessage turns an engine error into player-facing text.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return "Invalid column."
	case errors.Is(err, domain.ErrColumnFull):
		return "That column is full."
	case errors.Is(err, domain.ErrInventoryExhausted):
		return "You have no discs of that type left."
	case errors.Is(err, domain.ErrGameOver):
		return "The game is already over."
	case errors.Is(err, game.ErrSaveUnavailable):
		return "Unable to save the game."
	case errors.Is(err, game.ErrUnknownAction):
		return "Unknown action."
	}
	return fmt.Sprintf("Action failed: %v.", err)
}
