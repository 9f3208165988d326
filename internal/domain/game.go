package domain

// Game owns the board and both players. rows, cols and the threshold are
// fixed at construction.
type Game struct {
	board     *Board
	player1   *Player
	player2   *Player
	current   *Player
	threshold int
}

func NewGame(rows, cols int, vsComputer bool) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:     board,
		player1:   NewStartingPlayer(Player1, false, rows, cols),
		player2:   NewStartingPlayer(Player2, vsComputer, rows, cols),
		threshold: WinningThreshold(rows, cols),
	}
	g.current = g.player1
	return g, nil
}

// RestoreGame rebuilds a game from decoded parts, pointing the current
// player at the matching restored Player.
func RestoreGame(board *Board, player1, player2 *Player, current PlayerID) (*Game, error) {
	if board == nil || player1 == nil || player2 == nil {
		return nil, ErrDecode
	}
	if player1.ID != Player1 || player2.ID != Player2 {
		return nil, ErrDecode
	}

	g := &Game{
		board:     board,
		player1:   player1,
		player2:   player2,
		threshold: WinningThreshold(board.Rows(), board.Cols()),
	}
	switch current {
	case Player1:
		g.current = player1
	case Player2:
		g.current = player2
	default:
		return nil, ErrDecode
	}
	return g, nil
}

func (g *Game) Board() *Board          { return g.board }
func (g *Game) Player1() *Player       { return g.player1 }
func (g *Game) Player2() *Player       { return g.player2 }
func (g *Game) CurrentPlayer() *Player { return g.current }
func (g *Game) WinningThreshold() int  { return g.threshold }

func (g *Game) Player(id PlayerID) *Player {
	switch id {
	case Player1:
		return g.player1
	case Player2:
		return g.player2
	}
	return nil
}

func (g *Game) Opponent() *Player {
	return g.Player(g.current.ID.Opponent())
}

func (g *Game) SwitchTurn() {
	g.current = g.Opponent()
}

// ReturnDisc refunds a disc knocked off the board to its owner.
func (g *Game) ReturnDisc(owner PlayerID, t DiscType) {
	if p := g.Player(owner); p != nil {
		p.ReturnDisc(t)
	}
}

// PlaceDisc runs the placement strategy for the disc's type.
func (g *Game) PlaceDisc(disc *Disc, column int) bool {
	if disc == nil {
		return false
	}
	return StrategyFor(disc.Type, g).Place(g.board, disc, column)
}

func (g *Game) Winner() (PlayerID, bool) {
	return Evaluate(g.board, g.threshold)
}

// EndGame reports whether someone has won or the board is full.
func (g *Game) EndGame() bool {
	if _, won := g.Winner(); won {
		return true
	}
	return g.board.IsFull()
}

func (g *Game) Status() GameStatus {
	if _, won := g.Winner(); won {
		return StatusWon
	}
	if g.board.IsFull() {
		return StatusDraw
	}
	return StatusActive
}
