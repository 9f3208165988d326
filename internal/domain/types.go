package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other seat. Empty maps to Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

const (
	DefaultRows     = 6
	DefaultColumns  = 7
	InitialBoring   = 2
	InitialMagnetic = 2

	// ThresholdRatio is the share of the board area a line has to cover to win.
	ThresholdRatio = 0.1
)

var playerSymbols = map[PlayerID]string{
	Player1: "@",
	Player2: "#",
}

func SymbolFor(id PlayerID) string {
	if s, ok := playerSymbols[id]; ok {
		return s
	}
	return "?"
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn      Error = "invalid column"
	ErrColumnFull         Error = "column is full"
	ErrInventoryExhausted Error = "no discs of that type left"
	ErrGameOver           Error = "game is already over"
	ErrInvalidDimensions  Error = "board dimensions must be positive"
	ErrDecode             Error = "malformed game record"
	ErrNoSavedGame        Error = "no saved game"
)
