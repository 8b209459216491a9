package entity

// Mode selects who controls O: another human or the minimax bot.
type Mode string

const (
	ModeHuman Mode = "human"
	ModeAI    Mode = "ai"
)

func (that Mode) IsValid() bool {
	return that == ModeHuman || that == ModeAI
}

// Game is a single session: the board plus the state the presentation layer observes.
type Game struct {
	ID            string `json:"id"`
	Board         Board  `json:"board"`
	Mode          Mode   `json:"mode"`
	Turn          Mark   `json:"turn"`
	Result        Result `json:"result"`
	LastHumanMove *Move  `json:"last_human_move,omitempty"`
	LastAIMove    *Move  `json:"last_ai_move,omitempty"`
}

func NewGame(id string, mode Mode) *Game {
	game := &Game{
		ID:   id,
		Mode: mode,
	}
	game.Reset()

	return game
}

// Reset returns the session to an empty board with X to move.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = PlayerX
	that.Result = InProgress()
	that.LastHumanMove = nil
	that.LastAIMove = nil
}

// SwitchMode changes the mode and starts a fresh round.
func (that *Game) SwitchMode(mode Mode) {
	that.Mode = mode
	that.Reset()
}

func (that *Game) IsFinished() bool {
	return that.Result.IsTerminal()
}

func (that *Game) IsWithAI() bool {
	return that.Mode == ModeAI
}

// IsAITurn reports whether the bot is expected to move next.
func (that *Game) IsAITurn() bool {
	return that.IsWithAI() && !that.IsFinished() && that.Turn == PlayerO
}

// IsAIMark reports whether moves by player are made by the bot in this session.
func (that *Game) IsAIMark(player Mark) bool {
	return that.IsWithAI() && player == PlayerO
}
