package entity

import "fmt"

// Mark is the content of a cell or the identity of a player.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// Board is a 3x3 grid addressed as Board[row][col].
type Board [BoardSize][BoardSize]Mark

// Move is a 0-indexed (row, col) coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusTie        Status = "tie"
)

// Result is the outcome of a board. Winner is set only when Status is StatusWin.
type Result struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func Win(player Mark) Result {
	return Result{Status: StatusWin, Winner: player}
}

func Tie() Result {
	return Result{Status: StatusTie}
}

func (that Result) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

// Opponent returns the other player's mark. EmptyCell maps to itself.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}
