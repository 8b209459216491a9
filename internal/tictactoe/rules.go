package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// WinLines are the 8 winning lines: 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]entity.Move{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// NewBoard returns a fresh empty board.
func NewBoard() entity.Board {
	return entity.Board{}
}

// ApplyMove places player's mark on board. The board is left untouched on error.
func ApplyMove(board *entity.Board, move entity.Move, player entity.Mark) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidMove, player)
	}

	if !InRange(move) {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if board[move.Row][move.Col] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	board[move.Row][move.Col] = player

	return nil
}

// InRange reports whether move addresses a cell on the board.
func InRange(move entity.Move) bool {
	return move.Row >= 0 && move.Row < entity.BoardSize && move.Col >= 0 && move.Col < entity.BoardSize
}

// CheckWinner reports whether player owns all three cells of any winning line.
func CheckWinner(board entity.Board, player entity.Mark) bool {
	if !player.IsPlayer() {
		return false
	}

	for _, line := range WinLines {
		if board[line[0].Row][line[0].Col] == player &&
			board[line[1].Row][line[1].Col] == player &&
			board[line[2].Row][line[2].Col] == player {
			return true
		}
	}

	return false
}

// CheckTie reports a full board on which nobody has a winning line.
func CheckTie(board entity.Board) bool {
	return isFull(board) && !CheckWinner(board, entity.PlayerX) && !CheckWinner(board, entity.PlayerO)
}

// CheckGameOver is the terminal test shared by the game flow and the search.
func CheckGameOver(board entity.Board) entity.Result {
	switch {
	case CheckWinner(board, entity.PlayerX):
		return entity.Win(entity.PlayerX)
	case CheckWinner(board, entity.PlayerO):
		return entity.Win(entity.PlayerO)
	case isFull(board):
		return entity.Tie()
	default:
		return entity.InProgress()
	}
}

// EmptyCells lists the empty cells in row-major order.
func EmptyCells(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func isFull(board entity.Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}
