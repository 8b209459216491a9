// Package minimax picks optimal tic-tac-toe moves by exhaustive game-tree search.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// maxScore bounds the magnitude of a decided position. A win found d plies
// below the root scores maxScore-d, so every win is positive, every loss is
// negative and a tie is 0.
const maxScore = 10

// FindBestMove returns the move that maximises O's minimax value.
func FindBestMove(board entity.Board) (entity.Move, error) {
	return FindBestMoveFor(board, entity.PlayerO)
}

// FindBestMoveFor searches on behalf of player. Candidates are scanned in
// row-major order and only a strictly greater value replaces the current
// best, so equal values resolve to the first cell scanned.
func FindBestMoveFor(board entity.Board, player entity.Mark) (entity.Move, error) {
	if !player.IsPlayer() {
		return entity.Move{}, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidMove, player)
	}

	if result := tictactoe.CheckGameOver(board); result.IsTerminal() {
		return entity.Move{}, fmt.Errorf("%w: board is already %s", apperror.ErrNoLegalMoves, result.Status)
	}

	bestVal := math.MinInt
	bestMove := entity.Move{Row: -1, Col: -1}

	for _, move := range tictactoe.EmptyCells(board) {
		board[move.Row][move.Col] = player
		moveVal := search(&board, player, 1, false)
		board[move.Row][move.Col] = entity.EmptyCell

		if moveVal > bestVal {
			bestMove = move
			bestVal = moveVal
		}
	}

	return bestMove, nil
}

// Evaluate returns the minimax value of board from player's point of view.
// playerToMove tells whether player or the opponent moves next.
func Evaluate(board entity.Board, player entity.Mark, playerToMove bool) int {
	return search(&board, player, 0, playerToMove)
}

// search mutates board while descending and restores every cell it fills.
// Terminal scores are weighted by depth rather than a flat +1/-1: a quicker
// win and a slower loss rank higher, while the sign still tells win, loss
// and tie apart. Against a forced loss the bot therefore blocks the nearest
// threat instead of taking the first cell scanned.
func search(board *entity.Board, player entity.Mark, depth int, maximizing bool) int {
	switch result := tictactoe.CheckGameOver(*board); {
	case result.Status == entity.StatusTie:
		return 0
	case result.Status == entity.StatusWin && result.Winner == player:
		return maxScore - depth
	case result.Status == entity.StatusWin:
		return depth - maxScore
	}

	mover := player
	bestScore := math.MinInt
	if !maximizing {
		mover = player.Opponent()
		bestScore = math.MaxInt
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			board[row][col] = mover
			score := search(board, player, depth+1, !maximizing)
			board[row][col] = entity.EmptyCell

			if maximizing {
				bestScore = max(bestScore, score)
			} else {
				bestScore = min(bestScore, score)
			}
		}
	}

	return bestScore
}
