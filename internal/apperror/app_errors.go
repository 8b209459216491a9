package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrNoLegalMoves = errors.New("no legal moves")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrNotAITurn    = errors.New("it's not the AI's turn")
	ErrInvalidMode  = errors.New("invalid game mode")
	ErrGameNotFound = errors.New("game not found")
	ErrGameConflict = errors.New("game was changed by another request")
)
