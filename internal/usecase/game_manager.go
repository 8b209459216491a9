package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var tracer = otel.Tracer("github.com/rocketscienceinc/tictactoe-minimax/internal/usecase")

type gameService interface {
	CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	ModifyGame(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// GameManager drives a session between the presentation layer and the core.
// Human and AI turns are separate calls so the caller owns any pacing between them.
// Every change goes through ModifyGame, so two requests racing on one session
// cannot both succeed: the loser gets ErrGameConflict.
type GameManager struct {
	logger *slog.Logger

	gameService gameService
	botService  botService
}

func NewGameManager(logger *slog.Logger, gameService gameService, botService botService) *GameManager {
	return &GameManager{
		logger: logger,

		gameService: gameService,
		botService:  botService,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "GameManager.CreateGame", trace.WithAttributes(
		attribute.String("game.mode", string(mode)),
	))
	defer span.End()

	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	game, err := that.gameService.CreateGame(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	that.logger.Info("game created", "method", "CreateGame", "game_id", game.ID, "mode", mode)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn applies a human move for whoever is to play. In AI mode humans only play X.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "GameManager.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", id),
		attribute.Int("move.row", move.Row),
		attribute.Int("move.col", move.Col),
	))
	defer span.End()

	game, err := that.gameService.ModifyGame(ctx, id, func(game *entity.Game) error {
		if !game.IsFinished() && game.IsAIMark(game.Turn) {
			return apperror.ErrNotYourTurn
		}

		return tictactoe.MakeTurn(game, game.Turn, move)
	})
	if err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	that.logFinished(game)

	return game, nil
}

// MakeAITurn lets the bot reply. It fails with ErrNotAITurn unless O is to play in AI mode.
func (that *GameManager) MakeAITurn(ctx context.Context, id string) (*entity.Game, error) {
	ctx, span := tracer.Start(ctx, "GameManager.MakeAITurn", trace.WithAttributes(
		attribute.String("game.id", id),
	))
	defer span.End()

	game, err := that.gameService.ModifyGame(ctx, id, func(game *entity.Game) error {
		if game.IsFinished() {
			return apperror.ErrGameFinished
		}

		_, err := that.botService.MakeTurn(ctx, game)
		return err
	})
	if err != nil {
		return game, fmt.Errorf("failed make ai turn: %w", err)
	}

	that.logFinished(game)

	return game, nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameService.ModifyGame(ctx, id, func(game *entity.Game) error {
		game.Reset()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed reset game: %w", err)
	}

	return game, nil
}

func (that *GameManager) SwitchMode(ctx context.Context, id string, mode entity.Mode) (*entity.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	game, err := that.gameService.ModifyGame(ctx, id, func(game *entity.Game) error {
		game.SwitchMode(mode)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed switch mode: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameService.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	return nil
}

func (that *GameManager) logFinished(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	that.logger.Info("game finished",
		"game_id", game.ID,
		"status", game.Result.Status,
		"winner", game.Result.Winner,
	)
}
