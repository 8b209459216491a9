package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var tracer = otel.Tracer("github.com/rocketscienceinc/tictactoe-minimax/internal/service")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger,
	}
}

// MakeTurn - picks the minimax move for O and applies it to the game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	_, span := tracer.Start(ctx, "bot.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", game.ID),
		attribute.Int("game.empty_cells", len(tictactoe.EmptyCells(game.Board))),
	))
	defer span.End()

	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if !game.IsAITurn() {
		span.SetStatus(codes.Error, apperror.ErrNotAITurn.Error())
		return entity.Move{}, apperror.ErrNotAITurn
	}

	move, err := minimax.FindBestMove(game.Board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return entity.Move{}, fmt.Errorf("failed to find best move: %w", err)
	}

	span.SetAttributes(attribute.Int("move.row", move.Row), attribute.Int("move.col", move.Col))

	if err = tictactoe.MakeTurn(game, entity.PlayerO, move); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "apply failed")
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "move", move.String(), "result", game.Result.Status)

	return move, nil
}
