package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type GameService interface {
	CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error)
	ModifyGame(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) CreateGame(ctx context.Context, mode entity.Mode) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), mode)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// ModifyGame applies fn to the stored game atomically. When fn fails the game
// it saw is returned with the error and storage is left untouched.
func (that *gameService) ModifyGame(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, id, fn)
	if err != nil {
		return game, fmt.Errorf("failed to modify game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game from storage: %w", err)
	}

	return nil
}
