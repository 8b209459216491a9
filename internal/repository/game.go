package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores live sessions in Redis. Every write refreshes the
// key's expiry to ttl; a zero ttl keeps sessions until they are deleted.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return decodeGame(that.client.Get(ctx, gameKey(id)))
}

// Update reads the game under WATCH, lets fn change it and writes it back in
// MULTI/EXEC. If the key changes in between nothing is written and
// ErrGameConflict is returned. An error from fn aborts the write and is
// returned as is, together with the game fn saw.
func (that *dbGame) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	var (
		game  *entity.Game
		fnErr error
	)

	err := that.client.Watch(ctx, func(tx *redis.Tx) error {
		var err error
		if game, err = decodeGame(tx.Get(ctx, key)); err != nil {
			return err
		}

		if fnErr = fn(game); fnErr != nil {
			return fnErr
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)
			return nil
		})

		return err
	}, key)

	switch {
	case fnErr != nil:
		return game, fnErr
	case errors.Is(err, redis.TxFailedErr):
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameConflict, id)
	case err != nil:
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func decodeGame(cmd *redis.StringCmd) (*entity.Game, error) {
	response, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}
