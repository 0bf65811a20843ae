package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// Players are anonymous session identities; records that see no update for
// sessionTTL are dropped and the id can be registered again on reconnect.
const sessionTTL = 24 * time.Hour

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

// CreateOrUpdate stores the player record and refreshes its expiry.
func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	record, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("could not marshal player: %w", err)
	}

	if err = that.client.Set(ctx, playerKey(player.ID), record, sessionTTL).Err(); err != nil {
		return fmt.Errorf("could not store player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	record, err := that.client.Get(ctx, playerKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("could not get player by id: %w", err)
	}

	var player entity.Player
	if err = json.Unmarshal([]byte(record), &player); err != nil {
		return nil, fmt.Errorf("could not unmarshal player: %w", err)
	}

	return &player, nil
}

func playerKey(id string) string {
	return "player:" + id
}
