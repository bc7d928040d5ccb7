package repository

import (
	"context"
	"fmt"
	"time"

	redisapp "dearly/internal/storage/redis"
)

// RedisTokenRepo keeps issued refresh tokens as expiring keys "refresh:<user>:<token>".
type RedisTokenRepo struct {
	client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{client: client}
}

func (r *RedisTokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	const op = "repository.token_repository.SaveRefreshToken"

	if err := r.client.Set(ctx, refreshTokenKey(userID, token), "1", exp).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRefreshToken removes the token in a single DEL. Only the caller that
// actually removed the key gets true, so a token can be redeemed once.
func (r *RedisTokenRepo) ConsumeRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	const op = "repository.token_repository.ConsumeRefreshToken"

	removed, err := r.client.Del(ctx, refreshTokenKey(userID, token)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return removed == 1, nil
}

func (r *RedisTokenRepo) DeleteAllUserTokens(ctx context.Context, userID string) error {
	const op = "repository.token_repository.DeleteAllUserTokens"

	keys, err := r.client.Keys(ctx, refreshTokenKey(userID, "*")).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func refreshTokenKey(userID, token string) string {
	return "refresh:" + userID + ":" + token
}
