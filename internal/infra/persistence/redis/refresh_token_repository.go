package redis

import (
	"context"
	"time"

	"adpilot/config"
	"adpilot/internal/domain/repository"
	"adpilot/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type refreshTokenRepository struct {
	client redis.Cmdable
	keys   keyspace
}

// NewRefreshTokenRepository stores one refresh token per user under refresh_token:<userId>.
func NewRefreshTokenRepository(client *redis.Client, cfg *config.Config) repository.RefreshTokenRepository {
	return &refreshTokenRepository{client: client, keys: newKeyspace(cfg)}
}

func (r *refreshTokenRepository) Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.keys.refreshToken(userID), token, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

func (r *refreshTokenRepository) Find(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := r.client.Get(ctx, r.keys.refreshToken(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read refresh token")
	}

	return token, nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, r.keys.refreshToken(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}
