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

type resetTokenRepository struct {
	client redis.Cmdable
	keys   keyspace
}

// NewResetTokenRepository stores reset token hashes under reset_token:<hash> and
// the latest hash per user under reset_token_latest:<userId>.
func NewResetTokenRepository(client *redis.Client, cfg *config.Config) repository.ResetTokenRepository {
	return &resetTokenRepository{client: client, keys: newKeyspace(cfg)}
}

func (r *resetTokenRepository) Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.keys.resetToken(tokenHash), userID.String(), ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}
	if err := r.client.Set(ctx, r.keys.resetTokenLatest(userID), tokenHash, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store latest reset token")
	}

	return nil
}

func (r *resetTokenRepository) FindUserID(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	raw, err := r.client.Get(ctx, r.keys.resetToken(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, repository.ErrCacheMiss
	}
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read reset token")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "reset token maps to malformed user id %q", raw)
	}

	return userID, nil
}

func (r *resetTokenRepository) FindLatestHash(ctx context.Context, userID uuid.UUID) (string, error) {
	hash, err := r.client.Get(ctx, r.keys.resetTokenLatest(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read latest reset token")
	}

	return hash, nil
}

func (r *resetTokenRepository) Delete(ctx context.Context, tokenHash string, userID uuid.UUID) error {
	if err := r.client.Del(ctx, r.keys.resetToken(tokenHash), r.keys.resetTokenLatest(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete reset token")
	}

	return nil
}
