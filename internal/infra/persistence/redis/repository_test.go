package redis

import (
	"context"
	"testing"
	"time"

	"adpilot/config"
	"adpilot/internal/domain/repository"
	"adpilot/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, prefix string) (*miniredis.Miniredis, *redis.Client, *config.Config) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), KeyPrefix: prefix}}

	return mr, client, cfg
}

func TestRefreshTokenRepository_SaveFindDelete(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "")
	repo := NewRefreshTokenRepository(client, cfg)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, userID, "token-1", 7*24*time.Hour))

	stored, err := mr.Get("refresh_token:" + userID.String())
	require.NoError(t, err)
	assert.Equal(t, "token-1", stored)
	assert.Equal(t, 7*24*time.Hour, mr.TTL("refresh_token:"+userID.String()))

	got, err := repo.Find(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	require.NoError(t, repo.Delete(ctx, userID))
	_, err = repo.Find(ctx, userID)
	assert.True(t, errors.Is(err, repository.ErrCacheMiss))

	// Deleting again is not an error.
	assert.NoError(t, repo.Delete(ctx, userID))
}

func TestRefreshTokenRepository_SaveOverwrites(t *testing.T) {
	_, client, cfg := newTestRedis(t, "")
	repo := NewRefreshTokenRepository(client, cfg)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, userID, "first", time.Hour))
	require.NoError(t, repo.Save(ctx, userID, "second", time.Hour))

	got, err := repo.Find(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestRefreshTokenRepository_Expires(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "")
	repo := NewRefreshTokenRepository(client, cfg)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, userID, "token", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Find(ctx, userID)
	assert.True(t, errors.Is(err, repository.ErrCacheMiss))
}

func TestRefreshTokenRepository_KeyPrefix(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "adpilot:")
	repo := NewRefreshTokenRepository(client, cfg)
	userID := uuid.New()

	require.NoError(t, repo.Save(context.Background(), userID, "token", time.Hour))
	assert.True(t, mr.Exists("adpilot:refresh_token:"+userID.String()))
}

func TestRefreshTokenRepository_ConnectionError(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "")
	repo := NewRefreshTokenRepository(client, cfg)
	mr.Close()

	_, err := repo.Find(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrCacheMiss))
}

func TestResetTokenRepository_Lifecycle(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "")
	repo := NewResetTokenRepository(client, cfg)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, "hash-a", userID, 15*time.Minute))

	assert.Equal(t, 15*time.Minute, mr.TTL("reset_token:hash-a"))
	assert.Equal(t, 15*time.Minute, mr.TTL("reset_token_latest:"+userID.String()))

	gotUser, err := repo.FindUserID(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	latest, err := repo.FindLatestHash(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", latest)

	require.NoError(t, repo.Delete(ctx, "hash-a", userID))
	assert.False(t, mr.Exists("reset_token:hash-a"))
	assert.False(t, mr.Exists("reset_token_latest:"+userID.String()))
}

func TestResetTokenRepository_LatestWins(t *testing.T) {
	_, client, cfg := newTestRedis(t, "")
	repo := NewResetTokenRepository(client, cfg)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, "hash-a", userID, 15*time.Minute))
	require.NoError(t, repo.Save(ctx, "hash-b", userID, 15*time.Minute))

	// The older hash still maps to the user, but it is no longer the latest.
	gotUser, err := repo.FindUserID(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)

	latest, err := repo.FindLatestHash(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hash-b", latest)
}

func TestResetTokenRepository_Misses(t *testing.T) {
	mr, client, cfg := newTestRedis(t, "")
	repo := NewResetTokenRepository(client, cfg)
	ctx := context.Background()

	_, err := repo.FindUserID(ctx, "unknown")
	assert.True(t, errors.Is(err, repository.ErrCacheMiss))

	_, err = repo.FindLatestHash(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrCacheMiss))

	require.NoError(t, mr.Set("reset_token:bad", "not-a-uuid"))
	_, err = repo.FindUserID(ctx, "bad")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrCacheMiss))
}
