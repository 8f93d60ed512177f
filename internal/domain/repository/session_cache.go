package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when a session cache key does not exist or has expired.
var ErrCacheMiss = errors.New("cache miss")

// RefreshTokenRepository stores the single valid refresh token of each user.
type RefreshTokenRepository interface {
	// Save stores token for userID, overwriting any previous value.
	Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error

	// Find returns the stored token, or ErrCacheMiss.
	Find(ctx context.Context, userID uuid.UUID) (string, error)

	// Delete removes the stored token. Deleting a missing key is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ResetTokenRepository stores password-reset token hashes.
// Two entries exist per issuance: hash -> userID and userID -> latest hash.
type ResetTokenRepository interface {
	// Save writes both entries with the same ttl. The writes are sequential, not atomic.
	Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error

	// FindUserID returns the user a hash was issued for, or ErrCacheMiss.
	FindUserID(ctx context.Context, tokenHash string) (uuid.UUID, error)

	// FindLatestHash returns the most recently issued hash for userID, or ErrCacheMiss.
	FindLatestHash(ctx context.Context, userID uuid.UUID) (string, error)

	// Delete removes both entries.
	Delete(ctx context.Context, tokenHash string, userID uuid.UUID) error
}
