package redis

import (
	"adpilot/config"
	"adpilot/internal/domain/constants"

	"github.com/google/uuid"
)

// keyspace renders session cache keys, optionally namespaced by a shared prefix.
type keyspace struct {
	prefix string
}

func newKeyspace(cfg *config.Config) keyspace {
	if cfg == nil || cfg.Redis == nil {
		return keyspace{}
	}

	return keyspace{prefix: cfg.Redis.KeyPrefix}
}

func (k keyspace) refreshToken(userID uuid.UUID) string {
	return k.prefix + constants.RefreshTokenKeyPrefix + userID.String()
}

func (k keyspace) resetToken(tokenHash string) string {
	return k.prefix + constants.ResetTokenKeyPrefix + tokenHash
}

func (k keyspace) resetTokenLatest(userID uuid.UUID) string {
	return k.prefix + constants.ResetTokenLatestKeyPrefix + userID.String()
}
