package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"adpilot/internal/domain/service"
	"adpilot/internal/errors"
)

const resetTokenBytes = 32

type resetTokenService struct{}

// NewResetTokenService returns the random-token generator used by the password reset flow.
func NewResetTokenService() service.ResetTokenService {
	return &resetTokenService{}
}

// Generate returns 32 random bytes hex-encoded along with their SHA-256 hex digest.
func (s *resetTokenService) Generate() (string, string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw := hex.EncodeToString(buf)

	return raw, s.Hash(raw), nil
}

func (s *resetTokenService) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
