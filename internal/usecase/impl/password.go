package impl

import (
	"adpilot/internal/domain/entity"
	"adpilot/internal/domain/service"
)

// setPassword is the only place a password hash is assigned. It enforces the
// strength policy and hashes the plaintext before mutating user.
func setPassword(hasher service.PasswordHasher, user *entity.User, plain string) error {
	if err := hasher.ValidatePasswordStrength(plain); err != nil {
		return err
	}

	hash, err := hasher.Hash(plain)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return nil
}
