package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"adpilot/config"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/service"
	"adpilot/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input beyond 72 bytes.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MaxLength: bcryptMaxPasswordBytes}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, policy)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost, clamped to bcrypt's bounds.
func NewBcryptHasherWithCost(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks password against the configured policy and
// reports the first violated rule as a ValidationFailed error.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if p.MinLength > 0 && utf8.RuneCountInString(password) < p.MinLength {
		return passwordViolation(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if len(password) > p.MaxLength {
		return passwordViolation(fmt.Sprintf("password must be at most %d bytes long", p.MaxLength))
	}
	if p.RequireLowercase && !hasLowercase(password) {
		return passwordViolation("password must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !hasUppercase(password) {
		return passwordViolation("password must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !hasNumber(password) {
		return passwordViolation("password must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecialChar(password) {
		return passwordViolation("password must contain at least one special character")
	}
	if containsForbiddenWords(password, p.ForbiddenWords) {
		return passwordViolation("password contains forbidden words")
	}

	return nil
}

func passwordViolation(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

func hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func hasNumber(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func hasSpecialChar(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if word == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
