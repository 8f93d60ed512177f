package auth

import (
	"strings"
	"testing"

	"adpilot/config"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strictPolicy() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		ForbiddenWords:   []string{"password", "admin"},
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictPolicy())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictPolicy())

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictPolicy())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, strictPolicy())

	validPasswords := []string{
		"StrongPass123!",
		"MySecure@Pass1",
		"Complex#Secret9",
		"Valid$Phrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password        string
		expectedDetails string
	}{
		{"123", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
		{"Password123!", "contains forbidden words"},
		{"MyAdmin123!", "contains forbidden words"},
		{"Aa1!" + strings.Repeat("x", 80), "must be at most 72 bytes long"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, "Expected error for password: %s", tc.password)

		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		assert.Contains(t, appErr.Details(), tc.expectedDetails)
	}
}

func TestBcryptHasher_DefaultPolicyIsPermissive(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})

	assert.NoError(t, hasher.ValidatePasswordStrength("secret1"))
	assert.NoError(t, hasher.ValidatePasswordStrength("pw1"))
	assert.NoError(t, hasher.ValidatePasswordStrength("np"))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 73)))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost, strictPolicy())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1, strictPolicy())

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, hasUppercase("abC"))
	assert.False(t, hasUppercase("abc"))
	assert.True(t, hasLowercase("ABc"))
	assert.False(t, hasLowercase("ABC"))
	assert.True(t, hasNumber("abc1"))
	assert.False(t, hasNumber("abc"))
	assert.True(t, hasSpecialChar("abc!"))
	assert.False(t, hasSpecialChar("abc1"))
	assert.True(t, containsForbiddenWords("MyPASSWORD", []string{"password"}))
	assert.False(t, containsForbiddenWords("anything", []string{""}))
}
