package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers bad signatures, malformed tokens and missing claims.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned for a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// TokenKind selects the secret a token is signed and verified with.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the verified content of a token.
type Claims struct {
	UserID    uuid.UUID
	Kind      TokenKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken creates a short-lived access token carrying userID.
	IssueAccessToken(userID uuid.UUID) (string, error)

	// IssueRefreshToken creates a long-lived refresh token carrying userID.
	IssueRefreshToken(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry with the secret of kind.
	// It fails with ErrTokenInvalid or ErrTokenExpired.
	Verify(token string, kind TokenKind) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
