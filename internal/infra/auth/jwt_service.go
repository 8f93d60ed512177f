// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"adpilot/config"
	"adpilot/internal/domain/service"
	"adpilot/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// sessionClaims is the JWT payload shared by access and refresh tokens.
type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	parser        *jwt.Parser
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}, nil
}

// IssueAccessToken creates a signed access token for userID.
func (s *jwtService) IssueAccessToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.accessTTL, s.accessSecret)
}

// IssueRefreshToken creates a signed refresh token for userID.
func (s *jwtService) IssueRefreshToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, s.refreshTTL, s.refreshSecret)
}

// Verify checks the token against the secret selected by kind.
func (s *jwtService) Verify(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, err
	}

	claims := &sessionClaims{}
	_, err = s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, "userId claim is not a valid uuid")
	}

	result := &service.Claims{UserID: userID, Kind: kind}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(kind service.TokenKind) ([]byte, error) {
	switch kind {
	case service.TokenKindAccess:
		return s.accessSecret, nil
	case service.TokenKindRefresh:
		return s.refreshSecret, nil
	default:
		return nil, errors.Wrapf(service.ErrTokenInvalid, "unknown token kind %q", kind)
	}
}

// generateToken is a private helper to create a JWT with the userId claim.
// The random jti keeps two tokens issued in the same second distinct.
func (s *jwtService) generateToken(userID uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
