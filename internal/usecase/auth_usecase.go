// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"adpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token found in the request cookie, if any.
type LogoutInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to change the password of a signed-in user.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// SessionOutput is returned by signup and login. User never carries the password hash.
type SessionOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RefreshOutput carries the newly issued access token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the session lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Logout is best effort. Cache failures are logged and the returned error is always nil.
	Logout(ctx context.Context, input *LogoutInput) error

	// Authenticate resolves the user behind an access token for the request gate.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)

	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
