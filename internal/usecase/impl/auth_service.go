// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/domain/service"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword feeds the bcrypt comparison made for unknown emails.
const dummyPassword = "adpilot-login-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the account and opens its first session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}

	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		user := &entity.User{
			ID:               uuid.New(),
			Name:             name,
			Email:            email,
			Role:             entity.RoleCustomer,
			SubscriptionPlan: entity.PlanFree,
		}
		if err := setPassword(srv.hasher, user, input.Password); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signup completed", slog.Any("userID", created.ID))

	return &usecase.SessionOutput{
		User:         created.WithoutPassword(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies credentials and opens a new session, replacing any previous one.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.equalizeTiming(input.Password)
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{
		User:         user.WithoutPassword(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh issues a new access token for a refresh token that is both valid and
// identical to the one stored for its user. The refresh token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrMissingToken
	}

	claims, err := srv.tokenService.Verify(input.RefreshToken, service.TokenKindRefresh)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	stored, err := srv.refreshTokenRepo.Find(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			return nil, domainerrors.ErrStaleToken.WrapMessage("no refresh token stored")
		}

		return nil, errors.Wrap(err, "failed to load stored refresh token")
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(input.RefreshToken)) != 1 {
		srv.log(ctx).Warn("Refresh rejected: token superseded", slog.Any("userID", claims.UserID))

		return nil, domainerrors.ErrStaleToken.WrapMessage("stored refresh token differs")
	}

	accessToken, err := srv.tokenService.IssueAccessToken(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout revokes the stored refresh token when the presented one verifies.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}

	claims, err := srv.tokenService.Verify(input.RefreshToken, service.TokenKindRefresh)
	if err != nil {
		srv.log(ctx).Debug("Logout with unverifiable refresh token", slog.Any("error", err))

		return nil
	}

	if err := srv.refreshTokenRepo.Delete(ctx, claims.UserID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token on logout", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Logout completed", slog.Any("userID", claims.UserID))

	return nil
}

// Authenticate maps an access token to the current user without the password hash.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.Verify(accessToken, service.TokenKindAccess)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrAccessTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrAccessTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return user.WithoutPassword(), nil
}

// ChangePassword replaces the password after verifying the current one and revokes the stored session.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrValidationFailed.WithDetails("currentPassword and newPassword are required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user disappeared before password change")
			}

			return errors.Wrap(err, "failed to load user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}

		if err := setPassword(srv.hasher, user, input.NewPassword); err != nil {
			return err
		}

		return userRepo.UpdatePassword(ctx, user.ID, user.PasswordHash)
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return err
	}

	if err := srv.refreshTokenRepo.Delete(ctx, input.UserID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token after password change")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// issueSession signs both tokens and stores the refresh token, overwriting any previous one.
func (srv *authService) issueSession(ctx context.Context, userID uuid.UUID) (string, string, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue refresh token")
	}

	if err := srv.refreshTokenRepo.Save(ctx, userID, refreshToken, srv.tokenService.RefreshTokenTTL()); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// equalizeTiming runs a bcrypt comparison for logins with an unknown email.
func (srv *authService) equalizeTiming(password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare dummy password hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	if srv.dummyHash != "" {
		_ = srv.hasher.Check(password, srv.dummyHash)
	}
}
