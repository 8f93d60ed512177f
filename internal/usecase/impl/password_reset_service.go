package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"adpilot/config"
	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/domain/service"
	"adpilot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 15 * time.Minute

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	resetTokenRepo   repository.ResetTokenRepository
	refreshTokenRepo repository.RefreshTokenRepository
	resetTokens      service.ResetTokenService
	hasher           service.PasswordHasher
	mailer           service.MailDispatcher
	renderer         service.MailRenderer
	frontendURL      string
	resetTTL         time.Duration
	logger           *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ResetTokenRepo   repository.ResetTokenRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ResetTokens      service.ResetTokenService
	Hasher           service.PasswordHasher
	Mailer           service.MailDispatcher
	Renderer         service.MailRenderer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	resetTTL := defaultResetTokenTTL
	if params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTTL = params.Config.Auth.ResetTokenTTL
	}

	return &passwordResetService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		resetTokenRepo:   params.ResetTokenRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		resetTokens:      params.ResetTokens,
		hasher:           params.Hasher,
		mailer:           params.Mailer,
		renderer:         params.Renderer,
		frontendURL:      strings.TrimRight(params.Config.Frontend.URL, "/"),
		resetTTL:         resetTTL,
		logger:           params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset emails a single-use reset link when the account exists. The
// returned message is identical for every outcome except infrastructure failure.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	generic := &usecase.RequestResetOutput{Message: usecase.ResetRequestedMessage}

	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return generic, nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return generic, nil
		}

		return nil, srv.internalError(ctx, err, "failed to look up user for password reset")
	}

	raw, hash, err := srv.resetTokens.Generate()
	if err != nil {
		return nil, srv.internalError(ctx, err, "failed to generate reset token")
	}

	// Saving overwrites the latest pointer, which invalidates earlier links.
	if err := srv.resetTokenRepo.Save(ctx, hash, user.ID, srv.resetTTL); err != nil {
		return nil, srv.internalError(ctx, err, "failed to store reset token")
	}

	resetURL := srv.frontendURL + "/reset-password?token=" + url.QueryEscape(raw)
	subject, body, err := srv.renderer.PasswordReset(resetURL, srv.resetTTL)
	if err != nil {
		return nil, srv.internalError(ctx, err, "failed to render reset email")
	}

	if err := srv.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return nil, srv.internalError(ctx, err, "failed to send reset email")
	}

	srv.log(ctx).Info("Password reset email dispatched", slog.Any("userID", user.ID))

	return generic, nil
}

// ConsumeReset sets a new password for the holder of the latest reset token.
func (srv *passwordResetService) ConsumeReset(ctx context.Context, input *usecase.ConsumeResetInput) (*usecase.ConsumeResetOutput, error) {
	if input.Token == "" || input.NewPassword == "" {
		return nil, domainerrors.ErrMissingFields
	}

	hash := srv.resetTokens.Hash(input.Token)

	userID, err := srv.resetTokenRepo.FindUserID(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrCacheMiss) {
			return nil, domainerrors.ErrInvalidOrExpiredToken.WrapMessage("reset token not found")
		}

		return nil, errors.Wrap(err, "failed to resolve reset token")
	}

	// A missing latest pointer is accepted: it only happens if the second write
	// of RequestReset failed or the pointer expired first.
	latest, err := srv.resetTokenRepo.FindLatestHash(ctx, userID)
	switch {
	case err == nil && latest != hash:
		srv.log(ctx).Warn("Superseded reset token presented", slog.Any("userID", userID))

		return nil, domainerrors.ErrInvalidOrExpiredToken.WrapMessage("reset token superseded")
	case err != nil && !errors.Is(err, repository.ErrCacheMiss):
		return nil, errors.Wrap(err, "failed to resolve latest reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("reset token user no longer exists")
			}

			return errors.Wrap(err, "failed to load user for reset")
		}

		if err := setPassword(srv.hasher, user, input.NewPassword); err != nil {
			return err
		}

		return userRepo.UpdatePassword(ctx, user.ID, user.PasswordHash)
	})
	if err != nil {
		return nil, err
	}

	if err := srv.resetTokenRepo.Delete(ctx, hash, userID); err != nil {
		return nil, errors.Wrap(err, "failed to delete reset token")
	}
	if err := srv.refreshTokenRepo.Delete(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to revoke refresh token after reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return &usecase.ConsumeResetOutput{Message: usecase.ResetCompletedMessage}, nil
}

func (srv *passwordResetService) internalError(ctx context.Context, err error, msg string) error {
	srv.log(ctx).Error(msg, slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrInternalError, errors.Wrap(err, msg).Error())
}
