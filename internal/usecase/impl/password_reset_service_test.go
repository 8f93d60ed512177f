package impl

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/errors"
	mockRepo "adpilot/internal/mocks/repository"
	mockSvc "adpilot/internal/mocks/service"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const resetTTL = 15 * time.Minute

type resetFixture struct {
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	resetRepo   *mockRepo.MockResetTokenRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	resetTokens *mockSvc.MockResetTokenService
	hasher      *mockSvc.MockPasswordHasher
	mailer      *mockSvc.MockMailDispatcher
	renderer    *mockSvc.MockMailRenderer
	service     usecase.PasswordResetUsecase
}

func newResetFixture(t *testing.T) *resetFixture {
	f := &resetFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		resetRepo:   mockRepo.NewMockResetTokenRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		resetTokens: mockSvc.NewMockResetTokenService(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		mailer:      mockSvc.NewMockMailDispatcher(t),
		renderer:    mockSvc.NewMockMailRenderer(t),
	}
	f.service = NewPasswordResetService(PasswordResetServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		ResetTokenRepo:   f.resetRepo,
		RefreshTokenRepo: f.refreshRepo,
		ResetTokens:      f.resetTokens,
		Hasher:           f.hasher,
		Mailer:           f.mailer,
		Renderer:         f.renderer,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestPasswordResetService_RequestReset_SendsLink(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	f.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	f.resetTokens.EXPECT().Generate().Return("raw-token", "hashed-token", nil)
	f.resetRepo.EXPECT().Save(ctx, "hashed-token", user.ID, resetTTL).Return(nil)
	f.renderer.EXPECT().
		PasswordReset("https://app.example.com/reset-password?token=raw-token", resetTTL).
		Return("Reset your password", "<p>link</p>", nil)
	f.mailer.EXPECT().Send(ctx, "ada@example.com", "Reset your password", "<p>link</p>").Return(nil).Once()

	out, err := f.service.RequestReset(ctx, &usecase.RequestResetInput{Email: " Ada@Example.com "})

	require.NoError(t, err)
	assert.Equal(t, usecase.ResetRequestedMessage, out.Message)
}

func TestPasswordResetService_RequestReset_UnknownEmailLooksIdentical(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := f.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "ghost@example.com"})

	require.NoError(t, err)
	assert.Equal(t, usecase.ResetRequestedMessage, out.Message)
	f.resetTokens.AssertNotCalled(t, "Generate")
	f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPasswordResetService_RequestReset_BlankEmail(t *testing.T) {
	f := newResetFixture(t)

	out, err := f.service.RequestReset(context.Background(), &usecase.RequestResetInput{Email: "  "})

	require.NoError(t, err)
	assert.Equal(t, usecase.ResetRequestedMessage, out.Message)
}

func TestPasswordResetService_RequestReset_Failures(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}
	boom := stderrors.New("boom")

	testCases := []struct {
		name  string
		setup func(f *resetFixture)
	}{
		{
			name: "user lookup",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, boom)
			},
		},
		{
			name: "token generation",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
				f.resetTokens.EXPECT().Generate().Return("", "", boom)
			},
		},
		{
			name: "token storage",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
				f.resetTokens.EXPECT().Generate().Return("raw", "hash", nil)
				f.resetRepo.EXPECT().Save(mock.Anything, "hash", user.ID, resetTTL).Return(boom)
			},
		},
		{
			name: "mail delivery",
			setup: func(f *resetFixture) {
				f.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
				f.resetTokens.EXPECT().Generate().Return("raw", "hash", nil)
				f.resetRepo.EXPECT().Save(mock.Anything, "hash", user.ID, resetTTL).Return(nil)
				f.renderer.EXPECT().PasswordReset(mock.Anything, resetTTL).Return("subject", "body", nil)
				f.mailer.EXPECT().Send(mock.Anything, "ada@example.com", "subject", "body").Return(boom)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newResetFixture(t)
			tc.setup(f)

			out, err := f.service.RequestReset(context.Background(), &usecase.RequestResetInput{Email: "ada@example.com"})

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrInternalError), "got %v", err)
		})
	}
}

func TestPasswordResetService_ConsumeReset_Success(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.resetTokens.EXPECT().Hash("raw").Return("hash")
	f.resetRepo.EXPECT().FindUserID(ctx, "hash").Return(userID, nil)
	f.resetRepo.EXPECT().FindLatestHash(ctx, userID).Return("hash", nil)
	expectTx(t, f.txManager, f.userRepo)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "old"}, nil)
	f.hasher.EXPECT().ValidatePasswordStrength("new-secret").Return(nil)
	f.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	f.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)
	f.resetRepo.EXPECT().Delete(ctx, "hash", userID).Return(nil).Once()
	f.refreshRepo.EXPECT().Delete(ctx, userID).Return(nil).Once()

	out, err := f.service.ConsumeReset(ctx, &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"})

	require.NoError(t, err)
	assert.Equal(t, usecase.ResetCompletedMessage, out.Message)
}

func TestPasswordResetService_ConsumeReset_MissingLatestPointerIsAccepted(t *testing.T) {
	f := newResetFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.resetTokens.EXPECT().Hash("raw").Return("hash")
	f.resetRepo.EXPECT().FindUserID(ctx, "hash").Return(userID, nil)
	f.resetRepo.EXPECT().FindLatestHash(ctx, userID).Return("", repository.ErrCacheMiss)
	expectTx(t, f.txManager, f.userRepo)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.hasher.EXPECT().ValidatePasswordStrength("new-secret").Return(nil)
	f.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
	f.userRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)
	f.resetRepo.EXPECT().Delete(ctx, "hash", userID).Return(nil)
	f.refreshRepo.EXPECT().Delete(ctx, userID).Return(nil)

	_, err := f.service.ConsumeReset(ctx, &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"})

	assert.NoError(t, err)
}

func TestPasswordResetService_ConsumeReset_Rejections(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name  string
		input *usecase.ConsumeResetInput
		setup func(f *resetFixture)
		code  string
	}{
		{
			name:  "missing token",
			input: &usecase.ConsumeResetInput{NewPassword: "new-secret"},
			setup: func(f *resetFixture) {},
			code:  "MISSING_FIELDS",
		},
		{
			name:  "missing password",
			input: &usecase.ConsumeResetInput{Token: "raw"},
			setup: func(f *resetFixture) {},
			code:  "MISSING_FIELDS",
		},
		{
			name:  "unknown or expired token",
			input: &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"},
			setup: func(f *resetFixture) {
				f.resetTokens.EXPECT().Hash("raw").Return("hash")
				f.resetRepo.EXPECT().FindUserID(mock.Anything, "hash").Return(uuid.Nil, repository.ErrCacheMiss)
			},
			code: "INVALID_OR_EXPIRED_TOKEN",
		},
		{
			name:  "superseded token",
			input: &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"},
			setup: func(f *resetFixture) {
				f.resetTokens.EXPECT().Hash("raw").Return("hash")
				f.resetRepo.EXPECT().FindUserID(mock.Anything, "hash").Return(userID, nil)
				f.resetRepo.EXPECT().FindLatestHash(mock.Anything, userID).Return("newer-hash", nil)
			},
			code: "INVALID_OR_EXPIRED_TOKEN",
		},
		{
			name:  "user deleted meanwhile",
			input: &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"},
			setup: func(f *resetFixture) {
				f.resetTokens.EXPECT().Hash("raw").Return("hash")
				f.resetRepo.EXPECT().FindUserID(mock.Anything, "hash").Return(userID, nil)
				f.resetRepo.EXPECT().FindLatestHash(mock.Anything, userID).Return("hash", nil)
				f.txManager.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
						factory := mockRepo.NewMockRepositoryFactory(t)
						factory.EXPECT().UserRepo().Return(f.userRepo)

						return fn(factory)
					})
				f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
			code: "INVALID_OR_EXPIRED_TOKEN",
		},
		{
			name:  "weak password",
			input: &usecase.ConsumeResetInput{Token: "raw", NewPassword: "abc"},
			setup: func(f *resetFixture) {
				f.resetTokens.EXPECT().Hash("raw").Return("hash")
				f.resetRepo.EXPECT().FindUserID(mock.Anything, "hash").Return(userID, nil)
				f.resetRepo.EXPECT().FindLatestHash(mock.Anything, userID).Return("hash", nil)
				f.txManager.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
						factory := mockRepo.NewMockRepositoryFactory(t)
						factory.EXPECT().UserRepo().Return(f.userRepo)

						return fn(factory)
					})
				f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				f.hasher.EXPECT().ValidatePasswordStrength("abc").
					Return(domainerrors.ErrValidationFailed.WithDetails("too short"))
			},
			code: "VALIDATION_FAILED",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newResetFixture(t)
			tc.setup(f)

			out, err := f.service.ConsumeReset(context.Background(), tc.input)

			assert.Nil(t, out)
			assertErrorCode(t, err, tc.code)
			f.resetRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
			f.refreshRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestPasswordResetService_ConsumeReset_CacheFailure(t *testing.T) {
	f := newResetFixture(t)
	boom := stderrors.New("redis down")

	f.resetTokens.EXPECT().Hash("raw").Return("hash")
	f.resetRepo.EXPECT().FindUserID(mock.Anything, "hash").Return(uuid.Nil, boom)

	_, err := f.service.ConsumeReset(context.Background(), &usecase.ConsumeResetInput{Token: "raw", NewPassword: "new-secret"})

	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredToken))
}
