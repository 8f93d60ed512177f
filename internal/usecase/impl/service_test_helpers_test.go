package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"adpilot/config"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/errors"
	mockRepo "adpilot/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      4,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			ResetTokenTTL:   15 * time.Minute,
		},
	}
	cfg.Frontend.URL = "https://app.example.com/"

	return cfg
}

// expectTx makes txManager run the callback against a factory bound to userRepo
// and return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		}).
		Once()
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}
