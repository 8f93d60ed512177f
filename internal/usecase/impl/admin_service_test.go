package impl

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"math"
	"testing"

	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/errors"
	mockRepo "adpilot/internal/mocks/repository"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_ListUsers(t *testing.T) {
	testCases := []struct {
		name           string
		input          *usecase.ListUsersInput
		expectedOffset int
		expectedLimit  int
		expectedPage   int
	}{
		{"defaults", &usecase.ListUsersInput{}, 0, usecase.DefaultPageSize, 1},
		{"second page", &usecase.ListUsersInput{Page: 2, PageSize: 10}, 10, 10, 2},
		{"negative page", &usecase.ListUsersInput{Page: -3, PageSize: 5}, 0, 5, 1},
		{"oversized page", &usecase.ListUsersInput{Page: 1, PageSize: 1000}, 0, usecase.MaxPageSize, 1},
		{"page past int range", &usecase.ListUsersInput{Page: math.MaxInt, PageSize: 10}, (math.MaxInt/10 - 1) * 10, 10, math.MaxInt / 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			service := NewAdminService(AdminServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
			ctx := context.Background()

			users := []*entity.User{
				{ID: uuid.New(), Email: "a@example.com", PasswordHash: "h1"},
				{ID: uuid.New(), Email: "b@example.com", PasswordHash: "h2"},
			}
			userRepo.EXPECT().List(ctx, tc.expectedOffset, tc.expectedLimit).Return(users, nil)
			userRepo.EXPECT().Count(ctx).Return(int64(42), nil)

			out, err := service.ListUsers(ctx, tc.input)

			require.NoError(t, err)
			assert.EqualValues(t, 42, out.Total)
			assert.Equal(t, tc.expectedPage, out.Page)
			assert.Equal(t, tc.expectedLimit, out.PageSize)
			require.Len(t, out.Users, 2)
			for _, u := range out.Users {
				assert.Empty(t, u.PasswordHash)
			}
			assert.Equal(t, "h1", users[0].PasswordHash)
		})
	}
}

func TestAdminService_ListUsers_RepositoryError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAdminService(AdminServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
	boom := stderrors.New("db down")

	userRepo.EXPECT().List(context.Background(), 0, usecase.DefaultPageSize).Return(nil, boom)

	out, err := service.ListUsers(context.Background(), &usecase.ListUsersInput{})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestAdminService_GetUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAdminService(AdminServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Email: "a@example.com", PasswordHash: "h1"}

	userRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	user, err := service.GetUser(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestAdminService_GetUser_Errors(t *testing.T) {
	boom := stderrors.New("db down")

	testCases := []struct {
		name     string
		repoErr  error
		notFound bool
	}{
		{"unknown id", repository.ErrUserNotFound, true},
		{"database failure", boom, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			service := NewAdminService(AdminServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
			id := uuid.New()

			userRepo.EXPECT().FindByID(context.Background(), id).Return(nil, tc.repoErr)

			user, err := service.GetUser(context.Background(), id)

			assert.Nil(t, user)
			if tc.notFound {
				assertErrorCode(t, err, "NOT_FOUND")
				appErr, _ := errors.AsType[domainerrors.AppError](err)
				assert.Equal(t, 404, appErr.HTTPCode())

				return
			}
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestAdminService_LogsActingAdmin(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewAdminService(AdminServiceParams{UserRepo: userRepo, Logger: logger})

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	ctx := deliverycontext.WithUser(context.Background(), admin)
	target := &entity.User{ID: uuid.New()}

	userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	_, err := service.GetUser(ctx, target.ID)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"actorID":"`+admin.ID.String()+`"`)
	assert.Contains(t, buf.String(), `"userID":"`+target.ID.String()+`"`)
}
