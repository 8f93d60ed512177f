package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/domain/repository"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns the request logger, tagged with the acting administrator when one is authenticated.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if actor, ok := deliverycontext.UserFromContext(ctx); ok {
		logger = logger.With(slog.String("actorID", actor.ID.String()))
	}

	return logger
}

// ListUsers returns one page of users. Out-of-range paging values are clamped.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := max(input.Page, 1)
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}
	pageSize = min(pageSize, usecase.MaxPageSize)
	// Keeps (page-1)*pageSize within int.
	page = min(page, math.MaxInt/pageSize)

	users, err := srv.userRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.WithoutPassword())
	}

	srv.log(ctx).Debug("Listed users", slog.Int("page", page), slog.Int("pageSize", pageSize), slog.Int64("total", total))

	return &usecase.ListUsersOutput{
		Users:    sanitized,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetUser returns a single account. Unknown ids are NotFound.
func (srv *adminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	srv.log(ctx).Info("Admin viewed user", slog.String("userID", id.String()))

	return user.WithoutPassword(), nil
}
