package usecase

import (
	"context"

	"adpilot/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListUsersInput selects a page of users. Page starts at 1.
type ListUsersInput struct {
	Page     int
	PageSize int
}

// ListUsersOutput is one page of users without password hashes.
type ListUsersOutput struct {
	Users    []*entity.User
	Total    int64
	Page     int
	PageSize int
}

// AdminUsecase defines operations restricted to administrators.
type AdminUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	// GetUser returns one account without its password hash, or NotFound.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
