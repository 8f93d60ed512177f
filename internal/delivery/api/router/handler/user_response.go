package handler

import (
	"time"

	"adpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. It never carries the password hash.
type UserResponse struct {
	ID               uuid.UUID               `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	Role             entity.Role             `json:"role"`
	Company          string                  `json:"company,omitempty"`
	Industry         string                  `json:"industry,omitempty"`
	SubscriptionPlan entity.SubscriptionPlan `json:"subscriptionPlan"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		Company:          user.Company,
		Industry:         user.Industry,
		SubscriptionPlan: user.SubscriptionPlan,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}
