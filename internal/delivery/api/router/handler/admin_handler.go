package handler

import (
	"log/slog"
	"net/http"

	"adpilot/internal/delivery/api/response"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the /api/admin routes.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListUsersQuery represents the paging query of the user listing
type ListUsersQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// Health confirms that the caller passed the admin gate.
func (h *AdminHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok", "scope": "admin"})
}

// ListUsers returns a page of accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var query ListUsersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	out, err := h.adminUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]UserResponse, 0, len(out.Users))
	for _, user := range out.Users {
		users = append(users, newUserResponse(user))
	}

	return response.Success(c, http.StatusOK, UserPage{
		Users:    users,
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
	})
}

// GetUser returns one account by id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	user, err := h.adminUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
