// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"adpilot/internal/delivery/api/cookie"
	"adpilot/internal/delivery/api/middleware"
	"adpilot/internal/delivery/api/response"
	"adpilot/internal/domain/constants"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LogoutMessage is answered by every logout request.
const LogoutMessage = "Logged out successfully"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	ResetUC usecase.PasswordResetUsecase
	Cookies *cookie.Manager
	Logger  *slog.Logger
}

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	resetUC usecase.PasswordResetUsecase
	cookies *cookie.Manager
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		resetUC: params.ResetUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token for clients that do not use cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest is deliberately not validated: a malformed email gets the generic answer too.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the request body for consuming a reset link
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ChangePasswordRequest represents the request body for changing the password while logged in
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// SessionResponse is returned by signup and login.
type SessionResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         entity.Role `json:"role"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// AccessTokenResponse is returned by refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Signup handles account creation.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetSession(c, out.AccessToken, out.RefreshToken)

	return response.Success(c, http.StatusCreated, newSessionResponse(out))
}

// Login handles credential verification.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetSession(c, out.AccessToken, out.RefreshToken)

	return response.Success(c, http.StatusOK, newSessionResponse(out))
}

// Logout revokes the session named by the refresh cookie. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	input := &usecase.LogoutInput{}
	if ck, err := c.Cookie(constants.CookieRefreshToken); err == nil {
		input.RefreshToken = ck.Value
	}

	_ = h.authUC.Logout(c.Request().Context(), input)
	h.cookies.Clear(c)

	return response.Message(c, http.StatusOK, LogoutMessage)
}

// Refresh issues a new access token. The refresh token is read from the cookie, then the body.
// Both cookies are cleared on any failure.
func (h *AuthHandler) Refresh(c echo.Context) error {
	input := &usecase.RefreshInput{}
	if ck, err := c.Cookie(constants.CookieRefreshToken); err == nil && ck.Value != "" {
		input.RefreshToken = ck.Value
	} else {
		var req RefreshRequest
		if err := c.Bind(&req); err == nil {
			input.RefreshToken = req.RefreshToken
		}
	}

	out, err := h.authUC.Refresh(c.Request().Context(), input)
	if err != nil {
		h.cookies.Clear(c)

		return errors.WithStack(err)
	}

	h.cookies.SetAccess(c, out.AccessToken)

	return response.Success(c, http.StatusOK, AccessTokenResponse{AccessToken: out.AccessToken})
}

// Profile returns the authenticated user.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ForgotPassword starts the reset flow. The answer is identical whether or not the account exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	_ = c.Bind(&req)

	out, err := h.resetUC.RequestReset(c.Request().Context(), &usecase.RequestResetInput{Email: req.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, out.Message)
}

// ResetPassword consumes a reset token and ends every session of the account.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	out, err := h.resetUC.ConsumeReset(c.Request().Context(), &usecase.ConsumeResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c)

	return response.Message(c, http.StatusOK, out.Message)
}

// ChangePassword replaces the password of the authenticated user and ends the session.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.authUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.Clear(c)

	return response.Message(c, http.StatusOK, "Password changed. Please log in again.")
}

func newSessionResponse(out *usecase.SessionOutput) SessionResponse {
	return SessionResponse{
		ID:           out.User.ID,
		Name:         out.User.Name,
		Email:        out.User.Email,
		Role:         out.User.Role,
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	}
}
