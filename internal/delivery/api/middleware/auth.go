package middleware

import (
	"log/slog"

	"adpilot/internal/delivery/api/token"
	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/constants"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware gates routes behind a valid access token.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	strategies []token.Strategy
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
// The access token is looked up in the accessToken cookie first, then in the Authorization header.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		strategies: []token.Strategy{
			token.FromCookie(constants.CookieAccessToken),
			token.FromBearer(),
		},
		logger: params.Logger,
	}
}

// Authenticate resolves the access token to a user and attaches it to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accessToken := token.Extract(c, m.strategies...)

		user, err := m.authUC.Authenticate(c.Request().Context(), accessToken)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Request authentication failed", slog.Any("error", err))

			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole rejects users without role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if user.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireAdmin is RequireRole(entity.RoleAdmin).
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(entity.RoleAdmin)
}

// GetUser returns the user attached by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetUser(c)
}
