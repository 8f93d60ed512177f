package context

import (
	"context"

	"adpilot/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key under which the authenticated user is stored.
const KeyUser ContextKey = "user"

// SetUser attaches the authenticated user to both the echo context and the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUser returns the user attached by the authentication middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// WithUser returns a new context carrying user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// UserFromContext extracts the authenticated user from a standard context.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyUser).(*entity.User)

	return user, ok && user != nil
}
