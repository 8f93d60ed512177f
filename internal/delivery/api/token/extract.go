// Package token locates credentials in incoming requests.
package token

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// Strategy returns the token it finds in the request, or "".
type Strategy func(c echo.Context) string

// FromCookie reads the named cookie.
func FromCookie(name string) Strategy {
	return func(c echo.Context) string {
		ck, err := c.Cookie(name)
		if err != nil {
			return ""
		}

		return wellFormed(ck.Value)
	}
}

// FromBearer reads an "Authorization: Bearer <token>" header. The scheme is case-insensitive.
func FromBearer() Strategy {
	return func(c echo.Context) string {
		scheme, value, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, bearerScheme) {
			return ""
		}

		return wellFormed(value)
	}
}

// Extract tries each strategy in order and returns the first token found.
func Extract(c echo.Context, strategies ...Strategy) string {
	for _, strategy := range strategies {
		if tok := strategy(c); tok != "" {
			return tok
		}
	}

	return ""
}

func wellFormed(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.ContainsAny(value, " \t") {
		return ""
	}

	return value
}
