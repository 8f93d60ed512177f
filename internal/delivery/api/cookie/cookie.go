// Package cookie writes and clears the session cookies.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"adpilot/config"
	"adpilot/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// Manager applies the configured attributes to the accessToken and refreshToken cookies.
type Manager struct {
	secure     bool
	sameSite   http.SameSite
	domain     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager reads cookie attributes and token lifetimes from cfg.
func NewManager(cfg *config.Config) *Manager {
	m := &Manager{
		secure:     true,
		sameSite:   http.SameSiteNoneMode,
		accessTTL:  15 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
	}

	if cfg.Cookie != nil {
		m.secure = cfg.Cookie.Secure
		m.sameSite = parseSameSite(cfg.Cookie.SameSite)
		m.domain = cfg.Cookie.Domain
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			m.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			m.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return m
}

// SetSession writes both session cookies.
func (m *Manager) SetSession(c echo.Context, accessToken, refreshToken string) {
	m.SetAccess(c, accessToken)
	c.SetCookie(m.build(constants.CookieRefreshToken, refreshToken, int(m.refreshTTL.Seconds())))
}

// SetAccess writes only the access token cookie.
func (m *Manager) SetAccess(c echo.Context, accessToken string) {
	c.SetCookie(m.build(constants.CookieAccessToken, accessToken, int(m.accessTTL.Seconds())))
}

// Clear expires both session cookies using the attributes they were set with.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.build(constants.CookieAccessToken, "", -1))
	c.SetCookie(m.build(constants.CookieRefreshToken, "", -1))
}

func (m *Manager) build(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}
