package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adpilot/config"
	"adpilot/internal/delivery/api"
	"adpilot/internal/delivery/api/cookie"
	"adpilot/internal/delivery/api/middleware"
	"adpilot/internal/delivery/api/router"
	"adpilot/internal/delivery/api/router/handler"
	mockUsecase "adpilot/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type apiHarness struct {
	e       *echo.Echo
	authUC  *mockUsecase.MockAuthUsecase
	resetUC *mockUsecase.MockPasswordResetUsecase
	adminUC *mockUsecase.MockAdminUsecase
}

func newHarness(t *testing.T) *apiHarness {
	t.Helper()

	cfg := &config.Config{
		Auth:   &config.AuthConfig{AccessTokenTTL: 15 * time.Minute, RefreshTokenTTL: 7 * 24 * time.Hour},
		Cookie: &config.CookieConfig{Secure: true, SameSite: "none"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.AllowOrigins = []string{"http://localhost:5173"}

	logger := slog.New(slog.DiscardHandler)
	h := &apiHarness{
		authUC:  mockUsecase.NewMockAuthUsecase(t),
		resetUC: mockUsecase.NewMockPasswordResetUsecase(t),
		adminUC: mockUsecase.NewMockAdminUsecase(t),
	}

	h.e = api.NewEcho(cfg, logger,
		middleware.NewErrorMiddleware(middleware.ErrorMiddlewareParams{Logger: logger}),
		router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC:  h.authUC,
				ResetUC: h.resetUC,
				Cookies: cookie.NewManager(cfg),
				Logger:  logger,
			}),
			AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: h.adminUC, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: h.authUC, Logger: logger}),
		},
	)

	return h
}

func (h *apiHarness) do(method, path, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	return rec
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func withHeader(key, value string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	return data
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range rec.Result().Cookies() {
		out[ck.Name] = ck
	}

	return out
}

func requireCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	cookies := cookiesByName(rec)
	for _, name := range []string{"accessToken", "refreshToken"} {
		ck, ok := cookies[name]
		require.True(t, ok, "cookie %s not written", name)
		require.Empty(t, ck.Value)
		require.Negative(t, ck.MaxAge)
	}
}
