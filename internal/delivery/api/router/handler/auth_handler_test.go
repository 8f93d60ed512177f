package handler_test

import (
	"net/http"
	"testing"
	"time"

	"adpilot/internal/delivery/api/router/handler"
	"adpilot/internal/domain/entity"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomer() *entity.User {
	return &entity.User{
		ID:               uuid.New(),
		Name:             "Ada",
		Email:            "ada@example.com",
		Role:             entity.RoleCustomer,
		SubscriptionPlan: entity.PlanFree,
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	h := newHarness(t)
	user := newCustomer()

	h.authUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"}).
		Return(&usecase.SessionOutput{User: user, AccessToken: "acc", RefreshToken: "ref"}, nil)

	rec := h.do(http.MethodPost, "/api/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeData[handler.SessionResponse](t, rec)
	assert.Equal(t, handler.SessionResponse{
		ID:           user.ID,
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         entity.RoleCustomer,
		AccessToken:  "acc",
		RefreshToken: "ref",
	}, body)

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, "accessToken")
	require.Contains(t, cookies, "refreshToken")
	assert.Equal(t, "acc", cookies["accessToken"].Value)
	assert.Equal(t, 15*60, cookies["accessToken"].MaxAge)
	assert.Equal(t, "ref", cookies["refreshToken"].Value)
	assert.Equal(t, 7*24*60*60, cookies["refreshToken"].MaxAge)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
		assert.Equal(t, "/", ck.Path)
	}
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/auth/signup", `{"email":"not-an-email","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.NotNil(t, env.Error.Details)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_SignupDuplicate(t *testing.T) {
	h := newHarness(t)

	h.authUC.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail)

	rec := h.do(http.MethodPost, "/api/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_EMAIL", decode(t, rec).Error.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets the session cookies", func(t *testing.T) {
		h := newHarness(t)
		user := newCustomer()

		h.authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "secret1"}).
			Return(&usecase.SessionOutput{User: user, AccessToken: "acc", RefreshToken: "ref"}, nil)

		rec := h.do(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ref", decodeData[handler.SessionResponse](t, rec).RefreshToken)
		assert.Len(t, rec.Result().Cookies(), 2)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := h.do(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"nope"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Equal(t, "Invalid email or password", env.Error.Message)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodPost, "/api/auth/login", `{"email":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes the cookie's session", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "ref"}).Return(nil)

		rec := h.do(http.MethodPost, "/api/auth/logout", "", withCookie("refreshToken", "ref"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, handler.LogoutMessage, decodeData[map[string]string](t, rec)["message"])
		requireCleared(t, rec)
	})

	t.Run("succeeds without a cookie", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{}).Return(nil)

		rec := h.do(http.MethodPost, "/api/auth/logout", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, handler.LogoutMessage, decodeData[map[string]string](t, rec)["message"])
		requireCleared(t, rec)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("cookie wins over body", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().
			Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "from-cookie"}).
			Return(&usecase.RefreshOutput{AccessToken: "new-acc"}, nil)

		rec := h.do(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"from-body"}`,
			withCookie("refreshToken", "from-cookie"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new-acc", decodeData[handler.AccessTokenResponse](t, rec).AccessToken)

		cookies := cookiesByName(rec)
		require.Contains(t, cookies, "accessToken")
		assert.Equal(t, "new-acc", cookies["accessToken"].Value)
		assert.NotContains(t, cookies, "refreshToken")
	})

	t.Run("body is used without a cookie", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().
			Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "from-body"}).
			Return(&usecase.RefreshOutput{AccessToken: "new-acc"}, nil)

		rec := h.do(http.MethodPost, "/api/auth/refresh", `{"refreshToken":"from-body"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	testCases := []struct {
		name string
		err  error
		code string
	}{
		{"missing", domainerrors.ErrMissingToken, "MISSING_TOKEN"},
		{"invalid", domainerrors.ErrInvalidToken, "INVALID_TOKEN"},
		{"expired", domainerrors.ErrExpiredToken, "EXPIRED_TOKEN"},
		{"superseded", domainerrors.ErrStaleToken, "STALE_TOKEN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" clears the cookies", func(t *testing.T) {
			h := newHarness(t)

			h.authUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := h.do(http.MethodPost, "/api/auth/refresh", "", withCookie("refreshToken", "ref"))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tc.code, decode(t, rec).Error.Code)
			requireCleared(t, rec)
		})
	}
}

func TestAuthHandler_ForgotPassword_IdenticalBodies(t *testing.T) {
	h := newHarness(t)

	h.resetUC.EXPECT().
		RequestReset(mock.Anything, &usecase.RequestResetInput{Email: "ada@example.com"}).
		Return(&usecase.RequestResetOutput{Message: usecase.ResetRequestedMessage}, nil)
	h.resetUC.EXPECT().
		RequestReset(mock.Anything, &usecase.RequestResetInput{Email: "nobody@example.com"}).
		Return(&usecase.RequestResetOutput{Message: usecase.ResetRequestedMessage}, nil)

	fixedID := withHeader("X-Request-Id", "req-fixed")
	known := h.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"ada@example.com"}`, fixedID)
	unknown := h.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"nobody@example.com"}`, fixedID)

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.Bytes(), unknown.Body.Bytes())
	assert.Equal(t, usecase.ResetRequestedMessage, decodeData[map[string]string](t, known)["message"])
}

func TestAuthHandler_ForgotPassword_InfrastructureFailure(t *testing.T) {
	h := newHarness(t)

	h.resetUC.EXPECT().RequestReset(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInternalError)

	rec := h.do(http.MethodPost, "/api/auth/forgot-password", `{"email":"ada@example.com"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("success clears the cookies", func(t *testing.T) {
		h := newHarness(t)

		h.resetUC.EXPECT().
			ConsumeReset(mock.Anything, &usecase.ConsumeResetInput{Token: "raw", NewPassword: "newpass1"}).
			Return(&usecase.ConsumeResetOutput{Message: usecase.ResetCompletedMessage}, nil)

		rec := h.do(http.MethodPost, "/api/auth/reset-password", `{"token":"raw","newPassword":"newpass1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, usecase.ResetCompletedMessage, decodeData[map[string]string](t, rec)["message"])
		requireCleared(t, rec)
	})

	t.Run("rejected token", func(t *testing.T) {
		h := newHarness(t)

		h.resetUC.EXPECT().ConsumeReset(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidOrExpiredToken)

		rec := h.do(http.MethodPost, "/api/auth/reset-password", `{"token":"raw","newPassword":"newpass1"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_OR_EXPIRED_TOKEN", decode(t, rec).Error.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("cookie token", func(t *testing.T) {
		h := newHarness(t)
		user := newCustomer()

		h.authUC.EXPECT().Authenticate(mock.Anything, "cookie-acc").Return(user, nil)

		rec := h.do(http.MethodGet, "/api/auth/profile", "",
			withCookie("accessToken", "cookie-acc"),
			withHeader("Authorization", "Bearer header-acc"))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeData[map[string]any](t, rec)
		assert.Equal(t, user.ID.String(), body["id"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, body, "PasswordHash")
	})

	t.Run("bearer token", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Authenticate(mock.Anything, "header-acc").Return(newCustomer(), nil)

		rec := h.do(http.MethodGet, "/api/auth/profile", "", withHeader("Authorization", "Bearer header-acc"))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	testCases := []struct {
		name string
		err  error
		code string
	}{
		{"no token", domainerrors.ErrUnauthorized, "UNAUTHORIZED"},
		{"expired token", domainerrors.ErrAccessTokenExpired, "TOKEN_EXPIRED"},
		{"invalid token", domainerrors.ErrAccessTokenInvalid, "TOKEN_INVALID"},
		{"deleted user", domainerrors.ErrUserNotFound, "UNAUTHORIZED"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)

			h.authUC.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, tc.err)

			rec := h.do(http.MethodGet, "/api/auth/profile", "")

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tc.code, env.Error.Code)
			assert.Nil(t, env.Error.Details)
		})
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	t.Run("success ends the session", func(t *testing.T) {
		h := newHarness(t)
		user := newCustomer()

		h.authUC.EXPECT().Authenticate(mock.Anything, "acc").Return(user, nil)
		h.authUC.EXPECT().
			ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
				UserID:          user.ID,
				CurrentPassword: "secret1",
				NewPassword:     "secret2",
			}).
			Return(nil)

		rec := h.do(http.MethodPost, "/api/auth/change-password",
			`{"currentPassword":"secret1","newPassword":"secret2"}`, withCookie("accessToken", "acc"))

		require.Equal(t, http.StatusOK, rec.Code)
		requireCleared(t, rec)
	})

	t.Run("wrong current password", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Authenticate(mock.Anything, "acc").Return(newCustomer(), nil)
		h.authUC.EXPECT().ChangePassword(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidCredentials)

		rec := h.do(http.MethodPost, "/api/auth/change-password",
			`{"currentPassword":"wrong","newPassword":"secret2"}`, withCookie("accessToken", "acc"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

		rec := h.do(http.MethodPost, "/api/auth/change-password", `{"currentPassword":"a","newPassword":"b"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorHandling(t *testing.T) {
	t.Run("unexpected errors become a bare 500", func(t *testing.T) {
		h := newHarness(t)

		h.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset by peer"))

		rec := h.do(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret1"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Server error", env.Error.Message)
		assert.Nil(t, env.Error.Details)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("unknown route", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodGet, "/api/nope", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
	})

	t.Run("request id is echoed in the envelope", func(t *testing.T) {
		h := newHarness(t)

		rec := h.do(http.MethodGet, "/health", "", withHeader("X-Request-Id", "req-7"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-7", decode(t, rec).Meta.RequestID)
		assert.Equal(t, "req-7", rec.Header().Get("X-Request-Id"))
	})
}

func TestCORSAllowsCredentials(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodOptions, "/api/auth/login", "",
		withHeader("Origin", "http://localhost:5173"),
		withHeader("Access-Control-Request-Method", http.MethodPost))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
