package middleware

import (
	"log/slog"
	"net/http"

	"adpilot/internal/delivery/api/response"
	deliverycontext "adpilot/internal/delivery/context"
	domainerrors "adpilot/internal/domain/errors"
	"adpilot/internal/infra/observability"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Logger   *slog.Logger
	Reporter *observability.Reporter `optional:"true"`
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	reporter *observability.Reporter
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   params.Logger,
		reporter: params.Reporter,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.report(c, err)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.report(c, err)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.report(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// HandlePanic is the Recover middleware hook: it reports the panic and lets the error handler answer.
func (m *ErrorMiddleware) HandlePanic(c echo.Context, err error, stack []byte) error {
	m.reporter.CapturePanic(err, stack)

	return err
}

func (m *ErrorMiddleware) report(c echo.Context, err error) {
	req := c.Request()

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)

	m.reporter.CaptureException(err, map[string]string{
		"request_id": deliverycontext.GetRequestID(c),
		"method":     req.Method,
		"route":      c.Path(),
	})
}
