package observability

import (
	"io"
	"log/slog"
	"testing"

	"adpilot/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewReporter_DisabledWithoutDSN(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	reporter, err := NewReporter(Params{
		Lc:     lc,
		Config: &config.Config{Sentry: &config.SentryConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.False(t, reporter.Enabled())
	assert.NotPanics(t, func() {
		reporter.CaptureException(errors.New("boom"), map[string]string{"request_id": "r"})
		reporter.CapturePanic("boom", nil)
	})
}

func TestNewReporter_InvalidDSN(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewReporter(Params{
		Lc:     lc,
		Config: &config.Config{Sentry: &config.SentryConfig{DSN: "::not a dsn::"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestReporter_NilIsDisabled(t *testing.T) {
	var reporter *Reporter

	assert.False(t, reporter.Enabled())
	assert.NotPanics(t, func() { reporter.CaptureException(errors.New("boom"), nil) })
}
