// Package observability wires error reporting to Sentry.
package observability

import (
	"context"
	"log/slog"
	"time"

	"adpilot/config"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Reporter forwards unexpected errors to Sentry. A Reporter built without a DSN is a no-op.
type Reporter struct {
	hub *sentry.Hub
}

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewReporter initializes the Sentry client when sentry.dsn is set.
func NewReporter(params Params) (*Reporter, error) {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry not configured, error reporting disabled")

		return &Reporter{}, nil
	}

	environment := cfg.Environment
	if environment == "" {
		environment = params.Config.Env.Env
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		ServerName:       params.Config.Env.ServiceName,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize sentry")
	}

	hub := sentry.NewHub(client, sentry.NewScope())

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Flush(flushTimeout)

			return nil
		},
	})

	return &Reporter{hub: hub}, nil
}

// Enabled reports whether errors are actually sent.
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// CaptureException reports err with the given tags attached to its scope.
func (r *Reporter) CaptureException(err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// CapturePanic reports a recovered panic value along with its stack.
func (r *Reporter) CapturePanic(recovered any, stack []byte) {
	if !r.Enabled() {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetExtra("panic", recovered)
		scope.SetExtra("stack", string(stack))
		hub.CaptureMessage("panic in request")
	})
}
