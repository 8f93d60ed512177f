// Package mail contains the MailDispatcher implementations and the email templates.
package mail

import (
	"context"
	"log/slog"

	"adpilot/config"
	"adpilot/internal/domain/constants"
	"adpilot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for MailDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMailDispatcher creates a MailDispatcher based on mail.provider.
func NewMailDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Mail not configured, using log dispatcher")

		return NewLogDispatcher(logger), nil
	}

	var dispatcher service.MailDispatcher
	var err error

	switch cfg.Provider {
	case constants.MailProviderLog:
		logger.Info("Using log mail dispatcher")

		dispatcher = NewLogDispatcher(logger)

	case constants.MailProviderSMTP:
		logger.Info("Using SMTP mail dispatcher",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)

		dispatcher, err = NewSMTPDispatcher(cfg, logger)
		if err != nil {
			return nil, err
		}

	case constants.MailProviderAMQP:
		logger.Info("Using AMQP mail dispatcher",
			slog.String("queue", cfg.AMQP.Queue),
		)

		queued, err := NewAMQPDispatcher(cfg, logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return queued.Connect()
			},
		})
		dispatcher = queued

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// NewDeliveryDispatcher builds the dispatcher the mail worker sends with. It never publishes
// back to the queue: SMTP when a relay is configured, the log dispatcher otherwise.
func NewDeliveryDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.SMTP.Host == "" {
		params.Logger.Warn("SMTP not configured, mail worker will only log outgoing mail")

		return NewLogDispatcher(params.Logger), nil
	}

	dispatcher, err := NewSMTPDispatcher(cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailDispatcher, NewMailRenderer),
)

// WorkerModule provides the dispatcher used by the mail worker.
//
//nolint:gochecknoglobals
var WorkerModule = fx.Options(
	fx.Provide(NewDeliveryDispatcher),
)
