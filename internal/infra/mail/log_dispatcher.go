package mail

import (
	"context"
	"log/slog"

	"adpilot/internal/domain/service"
)

// logDispatcher writes emails to the log instead of sending them.
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher returns a dispatcher for local development.
func NewLogDispatcher(logger *slog.Logger) service.MailDispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	d.logger.InfoContext(ctx, "[LogMail] Email not sent, logging instead",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", htmlBody),
	)

	return nil
}

func (d *logDispatcher) Close() error {
	return nil
}
