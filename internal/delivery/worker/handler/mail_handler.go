// Package handler contains the message handlers of the mail worker.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "adpilot/internal/delivery/context"
	"adpilot/internal/domain/service"
	"adpilot/internal/infra/mail"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// Outcome is what the handler did with a delivery.
type Outcome string

const (
	OutcomeSent     Outcome = "sent"
	OutcomeRejected Outcome = "rejected"
	OutcomeRequeued Outcome = "requeued"
	OutcomeDropped  Outcome = "dropped"
)

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	Dispatcher service.MailDispatcher
}

// MailHandler sends the mail jobs read from the queue.
type MailHandler struct {
	logger     *slog.Logger
	dispatcher service.MailDispatcher
}

// NewMailHandler creates a new mail job handler
func NewMailHandler(params MailHandlerParams) *MailHandler {
	return &MailHandler{
		logger:     params.Logger,
		dispatcher: params.Dispatcher,
	}
}

// Handle sends one job and settles the delivery:
// malformed jobs are rejected, a failed send is requeued once and dropped when it fails again.
// The returned error is only set when the broker could not be told the outcome.
func (h *MailHandler) Handle(ctx context.Context, d amqp.Delivery) (Outcome, error) {
	requestID := extractRequestID(d)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	var job mail.MailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		reqLogger.Warn("[Worker] Failed to parse mail job", slog.Any("error", err))

		return OutcomeRejected, errors.WithStack(d.Reject(false))
	}
	if err := job.Validate(); err != nil {
		reqLogger.Warn("[Worker] Invalid mail job", slog.Any("error", err))

		return OutcomeRejected, errors.WithStack(d.Reject(false))
	}

	if err := h.dispatcher.Send(ctx, job.To, job.Subject, job.HTMLBody); err != nil {
		if d.Redelivered {
			reqLogger.Error("[Worker] Mail delivery failed again, dropping job",
				slog.String("subject", job.Subject),
				slog.Any("error", err),
			)

			return OutcomeDropped, errors.WithStack(d.Nack(false, false))
		}

		reqLogger.Warn("[Worker] Mail delivery failed, requeueing job",
			slog.String("subject", job.Subject),
			slog.Any("error", err),
		)

		return OutcomeRequeued, errors.WithStack(d.Nack(false, true))
	}

	reqLogger.Info("[Worker] Mail sent", slog.String("subject", job.Subject))

	return OutcomeSent, errors.WithStack(d.Ack(false))
}

// extractRequestID reads the request id header set by the publisher, or generates a new one.
func extractRequestID(d amqp.Delivery) string {
	if requestID, ok := d.Headers[mail.HeaderRequestID].(string); ok && requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
