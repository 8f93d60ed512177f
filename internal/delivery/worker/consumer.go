package worker

import (
	"context"
	"log/slog"
	"sync"

	"adpilot/config"
	"adpilot/internal/delivery"
	"adpilot/internal/delivery/worker/handler"
	"adpilot/internal/domain/lifecycle"
	"adpilot/internal/infra/mail"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const consumerTag = "adpilot-mailworker"

// ConsumerParams holds dependencies for the mail queue consumer
type ConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	MailHandler *handler.MailHandler
}

type mailConsumer struct {
	url      string
	queue    string
	prefetch int
	logger   *slog.Logger
	handler  *handler.MailHandler

	mu     sync.Mutex
	conn   *amqp.Connection
	cancel context.CancelFunc
	done   chan struct{}
}

// NewConsumer creates the delivery that drains the mail queue.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Mail
	if cfg == nil || cfg.AMQP.URL == "" {
		return nil, errors.New("mail.amqp.url is required for the mail worker")
	}

	c := &mailConsumer{
		url:      cfg.AMQP.URL,
		queue:    cfg.AMQP.Queue,
		prefetch: cfg.AMQP.Prefetch,
		logger:   params.Logger,
		handler:  params.MailHandler,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

// Serve connects to the broker and handles jobs until the consumer is stopped.
func (c *mailConsumer) Serve(ctx context.Context) error {
	defer close(c.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "failed to dial AMQP broker")
	}

	c.mu.Lock()
	c.conn = conn
	c.cancel = cancel
	c.mu.Unlock()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open AMQP channel")
	}
	if err := mail.DeclareQueue(ch, c.queue); err != nil {
		return err
	}
	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set AMQP prefetch")
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, consumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.queue)
	}

	c.logger.Info("Consuming mail queue",
		slog.String("queue", c.queue),
		slog.Int("prefetch", c.prefetch),
	)

	return c.consume(ctx, deliveries)
}

// consume handles deliveries one at a time. A closed delivery channel is an error unless ctx is done.
func (c *mailConsumer) consume(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return errors.New("mail queue delivery channel closed")
			}

			outcome, err := c.handler.Handle(ctx, d)
			if err != nil {
				c.logger.Error("[Worker] Failed to settle mail job",
					slog.String("outcome", string(outcome)),
					slog.Any("error", err),
				)
			}
		}
	}
}

func (c *mailConsumer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	c.logger.Info("Stopping mail queue consumer")

	c.mu.Lock()
	conn := c.conn
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	// Let the in-flight job settle before the connection goes away.
	select {
	case <-c.done:
	case <-shutdownCtx.Done():
	}

	if conn == nil || conn.IsClosed() {
		return nil
	}

	return errors.WithStack(conn.Close())
}
