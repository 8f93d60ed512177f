package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"adpilot/config"
	deliverycontext "adpilot/internal/delivery/context"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MailJob is the message published to the mail queue and consumed by the mail worker.
type MailJob struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}

// Validate reports whether the job carries everything needed to send it.
func (j MailJob) Validate() error {
	if j.To == "" || j.Subject == "" || j.HTMLBody == "" {
		return errors.New("mail job requires to, subject and htmlBody")
	}

	return nil
}

// HeaderRequestID is the AMQP header carrying the originating request id.
const HeaderRequestID = "request_id"

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpDialer opens a publishing channel on which the mail queue is declared.
type amqpDialer func(url, queue string) (amqpPublisher, io.Closer, error)

// amqpDispatcher hands emails to the mail worker through a durable queue.
// The connection is opened by Connect and reopened by Send after the broker drops it.
type amqpDispatcher struct {
	mu      sync.Mutex
	url     string
	dial    amqpDialer
	conn    io.Closer
	channel amqpPublisher
	queue   string
	logger  *slog.Logger
}

// NewAMQPDispatcher validates the AMQP settings. It does not dial; Connect does.
func NewAMQPDispatcher(cfg *config.MailConfig, logger *slog.Logger) (*amqpDispatcher, error) {
	if cfg.AMQP.URL == "" {
		return nil, errors.New("amqp url is required for amqp provider")
	}

	return &amqpDispatcher{
		url:    cfg.AMQP.URL,
		dial:   dialAMQP,
		queue:  cfg.AMQP.Queue,
		logger: logger,
	}, nil
}

func dialAMQP(url, queue string) (amqpPublisher, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to dial AMQP broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "failed to open AMQP channel")
	}

	if err := DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, err
	}

	return ch, conn, nil
}

// Connect opens the broker connection and declares the queue.
func (d *amqpDispatcher) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.connectLocked()
}

func (d *amqpDispatcher) connectLocked() error {
	if d.channel != nil {
		return nil
	}

	ch, conn, err := d.dial(d.url, d.queue)
	if err != nil {
		return err
	}
	d.channel = ch
	d.conn = conn

	return nil
}

// resetLocked drops a connection that failed so the next publish dials again.
func (d *amqpDispatcher) resetLocked() {
	if d.channel != nil {
		_ = d.channel.Close()
	}
	if d.conn != nil {
		_ = d.conn.Close()
	}
	d.channel = nil
	d.conn = nil
}

// DeclareQueue declares the durable mail queue. Publisher and worker both call it.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return nil
}

func (d *amqpDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(MailJob{To: to, Subject: subject, HTMLBody: htmlBody})
	if err != nil {
		return errors.WithStack(err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	// Carry the request id so the worker's logs can be joined with the API's.
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		pub.Headers = amqp.Table{HeaderRequestID: requestID}
	}

	// amqp channels must not be shared between concurrent publishers.
	d.mu.Lock()
	defer d.mu.Unlock()

	err = d.publishLocked(ctx, pub)
	if errors.Is(err, amqp.ErrClosed) {
		d.logger.WarnContext(ctx, "AMQP connection closed, reconnecting", slog.String("queue", d.queue))
		err = d.publishLocked(ctx, pub)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to publish mail job to %s", d.queue)
	}

	d.logger.DebugContext(ctx, "Mail job published", slog.String("queue", d.queue))

	return nil
}

func (d *amqpDispatcher) publishLocked(ctx context.Context, pub amqp.Publishing) error {
	if err := d.connectLocked(); err != nil {
		return err
	}

	if err := d.channel.PublishWithContext(ctx, "", d.queue, false, false, pub); err != nil {
		d.resetLocked()

		return err
	}

	return nil
}

func (d *amqpDispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var errs []error
	if d.channel != nil {
		if err := d.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.channel = nil
	d.conn = nil
	if len(errs) > 0 {
		return errors.Wrap(errs[0], "failed to close AMQP dispatcher")
	}

	return nil
}
