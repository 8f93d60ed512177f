package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"adpilot/config"
	"adpilot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sendMailFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// smtpDispatcher delivers mail through an SMTP relay. smtp.SendMail upgrades to
// STARTTLS when the server offers it.
type smtpDispatcher struct {
	addr     string
	host     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
	logger   *slog.Logger
}

// NewSMTPDispatcher builds the SMTP dispatcher from mail config.
func NewSMTPDispatcher(cfg *config.MailConfig, logger *slog.Logger) (service.MailDispatcher, error) {
	if cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required for smtp provider")
	}

	from := cfg.From
	if from == "" {
		from = cfg.SMTP.Username
	}
	if from == "" {
		return nil, errors.New("mail from address is required for smtp provider")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = 587
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpDispatcher{
		addr:     net.JoinHostPort(cfg.SMTP.Host, strconv.Itoa(port)),
		host:     cfg.SMTP.Host,
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
		logger:   logger,
	}, nil
}

func (d *smtpDispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := buildMessage(d.from, to, subject, htmlBody, d.host)
	if err := d.sendMail(d.addr, d.auth, d.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail via %s", d.addr)
	}

	d.logger.DebugContext(ctx, "Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func (d *smtpDispatcher) Close() error {
	return nil
}

// buildMessage renders an RFC 5322 message with an HTML body.
func buildMessage(from, to, subject, htmlBody, host string) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.NewString(), host)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)

	return buf.Bytes()
}
