package service

import (
	"context"
	"time"
)

// MailDispatcher delivers an HTML email.
type MailDispatcher interface {
	Send(ctx context.Context, to, subject, htmlBody string) error

	// Close releases any resources held by the dispatcher
	Close() error
}

// MailRenderer builds the transactional emails sent by the application.
type MailRenderer interface {
	// PasswordReset returns the subject and HTML body of the reset email.
	PasswordReset(resetURL string, ttl time.Duration) (subject string, htmlBody string, err error)
}
