package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"adpilot/internal/domain/service"

	"github.com/pkg/errors"
)

// PasswordResetSubject is the subject line of the password reset email.
const PasswordResetSubject = "Reset your password"

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<p>You requested a password reset.</p>
<p>Click this link to reset your password (expires in {{.ExpiresIn}}):</p>
<p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
<p>If you didn't request this, you can ignore this email.</p>
`))

type templateRenderer struct{}

// NewMailRenderer returns the html/template based MailRenderer.
func NewMailRenderer() service.MailRenderer {
	return templateRenderer{}
}

func (templateRenderer) PasswordReset(resetURL string, ttl time.Duration) (string, string, error) {
	body, err := RenderPasswordReset(resetURL, ttl)
	if err != nil {
		return "", "", err
	}

	return PasswordResetSubject, body, nil
}

// RenderPasswordReset renders the password reset email body.
func RenderPasswordReset(resetURL string, ttl time.Duration) (string, error) {
	var buf bytes.Buffer
	data := struct {
		ResetURL  string
		ExpiresIn string
	}{
		ResetURL:  resetURL,
		ExpiresIn: humanizeMinutes(ttl),
	}

	if err := passwordResetTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render password reset email")
	}

	return buf.String(), nil
}

func humanizeMinutes(d time.Duration) string {
	minutes := int(d.Round(time.Minute) / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%d minutes", minutes)
}
