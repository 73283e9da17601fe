// Package mailer sends outbound notification email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Email is a plain-text outbound message
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Mailer defines the interface for sending email
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// smtpMailer implements Mailer against a real SMTP submission endpoint
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer creates a Mailer that submits via the configured SMTP host.
// An empty username disables authentication (local relay setups).
func NewSMTPMailer(host string, port int, username, password string) Mailer {
	return &smtpMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send submits the email. The send is a blocking network call performed
// inline in the request; the context deadline, when set, bounds it.
func (m *smtpMailer) Send(ctx context.Context, email Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	var auth sasl.Client
	if m.username != "" {
		auth = sasl.NewPlainClient("", m.username, m.password)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	msg := strings.NewReader(BuildMessage(email))

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(addr, auth, email.From, email.To, msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("smtp send canceled: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("smtp send via %s: %w", addr, err)
		}
		return nil
	}
}

// BuildMessage renders the RFC 5322 message text for a plain-text email.
// The subject is Q-encoded so accented French subjects survive transport.
func BuildMessage(email Email) string {
	var b strings.Builder
	b.WriteString("From: " + email.From + "\r\n")
	b.WriteString("To: " + strings.Join(email.To, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	return b.String()
}
