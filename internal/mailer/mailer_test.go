package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage_Headers(t *testing.T) {
	msg := BuildMessage(Email{
		From:    "noreply@example.com",
		To:      []string{"artist@example.com", "studio@example.com"},
		Subject: "Nouveau message de Jean Dupont",
		Body:    "Bonjour",
	})

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: artist@example.com, studio@example.com\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nBonjour"))
}

func TestBuildMessage_SubjectEncodesAccents(t *testing.T) {
	msg := BuildMessage(Email{
		From:    "noreply@example.com",
		To:      []string{"artist@example.com"},
		Subject: "Demande d'achat - Crépuscule",
		Body:    "",
	})

	// Accented subjects must be encoded, never emitted raw
	header := msg[:strings.Index(msg, "\r\n\r\n")]
	assert.NotContains(t, header, "Crépuscule")
	assert.Contains(t, header, "utf-8")
}

func TestSend_NoRecipients(t *testing.T) {
	m := NewSMTPMailer("localhost", 2525, "", "")
	err := m.Send(context.Background(), Email{From: "a@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}

func TestSend_CanceledContext(t *testing.T) {
	m := NewSMTPMailer("192.0.2.1", 2525, "", "") // TEST-NET, never routable
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Email{
		From: "a@example.com",
		To:   []string{"b@example.com"},
	})
	assert.Error(t, err)
}
