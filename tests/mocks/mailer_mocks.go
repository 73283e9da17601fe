package mocks

import (
	"context"

	"github.com/atelierbellemare/atelier-backend/internal/mailer"
	"github.com/stretchr/testify/mock"
)

// MockMailer implements mailer.Mailer and records every email handed to it.
type MockMailer struct {
	mock.Mock

	Sent []mailer.Email
}

func (m *MockMailer) Send(ctx context.Context, email mailer.Email) error {
	args := m.Called(ctx, email)
	if args.Error(0) == nil {
		m.Sent = append(m.Sent, email)
	}
	return args.Error(0)
}
