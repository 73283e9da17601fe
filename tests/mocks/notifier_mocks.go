package mocks

import (
	"context"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/stretchr/testify/mock"
)

// MockNotifier implements the handlers.InquiryNotifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, inquiry *models.Inquiry, mode notifier.Mode) (notifier.Result, error) {
	args := m.Called(ctx, inquiry, mode)
	return args.Get(0).(notifier.Result), args.Error(1)
}
