package notifier_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/mailer"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/atelierbellemare/atelier-backend/tests/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotifierTestSuite struct {
	suite.Suite
	mailer    *mocks.MockMailer
	inquiries *mocks.MockInquiryRepository
	paintings *mocks.MockPaintingRepository
	service   *notifier.Service
}

func (s *NotifierTestSuite) SetupTest() {
	s.mailer = new(mocks.MockMailer)
	s.inquiries = new(mocks.MockInquiryRepository)
	s.paintings = new(mocks.MockPaintingRepository)
	s.service = notifier.NewService(
		s.mailer,
		s.inquiries,
		s.paintings,
		"site@atelierbellemare.ca",
		[]string{"andre@atelierbellemare.ca"},
		"André Bellemare",
		slog.New(slog.DiscardHandler),
	)
}

func (s *NotifierTestSuite) generalInquiry() *models.Inquiry {
	return &models.Inquiry{
		ID:        7,
		Kind:      models.KindGeneral,
		Name:      "Jean Dupont",
		Email:     "jean@example.com",
		Message:   "Bonjour, vos toiles sont magnifiques.",
		CreatedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func (s *NotifierTestSuite) purchaseInquiry() (*models.Inquiry, *models.Painting) {
	painting := &models.Painting{
		ID:       3,
		Title:    "Crépuscule à Montréal",
		SKU:      "AB-2024-003",
		PriceCAD: 1450,
	}
	paintingID := painting.ID
	inquiry := &models.Inquiry{
		ID:         8,
		Kind:       models.KindPurchase,
		Name:       "Marie Tremblay",
		Email:      "marie@example.com",
		PaintingID: &paintingID,
		CreatedAt:  time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
	}
	return inquiry, painting
}

func (s *NotifierTestSuite) TestNotifySuccessRecordsDelivery() {
	inquiry := s.generalInquiry()
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(nil)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, true, mock.AnythingOfType("time.Time"), "", "").Return(nil)

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)

	s.NoError(err)
	s.True(result.Sent)
	s.NoError(result.Err)
	s.inquiries.AssertExpectations(s.T())
	s.mailer.AssertExpectations(s.T())
}

func (s *NotifierTestSuite) TestNotifyGeneralSubjectAndBody() {
	inquiry := s.generalInquiry()
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(nil)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, true, mock.AnythingOfType("time.Time"), "", "").Return(nil)

	_, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)
	s.NoError(err)

	s.Require().Len(s.mailer.Sent, 1)
	sent := s.mailer.Sent[0]
	s.Equal("[André Bellemare] Nouveau message de Jean Dupont", sent.Subject)
	s.Equal("site@atelierbellemare.ca", sent.From)
	s.Equal([]string{"andre@atelierbellemare.ca"}, sent.To)
	s.Contains(sent.Body, "Jean Dupont")
	s.Contains(sent.Body, "jean@example.com")
	s.Contains(sent.Body, "vos toiles sont magnifiques")
	s.Contains(sent.Body, "2026-03-14 10:30")
}

func (s *NotifierTestSuite) TestNotifyPurchaseLoadsPaintingAndRendersDetails() {
	inquiry, painting := s.purchaseInquiry()
	s.paintings.On("GetByID", mock.Anything, painting.ID).Return(painting, nil)
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(nil)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, true, mock.AnythingOfType("time.Time"), "", "").Return(nil)

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)
	s.NoError(err)
	s.True(result.Sent)

	s.Require().Len(s.mailer.Sent, 1)
	sent := s.mailer.Sent[0]
	s.Equal("[André Bellemare] Demande d'achat - Crépuscule à Montréal", sent.Subject)
	s.Contains(sent.Body, "Crépuscule à Montréal")
	s.Contains(sent.Body, "AB-2024-003")
	s.Contains(sent.Body, "1450.00 $ CAD")
	s.Contains(sent.Body, "Marie Tremblay")
	s.paintings.AssertExpectations(s.T())
}

func (s *NotifierTestSuite) TestNotifyPurchaseUsesPreloadedPainting() {
	inquiry, painting := s.purchaseInquiry()
	inquiry.Painting = painting
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(nil)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, true, mock.AnythingOfType("time.Time"), "", "").Return(nil)

	_, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)
	s.NoError(err)

	s.paintings.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *NotifierTestSuite) TestNotifySilentSwallowsSendError() {
	inquiry := s.generalInquiry()
	sendErr := errors.New("dial tcp: connection refused")
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(sendErr)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, false, mock.AnythingOfType("time.Time"),
		sendErr.Error(), mock.AnythingOfType("string")).Return(nil)

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)

	s.NoError(err)
	s.False(result.Sent)
	s.ErrorIs(result.Err, sendErr)
	s.inquiries.AssertExpectations(s.T())
}

func (s *NotifierTestSuite) TestNotifyRaiseReturnsSendError() {
	inquiry := s.generalInquiry()
	sendErr := errors.New("dial tcp: connection refused")
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(sendErr)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, false, mock.AnythingOfType("time.Time"),
		sendErr.Error(), mock.AnythingOfType("string")).Return(nil)

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeRaise)

	s.ErrorIs(err, sendErr)
	s.False(result.Sent)
}

func (s *NotifierTestSuite) TestNotifyFailureDetailNamesRecipients() {
	inquiry := s.generalInquiry()
	sendErr := errors.New("550 mailbox unavailable")
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(sendErr)

	var detail string
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, false, mock.AnythingOfType("time.Time"),
		sendErr.Error(), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			detail = args.String(5)
		}).Return(nil)

	_, _ = s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)

	s.Contains(detail, "andre@atelierbellemare.ca")
	s.Contains(detail, "inquiry 7")
	s.Contains(detail, "550 mailbox unavailable")
}

func (s *NotifierTestSuite) TestNotifyPurchaseMissingPaintingRecordsFailure() {
	inquiry, painting := s.purchaseInquiry()
	s.paintings.On("GetByID", mock.Anything, painting.ID).Return(nil, errors.New("record not found"))
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, false, mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeRaise)

	s.Error(err)
	s.False(result.Sent)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *NotifierTestSuite) TestNotifyRecordDeliveryErrorDoesNotMaskOutcome() {
	inquiry := s.generalInquiry()
	s.mailer.On("Send", mock.Anything, mock.AnythingOfType("mailer.Email")).Return(nil)
	s.inquiries.On("RecordDelivery", mock.Anything, inquiry.ID, true, mock.AnythingOfType("time.Time"), "", "").
		Return(errors.New("database is locked"))

	result, err := s.service.Notify(context.Background(), inquiry, notifier.ModeSilent)

	s.NoError(err)
	s.True(result.Sent)
}

func (s *NotifierTestSuite) TestSubjectFallsBackToGeneralWithoutPainting() {
	inquiry := s.generalInquiry()
	subject := s.service.Subject(inquiry, nil)
	s.Equal("[André Bellemare] Nouveau message de Jean Dupont", subject)
}

func TestNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

var _ mailer.Mailer = (*mocks.MockMailer)(nil)
