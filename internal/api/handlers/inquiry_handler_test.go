package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// InquiryHandlerTestSuite is the test suite for InquiryHandler
type InquiryHandlerTestSuite struct {
	suite.Suite
	echo             *echo.Echo
	handler          *InquiryHandler
	mockInquiryRepo  *mocks.MockInquiryRepository
	mockPaintingRepo *mocks.MockPaintingRepository
	mockNotifier     *mocks.MockNotifier
}

// SetupTest runs before each test
func (s *InquiryHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockInquiryRepo = new(mocks.MockInquiryRepository)
	s.mockPaintingRepo = new(mocks.MockPaintingRepository)
	s.mockNotifier = new(mocks.MockNotifier)
	s.handler = NewInquiryHandler(s.mockInquiryRepo, s.mockPaintingRepo, s.mockNotifier, nil)
}

// TearDownTest runs after each test
func (s *InquiryHandlerTestSuite) TearDownTest() {
	s.mockInquiryRepo.AssertExpectations(s.T())
	s.mockPaintingRepo.AssertExpectations(s.T())
	s.mockNotifier.AssertExpectations(s.T())
}

// TestInquiryHandlerTestSuite runs the test suite
func TestInquiryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InquiryHandlerTestSuite))
}

func (s *InquiryHandlerTestSuite) createContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *InquiryHandlerTestSuite) availablePainting(id uint) *models.Painting {
	return &models.Painting{
		ID:       id,
		SKU:      "AB-2024-003",
		Title:    "Crépuscule à Montréal",
		Slug:     "crepuscule-a-montreal",
		PriceCAD: 1450,
		IsActive: true,
		Status:   models.StatusAvailableDirect,
	}
}

// ==================== Contact Tests ====================

func (s *InquiryHandlerTestSuite) TestContact_Success() {
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Inquiry).ID = 7
		}).Return(nil)
	s.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Inquiry"), notifier.ModeSilent).
		Return(notifier.Result{Sent: true}, nil)

	body := `{"name":"Jean Dupont","email":"jean@example.com","message":"Bonjour"}`
	c, rec := s.createContext(http.MethodPost, "/api/contact", body)

	err := s.handler.Contact(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(true, resp["success"])
	s.Equal("Votre message a bien été envoyé.", resp["message"])
}

func (s *InquiryHandlerTestSuite) TestContact_CreatesGeneralInquiry() {
	var created *models.Inquiry
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Inquiry)
		}).Return(nil)
	s.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Inquiry"), notifier.ModeSilent).
		Return(notifier.Result{Sent: true}, nil)

	body := `{"name":"Jean Dupont","email":"jean@example.com","phone":"514-555-0101","message":"Bonjour"}`
	c, _ := s.createContext(http.MethodPost, "/api/contact", body)

	s.NoError(s.handler.Contact(c))

	s.Require().NotNil(created)
	s.Equal(models.KindGeneral, created.Kind)
	s.Equal("Jean Dupont", created.Name)
	s.Nil(created.PaintingID)
	s.NotEmpty(created.IPAddress)
}

func (s *InquiryHandlerTestSuite) TestContact_MissingFieldsReturns400() {
	body := `{"name":"","email":"not-an-email","message":""}`
	c, rec := s.createContext(http.MethodPost, "/api/contact", body)

	err := s.handler.Contact(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(false, resp["success"])

	fieldErrs, ok := resp["errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Contains(fieldErrs, "name")
	s.Contains(fieldErrs, "email")
	s.Contains(fieldErrs, "message")
}

func (s *InquiryHandlerTestSuite) TestContact_InvalidBodyReturns400() {
	c, rec := s.createContext(http.MethodPost, "/api/contact", "{not json")

	err := s.handler.Contact(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *InquiryHandlerTestSuite) TestContact_NotifierFailureStillReturns201() {
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).Return(nil)
	s.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Inquiry"), notifier.ModeSilent).
		Return(notifier.Result{Sent: false, Err: assert.AnError}, nil)

	body := `{"name":"Jean Dupont","email":"jean@example.com","message":"Bonjour"}`
	c, rec := s.createContext(http.MethodPost, "/api/contact", body)

	err := s.handler.Contact(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *InquiryHandlerTestSuite) TestContact_RepoErrorReturns500() {
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Return(assert.AnError)

	body := `{"name":"Jean Dupont","email":"jean@example.com","message":"Bonjour"}`
	c, rec := s.createContext(http.MethodPost, "/api/contact", body)

	err := s.handler.Contact(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ==================== PurchaseInquiry Tests ====================

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_Success() {
	painting := s.availablePainting(3)
	s.mockPaintingRepo.On("GetByID", mock.Anything, uint(3)).Return(painting, nil)

	var created *models.Inquiry
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Inquiry)
		}).Return(nil)
	s.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Inquiry"), notifier.ModeSilent).
		Return(notifier.Result{Sent: true}, nil)

	body := `{"name":"Marie Tremblay","email":"marie@example.com","painting_id":3}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	err := s.handler.PurchaseInquiry(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	s.Require().NotNil(created)
	s.Equal(models.KindPurchase, created.Kind)
	s.Require().NotNil(created.PaintingID)
	s.Equal(uint(3), *created.PaintingID)
}

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_MessageOptional() {
	painting := s.availablePainting(3)
	s.mockPaintingRepo.On("GetByID", mock.Anything, uint(3)).Return(painting, nil)
	s.mockInquiryRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Inquiry")).Return(nil)
	s.mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Inquiry"), notifier.ModeSilent).
		Return(notifier.Result{Sent: true}, nil)

	body := `{"name":"Marie Tremblay","email":"marie@example.com","painting_id":3,"message":""}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	s.NoError(s.handler.PurchaseInquiry(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_MissingPaintingIDReturns400() {
	body := `{"name":"Marie Tremblay","email":"marie@example.com"}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	err := s.handler.PurchaseInquiry(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	fieldErrs, ok := resp["errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Contains(fieldErrs, "painting_id")
}

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_UnknownPaintingReturns404() {
	s.mockPaintingRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	body := `{"name":"Marie Tremblay","email":"marie@example.com","painting_id":99}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	err := s.handler.PurchaseInquiry(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_SoldPaintingReturns409() {
	painting := s.availablePainting(3)
	painting.Status = models.StatusSoldDirect
	s.mockPaintingRepo.On("GetByID", mock.Anything, uint(3)).Return(painting, nil)

	body := `{"name":"Marie Tremblay","email":"marie@example.com","painting_id":3}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	err := s.handler.PurchaseInquiry(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("NOT_AVAILABLE", resp["code"])
}

func (s *InquiryHandlerTestSuite) TestPurchaseInquiry_InactivePaintingReturns404() {
	painting := s.availablePainting(3)
	painting.IsActive = false
	s.mockPaintingRepo.On("GetByID", mock.Anything, uint(3)).Return(painting, nil)

	body := `{"name":"Marie Tremblay","email":"marie@example.com","painting_id":3}`
	c, rec := s.createContext(http.MethodPost, "/api/purchase-inquiry", body)

	err := s.handler.PurchaseInquiry(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
	s.mockInquiryRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}
