package handlers

import (
	"context"
	"errors"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	apperrors "github.com/atelierbellemare/atelier-backend/internal/errors"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/validator"
	"github.com/atelierbellemare/atelier-backend/internal/websocket"
	"github.com/labstack/echo/v4"
)

// InquiryNotifier dispatches the operator notification for an inquiry
type InquiryNotifier interface {
	Notify(ctx context.Context, inquiry *models.Inquiry, mode notifier.Mode) (notifier.Result, error)
}

// InquiryHandler handles the public contact and purchase-inquiry forms
type InquiryHandler struct {
	inquiryRepo  repository.InquiryRepository
	paintingRepo repository.PaintingRepository
	notifier     InquiryNotifier
	hub          *websocket.Hub
}

// NewInquiryHandler creates a new InquiryHandler. The hub may be nil when
// no live admin feed is running.
func NewInquiryHandler(inquiryRepo repository.InquiryRepository, paintingRepo repository.PaintingRepository,
	n InquiryNotifier, hub *websocket.Hub) *InquiryHandler {
	return &InquiryHandler{
		inquiryRepo:  inquiryRepo,
		paintingRepo: paintingRepo,
		notifier:     n,
		hub:          hub,
	}
}

// ContactRequest represents the request body for the contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// PurchaseInquiryRequest represents the request body for the purchase form
type PurchaseInquiryRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PaintingID uint   `json:"painting_id"`
}

// Contact handles POST /api/contact
func (h *InquiryHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	input := validator.InquiryInput{
		Name:    validator.SanitizeString(req.Name, validator.MaxNameLength),
		Email:   validator.SanitizeString(req.Email, validator.MaxEmailLength),
		Phone:   validator.SanitizeString(req.Phone, validator.MaxPhoneLength),
		Message: validator.SanitizeString(req.Message, validator.MaxMessageLength),
	}

	if fieldErrs := validator.ValidateInquiry(input, true); fieldErrs.HasErrors() {
		return response.ValidationFailed(c, fieldErrs)
	}

	inquiry := &models.Inquiry{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Kind:      models.KindGeneral,
		IPAddress: c.RealIP(),
	}

	if err := h.inquiryRepo.Create(c.Request().Context(), inquiry); err != nil {
		return response.InternalError(c, "failed to save message")
	}

	// Mail outage must not break form submission
	h.notifier.Notify(c.Request().Context(), inquiry, notifier.ModeSilent)
	h.broadcast(inquiry, "")

	return response.CreatedWithMessage(c, map[string]uint{"id": inquiry.ID},
		"Votre message a bien été envoyé.")
}

// PurchaseInquiry handles POST /api/purchase-inquiry
func (h *InquiryHandler) PurchaseInquiry(c echo.Context) error {
	var req PurchaseInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	input := validator.InquiryInput{
		Name:    validator.SanitizeString(req.Name, validator.MaxNameLength),
		Email:   validator.SanitizeString(req.Email, validator.MaxEmailLength),
		Phone:   validator.SanitizeString(req.Phone, validator.MaxPhoneLength),
		Message: validator.SanitizeString(req.Message, validator.MaxMessageLength),
	}

	fieldErrs := validator.ValidateInquiry(input, false)
	if req.PaintingID == 0 {
		fieldErrs.Add("painting_id", "painting_id is required")
	}
	if fieldErrs.HasErrors() {
		return response.ValidationFailed(c, fieldErrs)
	}

	painting, err := h.paintingRepo.GetByID(c.Request().Context(), req.PaintingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	// Inactive paintings are invisible on the public site, so an inquiry
	// referencing one looks like a stale or forged reference
	if !painting.IsActive {
		return response.NotFound(c, "painting not found")
	}
	if !painting.IsAvailable() {
		return response.Error(c, apperrors.ErrPaintingNotAvailable)
	}

	paintingID := painting.ID
	inquiry := &models.Inquiry{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		Kind:       models.KindPurchase,
		PaintingID: &paintingID,
		Painting:   painting,
		IPAddress:  c.RealIP(),
	}

	if err := h.inquiryRepo.Create(c.Request().Context(), inquiry); err != nil {
		return response.InternalError(c, "failed to save inquiry")
	}

	h.notifier.Notify(c.Request().Context(), inquiry, notifier.ModeSilent)
	h.broadcast(inquiry, painting.Title)

	return response.CreatedWithMessage(c, map[string]uint{"id": inquiry.ID},
		"Votre demande d'achat a bien été envoyée.")
}

func (h *InquiryHandler) broadcast(inquiry *models.Inquiry, paintingTitle string) {
	if h.hub == nil {
		return
	}
	h.hub.BroadcastNewInquiry(&websocket.InquiryPayload{
		ID:            inquiry.ID,
		Kind:          inquiry.Kind,
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		PaintingID:    inquiry.PaintingID,
		PaintingTitle: paintingTitle,
		CreatedAt:     inquiry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}
