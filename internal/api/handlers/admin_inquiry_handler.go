package handlers

import (
	"errors"
	"strconv"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/notifier"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// AdminInquiryHandler handles the back-office inquiry views
type AdminInquiryHandler struct {
	inquiryRepo repository.InquiryRepository
	notifier    InquiryNotifier
}

// NewAdminInquiryHandler creates a new AdminInquiryHandler
func NewAdminInquiryHandler(inquiryRepo repository.InquiryRepository, n InquiryNotifier) *AdminInquiryHandler {
	return &AdminInquiryHandler{
		inquiryRepo: inquiryRepo,
		notifier:    n,
	}
}

// List handles GET /api/admin/inquiries
func (h *AdminInquiryHandler) List(c echo.Context) error {
	filter := repository.InquiryFilter{}

	switch kind := c.QueryParam("kind"); kind {
	case "", models.KindGeneral, models.KindPurchase:
		filter.Kind = kind
	default:
		return response.BadRequest(c, "invalid inquiry kind")
	}

	if v := c.QueryParam("is_read"); v != "" {
		b := v == "true"
		filter.IsRead = &b
	}
	if v := c.QueryParam("is_archived"); v != "" {
		b := v == "true"
		filter.IsArchived = &b
	}
	if v := c.QueryParam("email_status"); v != "" {
		b := v == "true"
		filter.EmailStatus = &b
	}

	limit := 0
	offset := 0
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	if o := c.QueryParam("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil {
			offset = parsed
		}
	}
	filter.Limit, filter.Offset = validator.ValidatePagination(limit, offset)

	inquiries, total, err := h.inquiryRepo.List(c.Request().Context(), filter)
	if err != nil {
		return response.InternalError(c, "failed to list inquiries")
	}

	return response.Paginated(c, inquiries, total, filter.Limit, filter.Offset)
}

// Get handles GET /api/admin/inquiries/:id
func (h *AdminInquiryHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid inquiry ID")
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "inquiry not found")
		}
		return response.InternalError(c, "failed to get inquiry")
	}

	// Opening an inquiry marks it read
	if !inquiry.IsRead {
		_ = h.inquiryRepo.SetRead(c.Request().Context(), id, true)
		inquiry.IsRead = true
	}

	return response.Success(c, inquiry)
}

// MarkRead handles PATCH /api/admin/inquiries/:id/read
func (h *AdminInquiryHandler) MarkRead(c echo.Context) error {
	return h.setRead(c, true, "inquiry marked as read")
}

// MarkUnread handles PATCH /api/admin/inquiries/:id/unread
func (h *AdminInquiryHandler) MarkUnread(c echo.Context) error {
	return h.setRead(c, false, "inquiry marked as unread")
}

func (h *AdminInquiryHandler) setRead(c echo.Context, read bool, message string) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid inquiry ID")
	}

	if err := h.inquiryRepo.SetRead(c.Request().Context(), id, read); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "inquiry not found")
		}
		return response.InternalError(c, "failed to update inquiry")
	}

	return response.SuccessWithMessage(c, nil, message)
}

// Archive handles PATCH /api/admin/inquiries/:id/archive
func (h *AdminInquiryHandler) Archive(c echo.Context) error {
	return h.setArchived(c, true, "inquiry archived")
}

// Unarchive handles PATCH /api/admin/inquiries/:id/unarchive
func (h *AdminInquiryHandler) Unarchive(c echo.Context) error {
	return h.setArchived(c, false, "inquiry unarchived")
}

func (h *AdminInquiryHandler) setArchived(c echo.Context, archived bool, message string) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid inquiry ID")
	}

	if err := h.inquiryRepo.SetArchived(c.Request().Context(), id, archived); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "inquiry not found")
		}
		return response.InternalError(c, "failed to update inquiry")
	}

	return response.SuccessWithMessage(c, nil, message)
}

// Resend handles POST /api/admin/inquiries/:id/resend. Unlike the intake
// forms, a failed send here is reported to the caller.
func (h *AdminInquiryHandler) Resend(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid inquiry ID")
	}

	inquiry, err := h.inquiryRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "inquiry not found")
		}
		return response.InternalError(c, "failed to get inquiry")
	}

	result, err := h.notifier.Notify(c.Request().Context(), inquiry, notifier.ModeRaise)
	if err != nil || !result.Sent {
		return response.NotificationFailed(c, "notification email failed")
	}

	return response.SuccessWithMessage(c, nil, "notification email sent")
}

// parseID reads the :id route parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
