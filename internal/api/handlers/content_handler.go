package handlers

import (
	"strconv"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	"github.com/atelierbellemare/atelier-backend/internal/config"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

// ContentHandler serves the public site content: FAQs, testimonials and
// site settings.
type ContentHandler struct {
	faqRepo         repository.FAQRepository
	testimonialRepo repository.TestimonialRepository
	settings        config.SiteSettings
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(faqRepo repository.FAQRepository, testimonialRepo repository.TestimonialRepository,
	settings config.SiteSettings) *ContentHandler {
	return &ContentHandler{
		faqRepo:         faqRepo,
		testimonialRepo: testimonialRepo,
		settings:        settings,
	}
}

// ListFAQs handles GET /api/faqs
func (h *ContentHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.faqRepo.List(c.Request().Context(), true)
	if err != nil {
		return response.InternalError(c, "failed to list FAQs")
	}

	return response.Success(c, faqs)
}

// ListTestimonials handles GET /api/testimonials
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	testimonials, err := h.testimonialRepo.List(c.Request().Context(), true, limit)
	if err != nil {
		return response.InternalError(c, "failed to list testimonials")
	}

	return response.Success(c, testimonials)
}

// GetSettings handles GET /api/settings
func (h *ContentHandler) GetSettings(c echo.Context) error {
	return response.Success(c, h.settings)
}
