package handlers

import (
	"errors"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// AdminContentHandler handles the back-office content management: FAQs,
// testimonials, categories and finishes.
type AdminContentHandler struct {
	faqRepo         repository.FAQRepository
	testimonialRepo repository.TestimonialRepository
	categoryRepo    repository.CategoryRepository
	finishRepo      repository.FinishRepository
}

// NewAdminContentHandler creates a new AdminContentHandler
func NewAdminContentHandler(faqRepo repository.FAQRepository, testimonialRepo repository.TestimonialRepository,
	categoryRepo repository.CategoryRepository, finishRepo repository.FinishRepository) *AdminContentHandler {
	return &AdminContentHandler{
		faqRepo:         faqRepo,
		testimonialRepo: testimonialRepo,
		categoryRepo:    categoryRepo,
		finishRepo:      finishRepo,
	}
}

// FAQRequest represents the request body for creating or updating a FAQ
type FAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	IsActive *bool  `json:"is_active"`
}

// ListFAQs handles GET /api/admin/faqs
func (h *AdminContentHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.faqRepo.List(c.Request().Context(), false)
	if err != nil {
		return response.InternalError(c, "failed to list FAQs")
	}
	return response.Success(c, faqs)
}

// CreateFAQ handles POST /api/admin/faqs
func (h *AdminContentHandler) CreateFAQ(c echo.Context) error {
	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Question == "" || req.Answer == "" {
		return response.BadRequest(c, "question and answer are required")
	}

	faq := &models.FAQ{
		Question: validator.SanitizeString(req.Question, 300),
		Answer:   req.Answer,
		Position: req.Position,
		IsActive: true,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := h.faqRepo.Create(c.Request().Context(), faq); err != nil {
		return response.InternalError(c, "failed to create FAQ")
	}
	return response.Created(c, faq)
}

// UpdateFAQ handles PUT /api/admin/faqs/:id
func (h *AdminContentHandler) UpdateFAQ(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid FAQ ID")
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Question == "" || req.Answer == "" {
		return response.BadRequest(c, "question and answer are required")
	}

	faq, err := h.faqRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "FAQ not found")
		}
		return response.InternalError(c, "failed to get FAQ")
	}

	faq.Question = validator.SanitizeString(req.Question, 300)
	faq.Answer = req.Answer
	faq.Position = req.Position
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := h.faqRepo.Update(c.Request().Context(), faq); err != nil {
		return response.InternalError(c, "failed to update FAQ")
	}
	return response.Success(c, faq)
}

// DeleteFAQ handles DELETE /api/admin/faqs/:id
func (h *AdminContentHandler) DeleteFAQ(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid FAQ ID")
	}

	if err := h.faqRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "FAQ not found")
		}
		return response.InternalError(c, "failed to delete FAQ")
	}
	return response.NoContent(c)
}

// TestimonialRequest represents the request body for creating or updating
// a testimonial
type TestimonialRequest struct {
	AuthorName     string `json:"author_name"`
	AuthorLocation string `json:"author_location"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	IsActive       *bool  `json:"is_active"`
}

// ListTestimonials handles GET /api/admin/testimonials
func (h *AdminContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.testimonialRepo.List(c.Request().Context(), false, 0)
	if err != nil {
		return response.InternalError(c, "failed to list testimonials")
	}
	return response.Success(c, testimonials)
}

// CreateTestimonial handles POST /api/admin/testimonials
func (h *AdminContentHandler) CreateTestimonial(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.AuthorName == "" || req.Content == "" {
		return response.BadRequest(c, "author_name and content are required")
	}

	testimonial := &models.Testimonial{
		AuthorName:     validator.SanitizeString(req.AuthorName, 100),
		AuthorLocation: validator.SanitizeString(req.AuthorLocation, 100),
		Content:        req.Content,
		Rating:         req.Rating,
		IsActive:       true,
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := h.testimonialRepo.Create(c.Request().Context(), testimonial); err != nil {
		return response.InternalError(c, "failed to create testimonial")
	}
	return response.Created(c, testimonial)
}

// UpdateTestimonial handles PUT /api/admin/testimonials/:id
func (h *AdminContentHandler) UpdateTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid testimonial ID")
	}

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.AuthorName == "" || req.Content == "" {
		return response.BadRequest(c, "author_name and content are required")
	}

	testimonial, err := h.testimonialRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "testimonial not found")
		}
		return response.InternalError(c, "failed to get testimonial")
	}

	testimonial.AuthorName = validator.SanitizeString(req.AuthorName, 100)
	testimonial.AuthorLocation = validator.SanitizeString(req.AuthorLocation, 100)
	testimonial.Content = req.Content
	testimonial.Rating = req.Rating
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}

	if err := h.testimonialRepo.Update(c.Request().Context(), testimonial); err != nil {
		return response.InternalError(c, "failed to update testimonial")
	}
	return response.Success(c, testimonial)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/:id
func (h *AdminContentHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid testimonial ID")
	}

	if err := h.testimonialRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "testimonial not found")
		}
		return response.InternalError(c, "failed to delete testimonial")
	}
	return response.NoContent(c)
}

// CategoryRequest represents the request body for creating or updating
// a category
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories handles GET /api/admin/categories
func (h *AdminContentHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context(), false)
	if err != nil {
		return response.InternalError(c, "failed to list categories")
	}
	return response.Success(c, categories)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminContentHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "name is required")
	}

	category := &models.Category{
		Name:        validator.SanitizeString(req.Name, 100),
		Description: req.Description,
		Position:    req.Position,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.categoryRepo.Create(c.Request().Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return response.Conflict(c, "a category with this name already exists")
		}
		return response.InternalError(c, "failed to create category")
	}
	return response.Created(c, category)
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (h *AdminContentHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid category ID")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "name is required")
	}

	category, err := h.categoryRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "category not found")
		}
		return response.InternalError(c, "failed to get category")
	}

	category.Name = validator.SanitizeString(req.Name, 100)
	category.Description = req.Description
	category.Position = req.Position
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.categoryRepo.Update(c.Request().Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return response.Conflict(c, "a category with this name already exists")
		}
		return response.InternalError(c, "failed to update category")
	}
	return response.Success(c, category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (h *AdminContentHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid category ID")
	}

	if err := h.categoryRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "category not found")
		}
		return response.InternalError(c, "failed to delete category")
	}
	return response.NoContent(c)
}

// FinishRequest represents the request body for creating or updating
// a finish
type FinishRequest struct {
	Name string `json:"name"`
}

// ListFinishes handles GET /api/admin/finishes
func (h *AdminContentHandler) ListFinishes(c echo.Context) error {
	finishes, err := h.finishRepo.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to list finishes")
	}
	return response.Success(c, finishes)
}

// CreateFinish handles POST /api/admin/finishes
func (h *AdminContentHandler) CreateFinish(c echo.Context) error {
	var req FinishRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "name is required")
	}

	finish := &models.Finish{Name: validator.SanitizeString(req.Name, 100)}
	if err := h.finishRepo.Create(c.Request().Context(), finish); err != nil {
		return response.InternalError(c, "failed to create finish")
	}
	return response.Created(c, finish)
}

// UpdateFinish handles PUT /api/admin/finishes/:id
func (h *AdminContentHandler) UpdateFinish(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid finish ID")
	}

	var req FinishRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return response.BadRequest(c, "name is required")
	}

	finish, err := h.finishRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "finish not found")
		}
		return response.InternalError(c, "failed to get finish")
	}

	finish.Name = validator.SanitizeString(req.Name, 100)
	if err := h.finishRepo.Update(c.Request().Context(), finish); err != nil {
		return response.InternalError(c, "failed to update finish")
	}
	return response.Success(c, finish)
}

// DeleteFinish handles DELETE /api/admin/finishes/:id
func (h *AdminContentHandler) DeleteFinish(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid finish ID")
	}

	if err := h.finishRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "finish not found")
		}
		return response.InternalError(c, "failed to delete finish")
	}
	return response.NoContent(c)
}
