package handlers

import (
	"errors"
	"strconv"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// GalleryHandler serves the public painting catalogue
type GalleryHandler struct {
	paintingRepo repository.PaintingRepository
	categoryRepo repository.CategoryRepository
	finishRepo   repository.FinishRepository
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(paintingRepo repository.PaintingRepository, categoryRepo repository.CategoryRepository,
	finishRepo repository.FinishRepository) *GalleryHandler {
	return &GalleryHandler{
		paintingRepo: paintingRepo,
		categoryRepo: categoryRepo,
		finishRepo:   finishRepo,
	}
}

// relatedLimit is how many related paintings the detail view suggests
const relatedLimit = 4

// ListPaintings handles GET /api/paintings
func (h *GalleryHandler) ListPaintings(c echo.Context) error {
	filter := repository.PaintingFilter{
		CategorySlug: c.QueryParam("category"),
		Status:       c.QueryParam("status"),
		Query:        validator.SanitizeString(c.QueryParam("q"), 200),
		ActiveOnly:   true,
		OrderBy:      validator.ValidateSort(c.QueryParam("sort")),
	}

	if v := c.QueryParam("finish_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			finishID := uint(id)
			filter.FinishID = &finishID
		}
	}
	if v := c.QueryParam("price_min"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &min
		}
	}
	if v := c.QueryParam("price_max"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &max
		}
	}
	if c.QueryParam("featured") == "true" {
		filter.FeaturedOnly = true
	}

	limit, offset := parsePagination(c)
	filter.Limit = limit
	filter.Offset = offset

	paintings, total, err := h.paintingRepo.List(c.Request().Context(), filter)
	if err != nil {
		return response.InternalError(c, "failed to list paintings")
	}

	return response.Paginated(c, paintings, total, limit, offset)
}

// SearchPaintings handles GET /api/search
func (h *GalleryHandler) SearchPaintings(c echo.Context) error {
	query := validator.SanitizeString(c.QueryParam("q"), 200)
	if query == "" {
		return response.BadRequest(c, "search query is required")
	}

	limit, offset := parsePagination(c)
	filter := repository.PaintingFilter{
		Query:      query,
		ActiveOnly: true,
		OrderBy:    validator.ValidateSort(c.QueryParam("sort")),
		Limit:      limit,
		Offset:     offset,
	}

	paintings, total, err := h.paintingRepo.List(c.Request().Context(), filter)
	if err != nil {
		return response.InternalError(c, "failed to search paintings")
	}

	return response.Paginated(c, paintings, total, limit, offset)
}

// GetPainting handles GET /api/paintings/:slug
func (h *GalleryHandler) GetPainting(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "invalid painting slug")
	}

	painting, err := h.paintingRepo.GetBySlug(c.Request().Context(), slug, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	return response.Success(c, painting)
}

// GetRelatedPaintings handles GET /api/paintings/:slug/related
func (h *GalleryHandler) GetRelatedPaintings(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "invalid painting slug")
	}

	painting, err := h.paintingRepo.GetBySlug(c.Request().Context(), slug, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	related, err := h.paintingRepo.ListRelated(c.Request().Context(), painting, relatedLimit)
	if err != nil {
		return response.InternalError(c, "failed to list related paintings")
	}

	return response.Success(c, related)
}

// ListCategories handles GET /api/categories
func (h *GalleryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context(), true)
	if err != nil {
		return response.InternalError(c, "failed to list categories")
	}

	return response.Success(c, categories)
}

// ListCategoryPaintings handles GET /api/categories/:slug/paintings
func (h *GalleryHandler) ListCategoryPaintings(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "invalid category slug")
	}

	category, err := h.categoryRepo.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "category not found")
		}
		return response.InternalError(c, "failed to get category")
	}
	if !category.IsActive {
		return response.NotFound(c, "category not found")
	}

	limit, offset := parsePagination(c)
	filter := repository.PaintingFilter{
		CategorySlug: category.Slug,
		ActiveOnly:   true,
		OrderBy:      validator.ValidateSort(c.QueryParam("sort")),
		Limit:        limit,
		Offset:       offset,
	}

	paintings, total, err := h.paintingRepo.List(c.Request().Context(), filter)
	if err != nil {
		return response.InternalError(c, "failed to list paintings")
	}

	return response.Paginated(c, paintings, total, limit, offset)
}

// ListFinishes handles GET /api/finishes
func (h *GalleryHandler) ListFinishes(c echo.Context) error {
	finishes, err := h.finishRepo.List(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to list finishes")
	}

	return response.Success(c, finishes)
}

// parsePagination reads limit/offset query parameters and clamps them
func parsePagination(c echo.Context) (int, int) {
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

	return validator.ValidatePagination(limit, offset)
}
