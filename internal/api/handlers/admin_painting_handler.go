package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/api/response"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/storage"
	"github.com/atelierbellemare/atelier-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// AdminPaintingHandler handles the back-office painting catalogue
type AdminPaintingHandler struct {
	paintingRepo repository.PaintingRepository
	images       storage.ImageStorage
}

// NewAdminPaintingHandler creates a new AdminPaintingHandler
func NewAdminPaintingHandler(paintingRepo repository.PaintingRepository, images storage.ImageStorage) *AdminPaintingHandler {
	return &AdminPaintingHandler{
		paintingRepo: paintingRepo,
		images:       images,
	}
}

// PaintingRequest represents the request body for creating or updating a painting
type PaintingRequest struct {
	SKU         string  `json:"sku"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceCAD    float64 `json:"price_cad"`
	Dimensions  string  `json:"dimensions"`
	CategoryID  *uint   `json:"category_id"`
	FinishID    *uint   `json:"finish_id"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  bool    `json:"is_featured"`
	Status      string  `json:"status"`

	PurchaserName   string     `json:"purchaser_name"`
	PurchaserCity   string     `json:"purchaser_city"`
	PurchaseComment string     `json:"purchase_comment"`
	PurchaseDate    *time.Time `json:"purchase_date"`
}

func (r *PaintingRequest) validate() validator.FieldErrors {
	fieldErrs := make(validator.FieldErrors)

	if r.SKU == "" {
		fieldErrs.Add("sku", "sku is required")
	}
	if r.Title == "" {
		fieldErrs.Add("title", "title is required")
	}
	if r.PriceCAD < 0 {
		fieldErrs.Add("price_cad", "price cannot be negative")
	}
	if r.Status != "" && !models.IsValidStatus(r.Status) {
		fieldErrs.Add("status", "unknown painting status")
	}

	return fieldErrs
}

func (r *PaintingRequest) apply(p *models.Painting) {
	p.SKU = r.SKU
	p.Title = r.Title
	p.Description = r.Description
	p.PriceCAD = r.PriceCAD
	p.Dimensions = r.Dimensions
	p.CategoryID = r.CategoryID
	p.FinishID = r.FinishID
	p.IsFeatured = r.IsFeatured
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.Status != "" {
		p.Status = r.Status
	}
	p.PurchaserName = r.PurchaserName
	p.PurchaserCity = r.PurchaserCity
	p.PurchaseComment = r.PurchaseComment
	p.PurchaseDate = r.PurchaseDate
}

// List handles GET /api/admin/paintings. Unlike the public catalogue it
// includes inactive paintings.
func (h *AdminPaintingHandler) List(c echo.Context) error {
	filter := repository.PaintingFilter{
		CategorySlug: c.QueryParam("category"),
		Status:       c.QueryParam("status"),
		Query:        validator.SanitizeString(c.QueryParam("q"), 200),
		OrderBy:      validator.ValidateSort(c.QueryParam("sort")),
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

// Get handles GET /api/admin/paintings/:id
func (h *AdminPaintingHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid painting ID")
	}

	painting, err := h.paintingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	return response.Success(c, painting)
}

// Create handles POST /api/admin/paintings
func (h *AdminPaintingHandler) Create(c echo.Context) error {
	var req PaintingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if fieldErrs := req.validate(); fieldErrs.HasErrors() {
		return response.ValidationFailed(c, fieldErrs)
	}

	painting := &models.Painting{IsActive: true}
	req.apply(painting)

	if err := h.paintingRepo.Create(c.Request().Context(), painting); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return response.Conflict(c, "a painting with this SKU already exists")
		}
		return response.InternalError(c, "failed to create painting")
	}

	return response.Created(c, painting)
}

// Update handles PUT /api/admin/paintings/:id
func (h *AdminPaintingHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid painting ID")
	}

	var req PaintingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if fieldErrs := req.validate(); fieldErrs.HasErrors() {
		return response.ValidationFailed(c, fieldErrs)
	}

	painting, err := h.paintingRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	titleChanged := painting.Title != req.Title
	req.apply(painting)
	if titleChanged {
		// Force slug re-derivation from the new title
		painting.Slug = ""
	}

	if err := h.paintingRepo.Update(c.Request().Context(), painting); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return response.Conflict(c, "a painting with this SKU already exists")
		}
		return response.InternalError(c, "failed to update painting")
	}

	return response.Success(c, painting)
}

// Delete handles DELETE /api/admin/paintings/:id
func (h *AdminPaintingHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid painting ID")
	}

	if err := h.paintingRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to delete painting")
	}

	return response.NoContent(c)
}

// UploadImage handles POST /api/admin/paintings/:id/images
func (h *AdminPaintingHandler) UploadImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid painting ID")
	}

	if _, err := h.paintingRepo.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "painting not found")
		}
		return response.InternalError(c, "failed to get painting")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "image file is required")
	}

	if err := storage.ValidateImage(fileHeader.Filename, fileHeader.Size); err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedExt):
			return response.BadRequest(c, "unsupported image format")
		case errors.Is(err, storage.ErrFileTooLarge):
			return response.BadRequest(c, "image exceeds size limit")
		default:
			return response.BadRequest(c, "invalid image")
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.InternalError(c, "failed to read upload")
	}
	defer src.Close()

	filePath, err := h.images.Save(fileHeader.Filename, src)
	if err != nil {
		return response.InternalError(c, "failed to store image")
	}

	position := 0
	if v := c.FormValue("position"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			position = parsed
		}
	}

	image := &models.PaintingImage{
		PaintingID: id,
		FilePath:   filePath,
		AltText:    validator.SanitizeString(c.FormValue("alt_text"), 200),
		IsPrimary:  c.FormValue("is_primary") == "true",
		Position:   position,
	}

	if err := h.paintingRepo.AddImage(c.Request().Context(), image); err != nil {
		// Keep the media directory consistent with the database
		_ = h.images.Delete(filePath)
		return response.InternalError(c, "failed to save image record")
	}

	return response.Created(c, image)
}

// SetPrimaryImage handles PATCH /api/admin/images/:id/primary
func (h *AdminPaintingHandler) SetPrimaryImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid image ID")
	}

	if err := h.paintingRepo.SetPrimaryImage(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to set primary image")
	}

	return response.SuccessWithMessage(c, nil, "primary image updated")
}

// DeleteImage handles DELETE /api/admin/images/:id
func (h *AdminPaintingHandler) DeleteImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "invalid image ID")
	}

	image, err := h.paintingRepo.GetImageByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to get image")
	}

	if err := h.paintingRepo.DeleteImage(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to delete image")
	}

	_ = h.images.Delete(image.FilePath)

	return response.NoContent(c)
}
