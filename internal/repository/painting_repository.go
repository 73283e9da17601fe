package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/slugify"
	"gorm.io/gorm"
)

// PaintingFilter narrows painting listings
type PaintingFilter struct {
	CategorySlug string
	FinishID     *uint
	// Status filters exact values, except the shorthand "available" which
	// expands to both available_* venue statuses.
	Status       string
	PriceMin     *float64
	PriceMax     *float64
	FeaturedOnly bool
	Query        string // title/description search
	ActiveOnly   bool
	OrderBy      string // validated ORDER BY clause
	Limit        int
	Offset       int
}

// PaintingRepository defines the interface for painting data access
type PaintingRepository interface {
	Create(ctx context.Context, painting *models.Painting) error
	GetByID(ctx context.Context, id uint) (*models.Painting, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Painting, error)
	List(ctx context.Context, filter PaintingFilter) ([]models.Painting, int64, error)
	ListRelated(ctx context.Context, painting *models.Painting, limit int) ([]models.Painting, error)
	Update(ctx context.Context, painting *models.Painting) error
	Delete(ctx context.Context, id uint) error

	AddImage(ctx context.Context, image *models.PaintingImage) error
	GetImageByID(ctx context.Context, id uint) (*models.PaintingImage, error)
	SetPrimaryImage(ctx context.Context, imageID uint) error
	DeleteImage(ctx context.Context, id uint) error
}

// paintingRepository implements PaintingRepository using GORM
type paintingRepository struct {
	db *gorm.DB
}

// NewPaintingRepository creates a new PaintingRepository instance
func NewPaintingRepository(db *gorm.DB) PaintingRepository {
	return &paintingRepository{db: db}
}

// assignSlug derives a unique slug from the painting title. On collision an
// incrementing numeric suffix is appended until the slug is free. The check
// excludes the painting's own row so updates keep their slug stable.
func assignSlug(tx *gorm.DB, painting *models.Painting) error {
	base := slugify.Make(painting.Title)
	if base == "" {
		base = "toile"
	}

	candidate := base
	for counter := 2; ; counter++ {
		var count int64
		err := tx.Model(&models.Painting{}).
			Where("slug = ? AND id <> ?", candidate, painting.ID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if count == 0 {
			break
		}
		candidate = slugify.WithSuffix(base, counter)
	}

	painting.Slug = candidate
	return nil
}

// Create persists a new painting, deriving its slug from the title
func (r *paintingRepository) Create(ctx context.Context, painting *models.Painting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if painting.Slug == "" {
			if err := assignSlug(tx, painting); err != nil {
				return err
			}
		}
		if err := tx.Create(painting).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrDuplicateEntry
			}
			return fmt.Errorf("failed to create painting: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a painting with its relations regardless of active flag
func (r *paintingRepository) GetByID(ctx context.Context, id uint) (*models.Painting, error) {
	var painting models.Painting
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Finish").
		Preload("Images", imageOrder).
		First(&painting, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get painting by ID: %w", result.Error)
	}
	return &painting, nil
}

// GetBySlug retrieves a painting by slug, optionally restricted to active rows
func (r *paintingRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Painting, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Finish").
		Preload("Images", imageOrder).
		Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var painting models.Painting
	result := query.First(&painting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get painting by slug: %w", result.Error)
	}
	return &painting, nil
}

// imageOrder sorts a painting's images primary-first then by position
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, position ASC")
}

// List retrieves paintings with filters, ordering and pagination
func (r *paintingRepository) List(ctx context.Context, filter PaintingFilter) ([]models.Painting, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Painting{})

	if filter.ActiveOnly {
		query = query.Where("paintings.is_active = ?", true)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = paintings.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.FinishID != nil {
		query = query.Where("finish_id = ?", *filter.FinishID)
	}
	switch filter.Status {
	case "":
	case "available":
		query = query.Where("status IN ?", []string{
			models.StatusAvailableMaisonPere,
			models.StatusAvailableDirect,
		})
	default:
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PriceMin != nil {
		query = query.Where("price_cad >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price_cad <= ?", *filter.PriceMax)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count paintings: %w", err)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	var paintings []models.Painting
	err := query.
		Preload("Category").
		Preload("Finish").
		Preload("Images", imageOrder).
		Order(orderBy).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&paintings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list paintings: %w", err)
	}

	return paintings, total, nil
}

// ListRelated returns active paintings from the same category, excluding
// the painting itself
func (r *paintingRepository) ListRelated(ctx context.Context, painting *models.Painting, limit int) ([]models.Painting, error) {
	if painting.CategoryID == nil {
		return []models.Painting{}, nil
	}

	var related []models.Painting
	err := r.db.WithContext(ctx).
		Preload("Images", imageOrder).
		Where("category_id = ? AND is_active = ? AND id <> ?", *painting.CategoryID, true, painting.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list related paintings: %w", err)
	}
	return related, nil
}

// Update saves painting changes, re-deriving the slug when it was cleared
func (r *paintingRepository) Update(ctx context.Context, painting *models.Painting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if painting.Slug == "" {
			if err := assignSlug(tx, painting); err != nil {
				return err
			}
		}
		result := tx.Model(painting).Select("*").Omit("id", "created_at").Updates(painting)
		if result.Error != nil {
			if isDuplicateKeyError(result.Error) {
				return ErrDuplicateEntry
			}
			return fmt.Errorf("failed to update painting: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete deletes a painting by its ID (cascade deletes images)
func (r *paintingRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Painting{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete painting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddImage attaches an image to a painting. When the new image is flagged
// primary, the primary flag is cleared on the painting's other images in
// the same transaction.
func (r *paintingRepository) AddImage(ctx context.Context, image *models.PaintingImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if image.IsPrimary {
			err := tx.Model(&models.PaintingImage{}).
				Where("painting_id = ? AND is_primary = ?", image.PaintingID, true).
				Update("is_primary", false).Error
			if err != nil {
				return fmt.Errorf("failed to clear primary flags: %w", err)
			}
		}
		if err := tx.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create painting image: %w", err)
		}
		return nil
	})
}

// GetImageByID retrieves a painting image by its ID
func (r *paintingRepository) GetImageByID(ctx context.Context, id uint) (*models.PaintingImage, error) {
	var image models.PaintingImage
	result := r.db.WithContext(ctx).First(&image, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get painting image: %w", result.Error)
	}
	return &image, nil
}

// SetPrimaryImage promotes an image to primary. Within one transaction the
// primary flag is cleared across the owning painting's image set, then set
// on the requested image, so "at most one primary per painting" holds.
func (r *paintingRepository) SetPrimaryImage(ctx context.Context, imageID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.PaintingImage
		if err := tx.First(&image, imageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get painting image: %w", err)
		}

		err := tx.Model(&models.PaintingImage{}).
			Where("painting_id = ? AND id <> ?", image.PaintingID, imageID).
			Update("is_primary", false).Error
		if err != nil {
			return fmt.Errorf("failed to clear primary flags: %w", err)
		}

		err = tx.Model(&models.PaintingImage{}).
			Where("id = ?", imageID).
			Update("is_primary", true).Error
		if err != nil {
			return fmt.Errorf("failed to set primary flag: %w", err)
		}
		return nil
	})
}

// DeleteImage deletes a painting image by its ID
func (r *paintingRepository) DeleteImage(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PaintingImage{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete painting image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
