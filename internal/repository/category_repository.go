package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/slugify"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

// categoryRepository implements CategoryRepository using GORM
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category, deriving its slug from the name
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.Slug == "" {
		category.Slug = slugify.Make(category.Name)
	}
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create category: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", result.Error)
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by slug: %w", result.Error)
	}
	return &category, nil
}

// List retrieves categories ordered by position then name, each with its
// active painting count
func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error) {
	query := r.db.WithContext(ctx).Model(&models.Category{}).
		Select("categories.*, COALESCE((SELECT COUNT(*) FROM paintings p WHERE p.category_id = categories.id AND p.is_active = ?), 0) AS painting_count", true).
		Order("categories.position ASC, categories.name ASC")
	if activeOnly {
		query = query.Where("categories.is_active = ?", true)
	}

	var results []models.CategoryWithCount
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return results, nil
}

// Update saves category changes
func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if category.Slug == "" {
		category.Slug = slugify.Make(category.Name)
	}
	result := r.db.WithContext(ctx).Model(category).Select("*").Omit("id").Updates(category)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a category by its ID; paintings keep existing with a
// cleared category reference
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
