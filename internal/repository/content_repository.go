package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"gorm.io/gorm"
)

// FAQRepository defines the interface for FAQ data access
type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	GetByID(ctx context.Context, id uint) (*models.FAQ, error)
	List(ctx context.Context, activeOnly bool) ([]models.FAQ, error)
	Update(ctx context.Context, faq *models.FAQ) error
	Delete(ctx context.Context, id uint) error
}

// faqRepository implements FAQRepository using GORM
type faqRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQRepository instance
func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

// Create persists a new FAQ entry
func (r *faqRepository) Create(ctx context.Context, faq *models.FAQ) error {
	if err := r.db.WithContext(ctx).Create(faq).Error; err != nil {
		return fmt.Errorf("failed to create FAQ: %w", err)
	}
	return nil
}

// GetByID retrieves a FAQ entry by its ID
func (r *faqRepository) GetByID(ctx context.Context, id uint) (*models.FAQ, error) {
	var faq models.FAQ
	result := r.db.WithContext(ctx).First(&faq, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get FAQ by ID: %w", result.Error)
	}
	return &faq, nil
}

// List retrieves FAQ entries ordered by position
func (r *faqRepository) List(ctx context.Context, activeOnly bool) ([]models.FAQ, error) {
	query := r.db.WithContext(ctx).Order("position ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var faqs []models.FAQ
	if err := query.Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list FAQs: %w", err)
	}
	return faqs, nil
}

// Update saves FAQ changes
func (r *faqRepository) Update(ctx context.Context, faq *models.FAQ) error {
	result := r.db.WithContext(ctx).Model(faq).Select("*").Omit("id").Updates(faq)
	if result.Error != nil {
		return fmt.Errorf("failed to update FAQ: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a FAQ entry by its ID
func (r *faqRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQ{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete FAQ: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TestimonialRepository defines the interface for testimonial data access
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	List(ctx context.Context, activeOnly bool, limit int) ([]models.Testimonial, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id uint) error
}

// testimonialRepository implements TestimonialRepository using GORM
type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new TestimonialRepository instance
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

// Create persists a new testimonial, clamping the rating into 1..5
func (r *testimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.Rating = clampRating(testimonial.Rating)
	if err := r.db.WithContext(ctx).Create(testimonial).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// GetByID retrieves a testimonial by its ID
func (r *testimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	result := r.db.WithContext(ctx).First(&testimonial, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial by ID: %w", result.Error)
	}
	return &testimonial, nil
}

// List retrieves testimonials newest first; limit 0 means no limit
func (r *testimonialRepository) List(ctx context.Context, activeOnly bool, limit int) ([]models.Testimonial, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var testimonials []models.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

// Update saves testimonial changes
func (r *testimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.Rating = clampRating(testimonial.Rating)
	result := r.db.WithContext(ctx).Model(testimonial).Select("*").Omit("id", "created_at").Updates(testimonial)
	if result.Error != nil {
		return fmt.Errorf("failed to update testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a testimonial by its ID
func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
