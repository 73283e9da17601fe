package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"gorm.io/gorm"
)

// InquiryFilter narrows admin inquiry listings
type InquiryFilter struct {
	Kind        string // "general", "purchase" or empty for all
	IsRead      *bool
	IsArchived  *bool
	EmailStatus *bool // filter on last delivery outcome; nil = all
	Limit       int
	Offset      int
}

// InquiryRepository defines the interface for inquiry data access
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uint) (*models.Inquiry, error)
	List(ctx context.Context, filter InquiryFilter) ([]models.InquiryListItem, int64, error)
	SetRead(ctx context.Context, id uint, read bool) error
	SetArchived(ctx context.Context, id uint, archived bool) error
	RecordDelivery(ctx context.Context, id uint, ok bool, at time.Time, errSummary, errDetail string) error
}

// inquiryRepository implements InquiryRepository using GORM
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new InquiryRepository instance
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create persists a new inquiry
func (r *inquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	result := r.db.WithContext(ctx).Create(inquiry)
	if result.Error != nil {
		return fmt.Errorf("failed to create inquiry: %w", result.Error)
	}
	return nil
}

// GetByID retrieves an inquiry by its ID with the referenced painting preloaded
func (r *inquiryRepository) GetByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	result := r.db.WithContext(ctx).Preload("Painting").First(&inquiry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by ID: %w", result.Error)
	}
	return &inquiry, nil
}

// List retrieves inquiries newest first with pagination and filters
func (r *inquiryRepository) List(ctx context.Context, filter InquiryFilter) ([]models.InquiryListItem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Inquiry{})

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.IsArchived != nil {
		query = query.Where("is_archived = ?", *filter.IsArchived)
	}
	if filter.EmailStatus != nil {
		query = query.Where("email_status = ?", *filter.EmailStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	var results []models.InquiryListItem
	err := query.
		Select("id", "name", "email", "kind", "painting_id", "is_read", "is_archived",
			"created_at", "email_status", "email_attempted_at").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&results).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}

	return results, total, nil
}

// SetRead updates the read flag on an inquiry
func (r *inquiryRepository) SetRead(ctx context.Context, id uint, read bool) error {
	result := r.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Update("is_read", read)
	if result.Error != nil {
		return fmt.Errorf("failed to update read flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetArchived updates the archived flag on an inquiry
func (r *inquiryRepository) SetArchived(ctx context.Context, id uint, archived bool) error {
	result := r.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Update("is_archived", archived)
	if result.Error != nil {
		return fmt.Errorf("failed to update archived flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordDelivery writes the four delivery-tracking fields as a single
// update. On success the error columns are cleared; on failure the summary
// and full diagnostic are retained for the admin resend workflow.
func (r *inquiryRepository) RecordDelivery(ctx context.Context, id uint, ok bool, at time.Time, errSummary, errDetail string) error {
	if ok {
		errSummary = ""
		errDetail = ""
	}

	result := r.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email_status":       ok,
		"email_attempted_at": at,
		"email_error":        errSummary,
		"email_detail":       errDetail,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to record delivery outcome: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
