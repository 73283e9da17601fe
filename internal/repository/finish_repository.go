package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"gorm.io/gorm"
)

// FinishRepository defines the interface for finish data access
type FinishRepository interface {
	Create(ctx context.Context, finish *models.Finish) error
	GetByID(ctx context.Context, id uint) (*models.Finish, error)
	List(ctx context.Context) ([]models.Finish, error)
	Update(ctx context.Context, finish *models.Finish) error
	Delete(ctx context.Context, id uint) error
}

// finishRepository implements FinishRepository using GORM
type finishRepository struct {
	db *gorm.DB
}

// NewFinishRepository creates a new FinishRepository instance
func NewFinishRepository(db *gorm.DB) FinishRepository {
	return &finishRepository{db: db}
}

// Create persists a new finish
func (r *finishRepository) Create(ctx context.Context, finish *models.Finish) error {
	result := r.db.WithContext(ctx).Create(finish)
	if result.Error != nil {
		return fmt.Errorf("failed to create finish: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a finish by its ID
func (r *finishRepository) GetByID(ctx context.Context, id uint) (*models.Finish, error) {
	var finish models.Finish
	result := r.db.WithContext(ctx).First(&finish, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get finish by ID: %w", result.Error)
	}
	return &finish, nil
}

// List retrieves all finishes ordered by name
func (r *finishRepository) List(ctx context.Context) ([]models.Finish, error) {
	var finishes []models.Finish
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&finishes).Error; err != nil {
		return nil, fmt.Errorf("failed to list finishes: %w", err)
	}
	return finishes, nil
}

// Update saves finish changes
func (r *finishRepository) Update(ctx context.Context, finish *models.Finish) error {
	result := r.db.WithContext(ctx).Model(finish).Select("*").Omit("id").Updates(finish)
	if result.Error != nil {
		return fmt.Errorf("failed to update finish: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a finish by its ID
func (r *finishRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Finish{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete finish: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
