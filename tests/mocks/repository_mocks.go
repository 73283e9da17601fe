// Package mocks provides hand-written testify mocks for repository and
// mailer interfaces used by handler and notifier tests.
package mocks

import (
	"context"
	"time"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockInquiryRepository implements repository.InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) GetByID(ctx context.Context, id uint) (*models.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(ctx context.Context, filter repository.InquiryFilter) ([]models.InquiryListItem, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.InquiryListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockInquiryRepository) SetRead(ctx context.Context, id uint, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

func (m *MockInquiryRepository) SetArchived(ctx context.Context, id uint, archived bool) error {
	args := m.Called(ctx, id, archived)
	return args.Error(0)
}

func (m *MockInquiryRepository) RecordDelivery(ctx context.Context, id uint, ok bool, at time.Time, errSummary, errDetail string) error {
	args := m.Called(ctx, id, ok, at, errSummary, errDetail)
	return args.Error(0)
}

// MockPaintingRepository implements repository.PaintingRepository
type MockPaintingRepository struct {
	mock.Mock
}

func (m *MockPaintingRepository) Create(ctx context.Context, painting *models.Painting) error {
	args := m.Called(ctx, painting)
	return args.Error(0)
}

func (m *MockPaintingRepository) GetByID(ctx context.Context, id uint) (*models.Painting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Painting, error) {
	args := m.Called(ctx, slug, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) List(ctx context.Context, filter repository.PaintingFilter) ([]models.Painting, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Painting), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaintingRepository) ListRelated(ctx context.Context, painting *models.Painting, limit int) ([]models.Painting, error) {
	args := m.Called(ctx, painting, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) Update(ctx context.Context, painting *models.Painting) error {
	args := m.Called(ctx, painting)
	return args.Error(0)
}

func (m *MockPaintingRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaintingRepository) AddImage(ctx context.Context, image *models.PaintingImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockPaintingRepository) GetImageByID(ctx context.Context, id uint) (*models.PaintingImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaintingImage), args.Error(1)
}

func (m *MockPaintingRepository) SetPrimaryImage(ctx context.Context, imageID uint) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockPaintingRepository) DeleteImage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository implements repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryWithCount), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFinishRepository implements repository.FinishRepository
type MockFinishRepository struct {
	mock.Mock
}

func (m *MockFinishRepository) Create(ctx context.Context, finish *models.Finish) error {
	args := m.Called(ctx, finish)
	return args.Error(0)
}

func (m *MockFinishRepository) GetByID(ctx context.Context, id uint) (*models.Finish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Finish), args.Error(1)
}

func (m *MockFinishRepository) List(ctx context.Context) ([]models.Finish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Finish), args.Error(1)
}

func (m *MockFinishRepository) Update(ctx context.Context, finish *models.Finish) error {
	args := m.Called(ctx, finish)
	return args.Error(0)
}

func (m *MockFinishRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFAQRepository implements repository.FAQRepository
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) Create(ctx context.Context, faq *models.FAQ) error {
	args := m.Called(ctx, faq)
	return args.Error(0)
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id uint) (*models.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) List(ctx context.Context, activeOnly bool) ([]models.FAQ, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Update(ctx context.Context, faq *models.FAQ) error {
	args := m.Called(ctx, faq)
	return args.Error(0)
}

func (m *MockFAQRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTestimonialRepository implements repository.TestimonialRepository
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) List(ctx context.Context, activeOnly bool, limit int) ([]models.Testimonial, error) {
	args := m.Called(ctx, activeOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	args := m.Called(ctx, testimonial)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
