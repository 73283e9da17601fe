package repository

import (
	"context"
	"testing"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ContentRepositoryTestSuite covers the FAQ and testimonial repositories
type ContentRepositoryTestSuite struct {
	suite.Suite
	db              *gorm.DB
	faqRepo         FAQRepository
	testimonialRepo TestimonialRepository
}

// SetupSuite runs once before all tests
func (s *ContentRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.FAQ{}, &models.Testimonial{})
	require.NoError(s.T(), err)

	s.db = db
	s.faqRepo = NewFAQRepository(db)
	s.testimonialRepo = NewTestimonialRepository(db)
}

// TearDownSuite runs once after all tests
func (s *ContentRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *ContentRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM faqs")
	s.db.Exec("DELETE FROM testimonials")
}

// TestContentRepositoryTestSuite runs the test suite
func TestContentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContentRepositoryTestSuite))
}

// ==================== FAQ Tests ====================

func (s *ContentRepositoryTestSuite) TestFAQ_ListOrderedByPosition() {
	last := &models.FAQ{Question: "Livraison?", Answer: "Oui", Position: 10, IsActive: true}
	first := &models.FAQ{Question: "Prix?", Answer: "Variable", Position: 1, IsActive: true}
	require.NoError(s.T(), s.faqRepo.Create(context.Background(), last))
	require.NoError(s.T(), s.faqRepo.Create(context.Background(), first))

	faqs, err := s.faqRepo.List(context.Background(), true)
	require.NoError(s.T(), err)
	require.Len(s.T(), faqs, 2)
	assert.Equal(s.T(), "Prix?", faqs[0].Question)
}

func (s *ContentRepositoryTestSuite) TestFAQ_ActiveOnlyFilters() {
	inactive := &models.FAQ{Question: "Cachée?", Answer: "Oui", IsActive: false}
	require.NoError(s.T(), s.faqRepo.Create(context.Background(), inactive))
	active := &models.FAQ{Question: "Visible?", Answer: "Oui", IsActive: true}
	require.NoError(s.T(), s.faqRepo.Create(context.Background(), active))

	faqs, err := s.faqRepo.List(context.Background(), true)
	require.NoError(s.T(), err)
	assert.Len(s.T(), faqs, 1)

	all, err := s.faqRepo.List(context.Background(), false)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)
}

func (s *ContentRepositoryTestSuite) TestFAQ_UpdateAndDelete() {
	faq := &models.FAQ{Question: "Q", Answer: "A", IsActive: true}
	require.NoError(s.T(), s.faqRepo.Create(context.Background(), faq))

	faq.Answer = "Nouvelle réponse"
	require.NoError(s.T(), s.faqRepo.Update(context.Background(), faq))

	got, err := s.faqRepo.GetByID(context.Background(), faq.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Nouvelle réponse", got.Answer)

	require.NoError(s.T(), s.faqRepo.Delete(context.Background(), faq.ID))
	_, err = s.faqRepo.GetByID(context.Background(), faq.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ContentRepositoryTestSuite) TestFAQ_DeleteNotFound() {
	assert.ErrorIs(s.T(), s.faqRepo.Delete(context.Background(), 9999), ErrNotFound)
}

// ==================== Testimonial Tests ====================

func (s *ContentRepositoryTestSuite) TestTestimonial_RatingClamped() {
	high := &models.Testimonial{AuthorName: "Jean", Content: "Superbe", Rating: 12, IsActive: true}
	require.NoError(s.T(), s.testimonialRepo.Create(context.Background(), high))
	assert.Equal(s.T(), 5, high.Rating)

	low := &models.Testimonial{AuthorName: "Marie", Content: "Bof", Rating: -3, IsActive: true}
	require.NoError(s.T(), s.testimonialRepo.Create(context.Background(), low))
	assert.Equal(s.T(), 1, low.Rating)
}

func (s *ContentRepositoryTestSuite) TestTestimonial_ListActiveWithLimit() {
	for i := 0; i < 4; i++ {
		t := &models.Testimonial{AuthorName: "Client", Content: "Merci", Rating: 5, IsActive: true}
		require.NoError(s.T(), s.testimonialRepo.Create(context.Background(), t))
	}
	hidden := &models.Testimonial{AuthorName: "Caché", Content: "...", Rating: 3, IsActive: false}
	require.NoError(s.T(), s.testimonialRepo.Create(context.Background(), hidden))

	testimonials, err := s.testimonialRepo.List(context.Background(), true, 3)
	require.NoError(s.T(), err)
	assert.Len(s.T(), testimonials, 3)

	all, err := s.testimonialRepo.List(context.Background(), false, 0)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 5)
}

func (s *ContentRepositoryTestSuite) TestTestimonial_UpdateAndDelete() {
	testimonial := &models.Testimonial{AuthorName: "Jean", Content: "Bien", Rating: 4, IsActive: true}
	require.NoError(s.T(), s.testimonialRepo.Create(context.Background(), testimonial))

	testimonial.IsActive = false
	require.NoError(s.T(), s.testimonialRepo.Update(context.Background(), testimonial))

	got, err := s.testimonialRepo.GetByID(context.Background(), testimonial.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), got.IsActive)

	require.NoError(s.T(), s.testimonialRepo.Delete(context.Background(), testimonial.ID))
	_, err = s.testimonialRepo.GetByID(context.Background(), testimonial.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}
