package repository

import (
	"context"
	"testing"

	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CategoryRepositoryTestSuite covers the category and finish repositories
type CategoryRepositoryTestSuite struct {
	suite.Suite
	db           *gorm.DB
	categoryRepo CategoryRepository
	finishRepo   FinishRepository
	paintingRepo PaintingRepository
}

// SetupSuite runs once before all tests
func (s *CategoryRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Category{}, &models.Finish{}, &models.Painting{}, &models.PaintingImage{})
	require.NoError(s.T(), err)

	s.db = db
	s.categoryRepo = NewCategoryRepository(db)
	s.finishRepo = NewFinishRepository(db)
	s.paintingRepo = NewPaintingRepository(db)
}

// TearDownSuite runs once after all tests
func (s *CategoryRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test
func (s *CategoryRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM paintings")
	s.db.Exec("DELETE FROM categories")
	s.db.Exec("DELETE FROM finishes")
}

// TestCategoryRepositoryTestSuite runs the test suite
func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

func (s *CategoryRepositoryTestSuite) TestCreate_DerivesSlugFromName() {
	category := &models.Category{Name: "Paysages urbains", IsActive: true}

	err := s.categoryRepo.Create(context.Background(), category)

	s.Require().NoError(err)
	s.Equal("paysages-urbains", category.Slug)

	found, err := s.categoryRepo.GetBySlug(context.Background(), "paysages-urbains")
	s.Require().NoError(err)
	s.Equal(category.ID, found.ID)
}

func (s *CategoryRepositoryTestSuite) TestCreate_DuplicateSlugReturnsDuplicateEntry() {
	first := &models.Category{Name: "Abstraits", IsActive: true}
	s.Require().NoError(s.categoryRepo.Create(context.Background(), first))

	second := &models.Category{Name: "Abstraits", IsActive: true}
	err := s.categoryRepo.Create(context.Background(), second)

	s.ErrorIs(err, ErrDuplicateEntry)
}

func (s *CategoryRepositoryTestSuite) TestList_CountsOnlyActivePaintings() {
	category := &models.Category{Name: "Nature", IsActive: true}
	s.Require().NoError(s.categoryRepo.Create(context.Background(), category))

	active := &models.Painting{
		SKU: "AB-2024-001", Title: "Rivière", PriceCAD: 500,
		CategoryID: &category.ID, IsActive: true, Status: models.StatusAvailableDirect,
	}
	inactive := &models.Painting{
		SKU: "AB-2024-002", Title: "Forêt", PriceCAD: 600,
		CategoryID: &category.ID, IsActive: false, Status: models.StatusAvailableDirect,
	}
	s.Require().NoError(s.paintingRepo.Create(context.Background(), active))
	s.Require().NoError(s.paintingRepo.Create(context.Background(), inactive))

	categories, err := s.categoryRepo.List(context.Background(), true)

	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal(int64(1), categories[0].PaintingCount)
}

func (s *CategoryRepositoryTestSuite) TestList_ActiveOnlyExcludesInactiveCategories() {
	s.Require().NoError(s.categoryRepo.Create(context.Background(), &models.Category{Name: "Visible", IsActive: true}))
	s.Require().NoError(s.categoryRepo.Create(context.Background(), &models.Category{Name: "Archivée", IsActive: false}))

	all, err := s.categoryRepo.List(context.Background(), false)
	s.Require().NoError(err)
	s.Len(all, 2)

	active, err := s.categoryRepo.List(context.Background(), true)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal("Visible", active[0].Name)
}

func (s *CategoryRepositoryTestSuite) TestDelete_ClearsPaintingReference() {
	category := &models.Category{Name: "Temporaire", IsActive: true}
	s.Require().NoError(s.categoryRepo.Create(context.Background(), category))

	painting := &models.Painting{
		SKU: "AB-2024-003", Title: "Sans titre", PriceCAD: 700,
		CategoryID: &category.ID, IsActive: true, Status: models.StatusAvailableMaisonPere,
	}
	s.Require().NoError(s.paintingRepo.Create(context.Background(), painting))

	s.Require().NoError(s.categoryRepo.Delete(context.Background(), category.ID))

	_, err := s.categoryRepo.GetByID(context.Background(), category.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *CategoryRepositoryTestSuite) TestDelete_NotFound() {
	err := s.categoryRepo.Delete(context.Background(), 9999)
	s.ErrorIs(err, ErrNotFound)
}

func (s *CategoryRepositoryTestSuite) TestFinish_CreateAndList() {
	s.Require().NoError(s.finishRepo.Create(context.Background(), &models.Finish{Name: "Époxy"}))
	s.Require().NoError(s.finishRepo.Create(context.Background(), &models.Finish{Name: "Encre sur toile"}))

	finishes, err := s.finishRepo.List(context.Background())

	s.Require().NoError(err)
	s.Len(finishes, 2)
}
