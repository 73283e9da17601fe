// Command seed loads catalogue fixtures into the database. It is
// idempotent: rows are matched on their natural key (slug, SKU, question,
// author) and updated in place, so it can be re-run after editing the
// fixture file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/atelierbellemare/atelier-backend/internal/config"
	"github.com/atelierbellemare/atelier-backend/internal/database"
	"github.com/atelierbellemare/atelier-backend/internal/models"
	"github.com/atelierbellemare/atelier-backend/internal/slugify"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type fixtures struct {
	Categories   []categoryFixture    `json:"categories"`
	Finishes     []string             `json:"finishes"`
	Paintings    []paintingFixture    `json:"paintings"`
	FAQs         []faqFixture         `json:"faqs"`
	Testimonials []testimonialFixture `json:"testimonials"`
}

type categoryFixture struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type paintingFixture struct {
	SKU         string  `json:"sku"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceCAD    float64 `json:"price_cad"`
	Dimensions  string  `json:"dimensions"`
	Category    string  `json:"category"`
	Finish      string  `json:"finish"`
	Status      string  `json:"status"`
	IsFeatured  bool    `json:"is_featured"`
}

type faqFixture struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

type testimonialFixture struct {
	AuthorName     string `json:"author_name"`
	AuthorLocation string `json:"author_location"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
}

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "cmd/seed/fixtures.json", "path to the JSON fixture file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("failed to read fixture file", "error", err, "file", *file)
		os.Exit(1)
	}

	var fx fixtures
	if err := json.Unmarshal(data, &fx); err != nil {
		logger.Error("failed to parse fixture file", "error", err, "file", *file)
		os.Exit(1)
	}

	if err := seed(db, fx, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete",
		"categories", len(fx.Categories),
		"finishes", len(fx.Finishes),
		"paintings", len(fx.Paintings),
		"faqs", len(fx.FAQs),
		"testimonials", len(fx.Testimonials),
	)
}

func seed(db *gorm.DB, fx fixtures, logger *slog.Logger) error {
	categoryIDs := make(map[string]uint)
	for _, c := range fx.Categories {
		slug := slugify.Make(c.Name)
		var category models.Category
		err := db.Where("slug = ?", slug).First(&category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			category = models.Category{
				Name:        c.Name,
				Slug:        slug,
				Description: c.Description,
				Position:    c.Position,
				IsActive:    true,
			}
			if err := db.Create(&category).Error; err != nil {
				return fmt.Errorf("create category %q: %w", c.Name, err)
			}
			logger.Info("created category", "name", c.Name)
		case err != nil:
			return fmt.Errorf("lookup category %q: %w", c.Name, err)
		default:
			category.Name = c.Name
			category.Description = c.Description
			category.Position = c.Position
			if err := db.Save(&category).Error; err != nil {
				return fmt.Errorf("update category %q: %w", c.Name, err)
			}
		}
		categoryIDs[c.Name] = category.ID
	}

	finishIDs := make(map[string]uint)
	for _, name := range fx.Finishes {
		var finish models.Finish
		err := db.Where("name = ?", name).First(&finish).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			finish = models.Finish{Name: name}
			if err := db.Create(&finish).Error; err != nil {
				return fmt.Errorf("create finish %q: %w", name, err)
			}
			logger.Info("created finish", "name", name)
		case err != nil:
			return fmt.Errorf("lookup finish %q: %w", name, err)
		}
		finishIDs[name] = finish.ID
	}

	for _, p := range fx.Paintings {
		painting := models.Painting{
			SKU:         p.SKU,
			Title:       p.Title,
			Slug:        slugify.Make(p.Title),
			Description: p.Description,
			PriceCAD:    p.PriceCAD,
			Dimensions:  p.Dimensions,
			IsActive:    true,
			IsFeatured:  p.IsFeatured,
			Status:      p.Status,
		}
		if painting.Status == "" {
			painting.Status = models.StatusAvailableMaisonPere
		}
		if !models.IsValidStatus(painting.Status) {
			return fmt.Errorf("painting %q: unknown status %q", p.SKU, p.Status)
		}
		if id, ok := categoryIDs[p.Category]; ok {
			painting.CategoryID = &id
		} else if p.Category != "" {
			return fmt.Errorf("painting %q: unknown category %q", p.SKU, p.Category)
		}
		if id, ok := finishIDs[p.Finish]; ok {
			painting.FinishID = &id
		} else if p.Finish != "" {
			return fmt.Errorf("painting %q: unknown finish %q", p.SKU, p.Finish)
		}

		var existing models.Painting
		err := db.Where("sku = ?", p.SKU).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := db.Create(&painting).Error; err != nil {
				return fmt.Errorf("create painting %q: %w", p.SKU, err)
			}
			logger.Info("created painting", "sku", p.SKU, "title", p.Title)
		case err != nil:
			return fmt.Errorf("lookup painting %q: %w", p.SKU, err)
		default:
			painting.ID = existing.ID
			painting.CreatedAt = existing.CreatedAt
			if err := db.Save(&painting).Error; err != nil {
				return fmt.Errorf("update painting %q: %w", p.SKU, err)
			}
		}
	}

	for _, f := range fx.FAQs {
		var faq models.FAQ
		err := db.Where("question = ?", f.Question).First(&faq).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			faq = models.FAQ{
				Question: f.Question,
				Answer:   f.Answer,
				Position: f.Position,
				IsActive: true,
			}
			if err := db.Create(&faq).Error; err != nil {
				return fmt.Errorf("create faq %q: %w", f.Question, err)
			}
		case err != nil:
			return fmt.Errorf("lookup faq %q: %w", f.Question, err)
		default:
			faq.Answer = f.Answer
			faq.Position = f.Position
			if err := db.Save(&faq).Error; err != nil {
				return fmt.Errorf("update faq %q: %w", f.Question, err)
			}
		}
	}

	for _, t := range fx.Testimonials {
		var testimonial models.Testimonial
		err := db.Where("author_name = ? AND content = ?", t.AuthorName, t.Content).First(&testimonial).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating := t.Rating
			if rating == 0 {
				rating = 5
			}
			testimonial = models.Testimonial{
				AuthorName:     t.AuthorName,
				AuthorLocation: t.AuthorLocation,
				Content:        t.Content,
				Rating:         rating,
				IsActive:       true,
			}
			if err := db.Create(&testimonial).Error; err != nil {
				return fmt.Errorf("create testimonial %q: %w", t.AuthorName, err)
			}
		case err != nil:
			return fmt.Errorf("lookup testimonial %q: %w", t.AuthorName, err)
		}
	}

	return nil
}
