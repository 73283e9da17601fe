// Package api assembles the Echo router for the gallery backend.
package api

import (
	"log/slog"

	"github.com/atelierbellemare/atelier-backend/internal/api/handlers"
	"github.com/atelierbellemare/atelier-backend/internal/api/middleware"
	"github.com/atelierbellemare/atelier-backend/internal/config"
	"github.com/atelierbellemare/atelier-backend/internal/repository"
	"github.com/atelierbellemare/atelier-backend/internal/storage"
	"github.com/atelierbellemare/atelier-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB           *gorm.DB
	ImageStorage storage.ImageStorage
	Notifier     handlers.InquiryNotifier
	Hub          *websocket.Hub
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.SecureHeaders())
	e.Use(middleware.SecureCORS(cfg.Config.Origins(), cfg.Config.AppEnv))
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	// Repositories
	inquiryRepo := repository.NewInquiryRepository(cfg.DB)
	paintingRepo := repository.NewPaintingRepository(cfg.DB)
	categoryRepo := repository.NewCategoryRepository(cfg.DB)
	finishRepo := repository.NewFinishRepository(cfg.DB)
	faqRepo := repository.NewFAQRepository(cfg.DB)
	testimonialRepo := repository.NewTestimonialRepository(cfg.DB)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo, paintingRepo, cfg.Notifier, cfg.Hub)
	galleryHandler := handlers.NewGalleryHandler(paintingRepo, categoryRepo, finishRepo)
	contentHandler := handlers.NewContentHandler(faqRepo, testimonialRepo, cfg.Config.Site)
	adminInquiryHandler := handlers.NewAdminInquiryHandler(inquiryRepo, cfg.Notifier)
	adminPaintingHandler := handlers.NewAdminPaintingHandler(paintingRepo, cfg.ImageStorage)
	adminContentHandler := handlers.NewAdminContentHandler(faqRepo, testimonialRepo, categoryRepo, finishRepo)

	// Health routes (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Uploaded painting images
	e.Static("/media", cfg.Config.MediaStoragePath)

	// Public API
	api := e.Group("/api")

	// Intake forms get per-IP rate limiting to slow down spam
	formLimiter := middleware.RateLimiter(cfg.Config.RateLimitRequests, cfg.Config.RateLimitBurst, cfg.Logger)
	api.POST("/contact", inquiryHandler.Contact, formLimiter)
	api.POST("/purchase-inquiry", inquiryHandler.PurchaseInquiry, formLimiter)

	api.GET("/paintings", galleryHandler.ListPaintings)
	api.GET("/paintings/:slug", galleryHandler.GetPainting)
	api.GET("/paintings/:slug/related", galleryHandler.GetRelatedPaintings)
	api.GET("/search", galleryHandler.SearchPaintings)
	api.GET("/categories", galleryHandler.ListCategories)
	api.GET("/categories/:slug/paintings", galleryHandler.ListCategoryPaintings)
	api.GET("/finishes", galleryHandler.ListFinishes)
	api.GET("/faqs", contentHandler.ListFAQs)
	api.GET("/testimonials", contentHandler.ListTestimonials)
	api.GET("/settings", contentHandler.GetSettings)

	// Admin API, bearer-token protected
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Config.AdminToken, cfg.Logger))

	inquiries := admin.Group("/inquiries")
	inquiries.GET("", adminInquiryHandler.List)
	inquiries.GET("/:id", adminInquiryHandler.Get)
	inquiries.PATCH("/:id/read", adminInquiryHandler.MarkRead)
	inquiries.PATCH("/:id/unread", adminInquiryHandler.MarkUnread)
	inquiries.PATCH("/:id/archive", adminInquiryHandler.Archive)
	inquiries.PATCH("/:id/unarchive", adminInquiryHandler.Unarchive)
	inquiries.POST("/:id/resend", adminInquiryHandler.Resend)

	paintings := admin.Group("/paintings")
	paintings.GET("", adminPaintingHandler.List)
	paintings.GET("/:id", adminPaintingHandler.Get)
	paintings.POST("", adminPaintingHandler.Create)
	paintings.PUT("/:id", adminPaintingHandler.Update)
	paintings.DELETE("/:id", adminPaintingHandler.Delete)
	paintings.POST("/:id/images", adminPaintingHandler.UploadImage)

	images := admin.Group("/images")
	images.PATCH("/:id/primary", adminPaintingHandler.SetPrimaryImage)
	images.DELETE("/:id", adminPaintingHandler.DeleteImage)

	faqs := admin.Group("/faqs")
	faqs.GET("", adminContentHandler.ListFAQs)
	faqs.POST("", adminContentHandler.CreateFAQ)
	faqs.PUT("/:id", adminContentHandler.UpdateFAQ)
	faqs.DELETE("/:id", adminContentHandler.DeleteFAQ)

	testimonials := admin.Group("/testimonials")
	testimonials.GET("", adminContentHandler.ListTestimonials)
	testimonials.POST("", adminContentHandler.CreateTestimonial)
	testimonials.PUT("/:id", adminContentHandler.UpdateTestimonial)
	testimonials.DELETE("/:id", adminContentHandler.DeleteTestimonial)

	categories := admin.Group("/categories")
	categories.GET("", adminContentHandler.ListCategories)
	categories.POST("", adminContentHandler.CreateCategory)
	categories.PUT("/:id", adminContentHandler.UpdateCategory)
	categories.DELETE("/:id", adminContentHandler.DeleteCategory)

	finishes := admin.Group("/finishes")
	finishes.GET("", adminContentHandler.ListFinishes)
	finishes.POST("", adminContentHandler.CreateFinish)
	finishes.PUT("/:id", adminContentHandler.UpdateFinish)
	finishes.DELETE("/:id", adminContentHandler.DeleteFinish)

	// Live inquiry feed for the admin dashboard
	if cfg.Hub != nil {
		upgrader := websocket.NewSecureUpgrader(cfg.Config.Origins(), cfg.Logger)
		wsHandler := handlers.NewWSHandler(cfg.Hub, upgrader, cfg.Logger)
		admin.GET("/ws", wsHandler.Serve)
	}

	return e
}
