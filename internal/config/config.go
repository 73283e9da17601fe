package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	APIPort int

	// Outbound mail
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFrom        string
	NotifyAddresses []string

	// Storage
	MediaStoragePath string

	// Logging
	LogLevel string

	// Security
	AdminToken     string
	AllowedOrigins string
	AppEnv         string

	// Rate limiting
	RateLimitRequests float64
	RateLimitBurst    int

	// Site settings, formerly a singleton database row. Loaded once at
	// startup with defaults and served read-only by the settings endpoint.
	Site SiteSettings
}

// SiteSettings carries site-wide presentation values
type SiteSettings struct {
	SiteName        string `json:"site_name"`
	SiteURL         string `json:"site_url"`
	VideoURL        string `json:"video_url,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
	ContactAddress  string `json:"contact_address,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ContactFacebook string `json:"contact_facebook,omitempty"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Required: DATABASE_URL
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	// API_PORT (default: 8080)
	apiPort := os.Getenv("API_PORT")
	if apiPort == "" {
		cfg.APIPort = 8080
	} else {
		port, err := strconv.Atoi(apiPort)
		if err != nil {
			return nil, fmt.Errorf("API_PORT must be a valid integer: %w", err)
		}
		cfg.APIPort = port
	}

	// SMTP_HOST (default: localhost)
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "localhost"
	}

	// SMTP_PORT (default: 587)
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		cfg.SMTPPort = 587
	} else {
		port, err := strconv.Atoi(smtpPort)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT must be a valid integer: %w", err)
		}
		cfg.SMTPPort = port
	}

	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	// MAIL_FROM (default: derived from SMTP_USERNAME)
	cfg.MailFrom = os.Getenv("MAIL_FROM")
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUsername
	}

	// NOTIFY_ADDRESSES: comma-separated operator recipient list
	if addrs := os.Getenv("NOTIFY_ADDRESSES"); addrs != "" {
		for _, addr := range strings.Split(addrs, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				cfg.NotifyAddresses = append(cfg.NotifyAddresses, addr)
			}
		}
	}

	// MEDIA_STORAGE_PATH (default: ./media)
	cfg.MediaStoragePath = os.Getenv("MEDIA_STORAGE_PATH")
	if cfg.MediaStoragePath == "" {
		cfg.MediaStoragePath = "./media"
	}

	// LOG_LEVEL (default: info)
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Security configuration
	cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	cfg.AppEnv = os.Getenv("APP_ENV")
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	// Rate limiting configuration
	if rps := os.Getenv("RATE_LIMIT_REQUESTS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.RateLimitRequests = v
		}
	} else {
		cfg.RateLimitRequests = 10.0
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if v, err := strconv.Atoi(burst); err == nil {
			cfg.RateLimitBurst = v
		}
	} else {
		cfg.RateLimitBurst = 20
	}

	cfg.Site = loadSiteSettings()

	return cfg, nil
}

// loadSiteSettings reads the site-wide presentation values with defaults
func loadSiteSettings() SiteSettings {
	s := SiteSettings{
		SiteName:        getEnvDefault("SITE_NAME", "André Bellemare"),
		SiteURL:         getEnvDefault("SITE_URL", "http://localhost:8080"),
		VideoURL:        os.Getenv("SITE_VIDEO_URL"),
		MetaDescription: os.Getenv("SITE_META_DESCRIPTION"),
		MetaKeywords:    os.Getenv("SITE_META_KEYWORDS"),
		ContactAddress:  os.Getenv("CONTACT_ADDRESS"),
		ContactPhone:    os.Getenv("CONTACT_PHONE"),
		ContactFacebook: os.Getenv("CONTACT_FACEBOOK"),
	}
	return s
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadWithValidation loads and validates configuration, failing fast on errors
func LoadWithValidation() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Production-specific validation
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProduction(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DatabaseURL cannot be empty")
	}
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("APIPort must be between 1 and 65535")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTPPort must be between 1 and 65535")
	}
	if c.MediaStoragePath == "" {
		return fmt.Errorf("MediaStoragePath cannot be empty")
	}
	if len(c.NotifyAddresses) == 0 {
		return fmt.Errorf("NOTIFY_ADDRESSES must contain at least one recipient")
	}
	if c.MailFrom == "" {
		return fmt.Errorf("MAIL_FROM or SMTP_USERNAME must be set")
	}
	return nil
}

// ValidateProduction performs additional validation for production environment
func (c *Config) ValidateProduction() error {
	if c.AdminToken == "" {
		return fmt.Errorf("ADMIN_TOKEN is required in production")
	}

	if c.AllowedOrigins == "" {
		return fmt.Errorf("ALLOWED_ORIGINS is required in production")
	}

	// Check for wildcard in production
	if strings.Contains(c.AllowedOrigins, "*") {
		return fmt.Errorf("wildcard (*) origins are not allowed in production")
	}

	// Check for sslmode=disable in database URL
	if strings.Contains(c.DatabaseURL, "sslmode=disable") {
		return fmt.Errorf("sslmode=disable is not allowed in production")
	}

	return nil
}

// Origins returns the allowed CORS origins as a trimmed slice
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// LogConfig logs configuration values (excluding secrets)
func (c *Config) LogConfig(logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.Int("api_port", c.APIPort),
		slog.String("smtp_host", c.SMTPHost),
		slog.Int("smtp_port", c.SMTPPort),
		slog.String("mail_from", c.MailFrom),
		slog.Int("notify_addresses", len(c.NotifyAddresses)),
		slog.String("media_path", c.MediaStoragePath),
		slog.String("log_level", c.LogLevel),
		slog.String("app_env", c.AppEnv),
		slog.Bool("admin_token_set", c.AdminToken != ""),
		slog.Bool("allowed_origins_set", c.AllowedOrigins != ""),
		slog.Float64("rate_limit_rps", c.RateLimitRequests),
		slog.Int("rate_limit_burst", c.RateLimitBurst),
	)
}
