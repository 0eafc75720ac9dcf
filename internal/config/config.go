package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Brand overrides applied on top of the page content
	Brand BrandConfig

	// ContentFile is an optional YAML overlay for the page copy
	ContentFile string `env:"CONTENT_FILE"`

	// Storage for publishing the exported site
	Storage StorageConfig

	// Per-client request limit on page routes, 0 disables
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"60"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// BrandConfig overrides the brand block of the page. Empty fields keep the
// content defaults.
type BrandConfig struct {
	Name         string `env:"BRAND_NAME"`
	ContactEmail string `env:"CONTACT_EMAIL"`
	DemoNumber   string `env:"DEMO_NUMBER"`
	BookingURL   string `env:"BOOKING_URL"`
}

// StorageConfig holds S3-compatible storage settings
type StorageConfig struct {
	// Endpoint is the S3/MinIO endpoint URL, empty for AWS
	Endpoint        string `env:"STORAGE_ENDPOINT"`
	AccessKeyID     string `env:"STORAGE_ACCESS_KEY"`
	SecretAccessKey string `env:"STORAGE_SECRET_KEY"`
	Region          string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	// Bucket receives the exported site
	Bucket string `env:"STORAGE_BUCKET_SITE"`
}

// IsConfigured returns true if publishing can reach a bucket
func (s *StorageConfig) IsConfigured() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// LoadDotEnv reads .env then .env.local from the working directory.
// Missing files are ignored. .env.local takes precedence.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig parses the configuration and logs a summary
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("content_file", cfg.ContentFile),
		slog.Bool("storage_configured", cfg.Storage.IsConfigured()),
	)

	return cfg, nil
}
