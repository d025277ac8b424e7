package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Catalog sources
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken        string        `envconfig:"BOT_TOKEN" required:"true"`
	CatalogSource   string        `envconfig:"CATALOG_SOURCE" default:"static"`
	AdminReplyDelay time.Duration `envconfig:"ADMIN_REPLY_DELAY" default:"3s"`
	PollTimeout     time.Duration `envconfig:"POLL_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Database        DatabaseConfig
}

// DatabaseConfig holds database connection settings. Only used by the
// postgres catalog source.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"mygriya"`
	User     string `envconfig:"DB_USER" default:"mygriya"`
	Password string `envconfig:"DB_PASSWORD"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDatabase reads only the database settings, for commands that do not
// talk to Telegram
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	var db DatabaseConfig
	if err := envconfig.Process("", &db); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if db.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	return &db, nil
}

// Validate checks cross-field requirements
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	switch c.CatalogSource {
	case CatalogStatic:
	case CatalogPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", CatalogStatic, CatalogPostgres, c.CatalogSource)
	}

	if c.AdminReplyDelay < 0 {
		return fmt.Errorf("ADMIN_REPLY_DELAY must not be negative")
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}
