// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	// Drive import is disabled when empty
	GoogleCredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	// PDF lookbooks are disabled when empty
	ChromePath string `env:"CHROME_PATH"`
	// Embedded season table is used when empty
	SuggestionConfigPath string `env:"SUGGESTION_CONFIG"`

	CanvasPadding          float64       `env:"CANVAS_PADDING" envDefault:"70"`
	CompositionIdleTimeout time.Duration `env:"COMPOSITION_IDLE_TIMEOUT" envDefault:"30m"`
	JanitorSchedule        string        `env:"JANITOR_SCHEDULE" envDefault:"@every 1m"`
	ImageMaxDimension      int           `env:"IMAGE_MAX_DIMENSION" envDefault:"800"`
	ImageQuality           int           `env:"IMAGE_QUALITY" envDefault:"80"`
	AuthTokenTTL           time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"720h"`
}

// Load parses the configuration from the process environment
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.CanvasPadding < 0 {
		return fmt.Errorf("CANVAS_PADDING must not be negative, got %v", c.CanvasPadding)
	}
	if c.ImageMaxDimension <= 0 {
		return fmt.Errorf("IMAGE_MAX_DIMENSION must be positive, got %d", c.ImageMaxDimension)
	}
	if c.ImageQuality < 1 || c.ImageQuality > 100 {
		return fmt.Errorf("IMAGE_QUALITY must be between 1 and 100, got %d", c.ImageQuality)
	}
	if c.CompositionIdleTimeout <= 0 {
		return fmt.Errorf("COMPOSITION_IDLE_TIMEOUT must be positive, got %s", c.CompositionIdleTimeout)
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Addr is the listen address; PORT may carry a leading colon
func (c Config) Addr() string {
	return "0.0.0.0:" + strings.TrimPrefix(c.Port, ":")
}

// DSN returns DATABASE_URL or a connection string built from the DB_* variables
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode), nil
}

// DriveEnabled reports whether Drive import is configured
func (c Config) DriveEnabled() bool {
	return c.GoogleCredentialsPath != ""
}
