package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Directory DirectoryConfig `yaml:"directory"`
	Email     EmailConfig     `yaml:"email"`
	Cache     CacheConfig     `yaml:"cache"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Reminders ReminderConfig  `yaml:"reminders"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST"`
	Port int    `yaml:"port" env:"SERVER_PORT"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
}

// JWTConfig contains the secret used to verify session tokens
type JWTConfig struct {
	Secret            string `yaml:"secret" env:"JWT_SECRET"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes" env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" env:"LOG_FORMAT"` // "json" or "text"
}

// DirectoryConfig points at the upstream people directory API
type DirectoryConfig struct {
	BaseURL        string `yaml:"base_url" env:"DIRECTORY_BASE_URL"`
	APIKey         string `yaml:"api_key" env:"DIRECTORY_API_KEY"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"DIRECTORY_TIMEOUT_SECONDS"`
}

// EmailConfig contains SendGrid settings
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	FromEmail      string `yaml:"from_email" env:"EMAIL_FROM"`
	FromName       string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
	PortalURL      string `yaml:"portal_url" env:"PORTAL_URL"`
}

// CacheConfig controls the team requirements cache
type CacheConfig struct {
	TeamRequirementsTTLSeconds int `yaml:"team_requirements_ttl_seconds" env:"CACHE_TEAM_REQUIREMENTS_TTL_SECONDS"`
	Size                       int `yaml:"size" env:"CACHE_SIZE"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendOnboardingReminders string `yaml:"send_onboarding_reminders" env:"SCHEDULE_ONBOARDING_REMINDERS"`
	SendExpirationNotices   string `yaml:"send_expiration_notices" env:"SCHEDULE_EXPIRATION_NOTICES"`
}

// ReminderConfig tunes the reminder jobs
type ReminderConfig struct {
	ExpirationWindowDays int `yaml:"expiration_window_days" env:"REMINDER_EXPIRATION_WINDOW_DAYS"`
}

// Load reads configuration from a YAML file, then applies environment overrides
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes and the process environment
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}

	if c.Directory.BaseURL == "" {
		return fmt.Errorf("directory base URL is required")
	}
	if c.Directory.TimeoutSeconds == 0 {
		c.Directory.TimeoutSeconds = 10
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Cache.TeamRequirementsTTLSeconds == 0 {
		c.Cache.TeamRequirementsTTLSeconds = 300
	}
	if c.Cache.Size == 0 {
		c.Cache.Size = 16
	}

	if c.Scheduler.SendOnboardingReminders == "" {
		c.Scheduler.SendOnboardingReminders = "0 0 15 * * MON" // Mondays at 3 PM UTC
	}
	if c.Scheduler.SendExpirationNotices == "" {
		c.Scheduler.SendExpirationNotices = "0 0 14 * * *" // Daily at 2 PM UTC
	}

	if c.Reminders.ExpirationWindowDays == 0 {
		c.Reminders.ExpirationWindowDays = 30
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP listen address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) DirectoryTimeout() time.Duration {
	return time.Duration(c.Directory.TimeoutSeconds) * time.Second
}

func (c *Config) TeamRequirementsTTL() time.Duration {
	return time.Duration(c.Cache.TeamRequirementsTTLSeconds) * time.Second
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiry) * time.Minute
}
