package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	apperrors "hackmonitor-backend/internal/errors"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Team list sources
	TeamsAPIURL     string `mapstructure:"TEAMS_API_URL"`
	BundledDataPath string `mapstructure:"BUNDLED_DATA_PATH"`

	// Hosting API configuration
	GitHubToken  string `mapstructure:"GITHUB_TOKEN"`
	GitHubAPIURL string `mapstructure:"GITHUB_API_URL"`

	// Refresh configuration
	RefreshConcurrency int    `mapstructure:"REFRESH_CONCURRENCY"`
	HTTPTimeoutSec     int    `mapstructure:"HTTP_TIMEOUT_SEC"`
	HackathonStart     string `mapstructure:"HACKATHON_START"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.TeamsAPIURL = strings.TrimSuffix(strings.TrimSpace(config.TeamsAPIURL), "/")

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("TEAMS_API_URL", "")
	viper.SetDefault("BUNDLED_DATA_PATH", "data/monitoring_report.json")

	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_API_URL", "")

	viper.SetDefault("REFRESH_CONCURRENCY", 5)
	viper.SetDefault("HTTP_TIMEOUT_SEC", 15)
	viper.SetDefault("HACKATHON_START", "2026-01-01T00:00:00Z")

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
}

func validate(config *Config) error {
	if config.RefreshConcurrency < 1 || config.RefreshConcurrency > 20 {
		return apperrors.NewConfigurationError(fmt.Sprintf("REFRESH_CONCURRENCY must be between 1 and 20, got %d", config.RefreshConcurrency))
	}

	if config.HTTPTimeoutSec <= 0 {
		return apperrors.NewConfigurationError("HTTP_TIMEOUT_SEC must be positive")
	}

	if _, err := config.HackathonStartTime(); err != nil {
		return err
	}

	if config.TeamsAPIURL != "" {
		u, err := url.Parse(config.TeamsAPIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return apperrors.NewConfigurationError("TEAMS_API_URL must be an absolute URL")
		}
	}

	return nil
}

// HackathonStartTime parses HACKATHON_START as RFC3339
func (c *Config) HackathonStartTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.HackathonStart)
	if err != nil {
		return time.Time{}, apperrors.NewConfigurationError(fmt.Sprintf("HACKATHON_START must be RFC3339: %v", err))
	}
	return t, nil
}

// HTTPTimeout returns the outbound HTTP timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
