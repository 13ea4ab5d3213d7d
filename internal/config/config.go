package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/soundscout/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port           string
	DBPath         string
	ProviderURL    string
	ProviderName   string
	SeedsFile      string
	KeywordsCSV    string
	LogLevel       string
	LogFormat      string
	LogFile        string
	ProviderRate   float64
	CacheTTL       time.Duration
	PreviewFloor   time.Duration
	MaxTrackLength time.Duration
	MockProvider   bool

	invalid []string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", constants.DefaultPort),
		DBPath:       getEnv("DB_PATH", constants.DefaultDBPath),
		ProviderURL:  getEnv("PROVIDER_URL", constants.DefaultProviderURL),
		ProviderName: getEnv("PROVIDER_NAME", constants.DefaultProviderName),
		SeedsFile:    getEnv("SEEDS_FILE", ""),
		KeywordsCSV:  getEnv("KEYWORDS_CSV", constants.DefaultKeywordsCSV),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		LogFile:      getEnv("LOG_FILE", ""),
		MockProvider: getEnv("PROVIDER_MOCK", "") == "true",
	}

	cfg.ProviderRate = cfg.getFloat("PROVIDER_RATE_LIMIT", constants.DefaultProviderRate)
	cfg.CacheTTL = cfg.getDuration("CACHE_TTL", constants.DefaultCacheTTL)
	cfg.PreviewFloor = time.Duration(cfg.getFloat("PREVIEW_FLOOR_SECONDS", constants.DefaultPreviewFloor.Seconds()) * float64(time.Second))
	cfg.MaxTrackLength = time.Duration(cfg.getFloat("MAX_TRACK_MINUTES", constants.DefaultMaxTrackLength.Minutes()) * float64(time.Minute))

	return cfg
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	errors := append([]string(nil), c.invalid...)

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate DBPath
	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	// Validate ProviderURL
	if c.ProviderURL == "" {
		errors = append(errors, "PROVIDER_URL cannot be empty")
	} else {
		u, err := url.Parse(c.ProviderURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("PROVIDER_URL is not a valid URL: %s", c.ProviderURL))
		}
	}

	if strings.TrimSpace(c.ProviderName) == "" {
		errors = append(errors, "PROVIDER_NAME cannot be empty")
	}

	if c.ProviderRate < 0 {
		errors = append(errors, fmt.Sprintf("PROVIDER_RATE_LIMIT cannot be negative, got: %v", c.ProviderRate))
	}
	if c.CacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("CACHE_TTL must be positive, got: %s", c.CacheTTL))
	}
	if c.PreviewFloor < 0 {
		errors = append(errors, fmt.Sprintf("PREVIEW_FLOOR_SECONDS cannot be negative, got: %s", c.PreviewFloor))
	}
	if c.MaxTrackLength <= c.PreviewFloor {
		errors = append(errors, fmt.Sprintf("MAX_TRACK_MINUTES must exceed the preview floor, got: %s", c.MaxTrackLength))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func (c *Config) getFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s must be a number, got: %s", key, raw))
		return fallback
	}
	return v
}

func (c *Config) getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		c.invalid = append(c.invalid, fmt.Sprintf("%s must be a duration such as 3h, got: %s", key, raw))
		return fallback
	}
	return v
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
