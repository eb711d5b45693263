package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/trails-backend-go/internal/models"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Port        string
	DBPath      string
	LogLevel    string
	LogFormat   string
	SeedOnStart bool

	// Search limits
	MaxSearchResults int
	TopResultsLimit  int
	DescriptionLimit int
	Capabilities     models.Capabilities // nil means every filter field

	// LLM extraction; disabled when the key is empty
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	ExtractionTimeout time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSOrigins       []string
	ShutdownTimeout   time.Duration
}

// LLMEnabled reports whether an OpenAI key was provided
func (c *Config) LLMEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", ":8080"),
		DBPath:        envOrDefault("DB_PATH", "./data/trails.db"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		CORSOrigins:   parseList(envOrDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
	if !strings.Contains(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	var err error
	if cfg.SeedOnStart, err = parseBool("SEED_ON_START", false); err != nil {
		return nil, err
	}
	if cfg.MaxSearchResults, err = parsePositiveInt("MAX_SEARCH_RESULTS", 20); err != nil {
		return nil, err
	}
	if cfg.TopResultsLimit, err = parsePositiveInt("TOP_RESULTS_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.DescriptionLimit, err = parsePositiveInt("DESCRIPTION_LIMIT", 200); err != nil {
		return nil, err
	}
	if cfg.RateLimitRequests, err = parsePositiveInt("RATE_LIMIT_REQUESTS", 60); err != nil {
		return nil, err
	}
	if cfg.ExtractionTimeout, err = parseDuration("EXTRACTION_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = parseDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Capabilities, err = parseCapabilities(os.Getenv("SEARCH_DISABLED_FIELDS")); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		return nil, errors.New("DB_PATH is required")
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseBool(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}

// parseCapabilities turns a comma-separated list of disabled filter fields
// into a capability set. An empty list enables everything.
func parseCapabilities(disabled string) (models.Capabilities, error) {
	names := parseList(disabled)
	if len(names) == 0 {
		return nil, nil
	}
	fields := make([]models.FilterField, 0, len(names))
	for _, name := range names {
		f, err := models.ParseFilterField(name)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_DISABLED_FIELDS: %w", err)
		}
		fields = append(fields, f)
	}
	return models.AllCapabilities().Without(fields...), nil
}
