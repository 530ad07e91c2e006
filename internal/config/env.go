package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults mirror the original deployment: Groq's OpenAI-compatible endpoint,
// whisper-large-v3, English transcription, 25 MB upload cap.
const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel       = "whisper-large-v3"
	DefaultLanguage    = "en"
	DefaultPort        = "8080"
	DefaultMaxUploadMB = 25
)

// Config holds all runtime configuration for the scribe server.
type Config struct {
	GroqAPIKey  string
	GroqBaseURL string
	Model       string
	Language    string

	Host        string
	Port        string
	MaxUploadMB int64
	Environment string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

var validate = validator.New()

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds a Config from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GroqAPIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL: getEnvOrDefault("SCRIBE_GROQ_BASE_URL", DefaultGroqBaseURL),
		Model:       getEnvOrDefault("SCRIBE_MODEL", DefaultModel),
		Language:    getEnvOrDefault("SCRIBE_LANGUAGE", DefaultLanguage),
		Host:        os.Getenv("SCRIBE_HOST"),
		Port:        getEnvOrDefault("SCRIBE_PORT", DefaultPort),
		Environment: getEnvOrDefault("SCRIBE_ENV", "development"),

		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	maxMB := int64(DefaultMaxUploadMB)
	if raw := os.Getenv("SCRIBE_MAX_UPLOAD_MB"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SCRIBE_MAX_UPLOAD_MB value %q: must be a positive integer", raw)
		}
		maxMB = parsed
	}
	cfg.MaxUploadMB = maxMB

	if err := ValidateLanguage(cfg.Language); err != nil {
		return nil, fmt.Errorf("invalid SCRIBE_LANGUAGE: %w", err)
	}

	return cfg, nil
}

// RequireAPIKey enforces fail-fast startup: the server must not come up
// without a credential, or every transcription would fail downstream.
func (c *Config) RequireAPIKey() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is not set - add it to the environment or a .env file")
	}
	return nil
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValidateLanguage checks that a language override is a plausible BCP 47 tag.
func ValidateLanguage(lang string) error {
	if err := validate.Var(lang, "omitempty,bcp47_language_tag"); err != nil {
		return fmt.Errorf("%q is not a valid language tag", lang)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
