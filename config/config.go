// Package config defines the application configuration structures.
//
// Separated from cmd so that the pipeline, server, and tui packages can
// depend on config without importing Cobra. All settings come from the
// environment (optionally seeded from a .env file); the Config struct is
// built once at startup and passed down explicitly; render code never
// reads the environment itself.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// ServerPort is the HTTP port for the dashboard.
	ServerPort int

	// MaxRows is the dataset row ceiling. Uploads above it are rejected
	// before any processing.
	MaxRows int

	// FontRegular and FontBold are paths to the two TTF files used for
	// PDF text rendering. If either is missing the PDF step is skipped
	// with a warning instead of failing the request.
	FontRegular string
	FontBold    string

	// SpeechLanguage is the language code for audio synthesis.
	SpeechLanguage string

	// AnalyzeTimeout bounds a single model call.
	AnalyzeTimeout time.Duration

	// AnalyzeRetries is the number of additional model call attempts
	// after a transport failure.
	AnalyzeRetries int

	AI AIConfig
}

// Load builds the configuration from the environment. A .env file in the
// working directory is loaded first when present (its absence is not an
// error).
func Load() Config {
	godotenv.Load() //nolint:errcheck

	return Config{
		ServerPort:     GetEnvAsInt("SERVER_PORT", 8080),
		MaxRows:        GetEnvAsInt("MAX_ROWS", 4000),
		FontRegular:    GetEnv("FONT_REGULAR", "dejavu-fonts-ttf-2.37/ttf/DejaVuSans.ttf"),
		FontBold:       GetEnv("FONT_BOLD", "dejavu-fonts-ttf-2.37/ttf/DejaVuSans-Bold.ttf"),
		SpeechLanguage: GetEnv("SPEECH_LANGUAGE", "en"),
		AnalyzeTimeout: GetEnvAsDuration("ANALYZE_TIMEOUT", 120*time.Second),
		AnalyzeRetries: GetEnvAsInt("ANALYZE_RETRIES", 2),
		AI:             LoadAIConfig(),
	}
}

// Validate checks the settings that must be present at startup. Font
// files are not checked here; a missing font degrades the PDF step at
// request time instead.
func (c Config) Validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid server port %d", c.ServerPort)
	}
	if c.MaxRows <= 0 {
		return fmt.Errorf("row ceiling must be positive, got %d", c.MaxRows)
	}
	return c.AI.Validate()
}

// GetEnv fetches an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt fetches an environment variable as an integer with a fallback.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

// GetEnvAsDuration fetches an environment variable as a time.Duration
// with a fallback. Format: "5s", "10m", "1h".
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
