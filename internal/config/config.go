package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMAPIKey            string
	LLMModelName         string
	LLMTimeout           time.Duration
	LLMRequestsPerSecond float64
	LLMJSONMode          bool

	TranscriptLanguage string
	SourceTimeout      time.Duration

	ChunkSize    int
	ChunkOverlap int

	SampleSize       int
	BatchConcurrency int
	InputRate        float64
	OutputRate       float64

	RequestTimeout time.Duration
	APIPort        string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMAPIKey:          getEnv("GEMINI_API_KEY", ""),
		LLMModelName:       getEnv("GEN_MODEL", "gemini-1.5-flash"),
		TranscriptLanguage: getEnv("TRANSCRIPT_LANGUAGE", "en"),
		APIPort:            getEnv("API_PORT", "8000"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	if cfg.LLMTimeout, err = getDuration("LLM_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SourceTimeout, err = getDuration("SOURCE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.LLMRequestsPerSecond, err = getFloat("LLM_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.LLMRequestsPerSecond < 0 {
		return nil, fmt.Errorf("LLM_RPS must not be negative")
	}
	if cfg.LLMJSONMode, err = getBool("LLM_JSON_MODE", true); err != nil {
		return nil, err
	}

	// Transcripts are split into 1000-character chunks with no overlap by default.
	if cfg.ChunkSize, err = getInt("CHUNK_SIZE", 1000); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getInt("CHUNK_OVERLAP", 0); err != nil {
		return nil, err
	}
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("CHUNK_SIZE must be greater than 0")
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("CHUNK_OVERLAP must be in [0, CHUNK_SIZE)")
	}

	if cfg.SampleSize, err = getInt("SAMPLE_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.SampleSize < 0 {
		return nil, fmt.Errorf("SAMPLE_SIZE must not be negative")
	}
	if cfg.BatchConcurrency, err = getInt("BATCH_CONCURRENCY", 1); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency <= 0 {
		return nil, fmt.Errorf("BATCH_CONCURRENCY must be greater than 0")
	}

	if cfg.InputRate, err = getFloat("INPUT_RATE", 0.000125); err != nil {
		return nil, err
	}
	if cfg.OutputRate, err = getFloat("OUTPUT_RATE", 0.000375); err != nil {
		return nil, err
	}
	if cfg.InputRate < 0 || cfg.OutputRate < 0 {
		return nil, fmt.Errorf("INPUT_RATE and OUTPUT_RATE must not be negative")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return f, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a valid boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}
