package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultStorageLocation is where images are kept when FILE_STORAGE_LOCATION is unset.
const DefaultStorageLocation = "/var/app/petclinic/"

// Config holds all configuration for the application. It is read once at
// startup and passed explicitly to the components that need it.
type Config struct {
	ServerAddr      string  `validate:"required"`
	StorageLocation string  `validate:"required"`
	ContentTypeMode string  `validate:"oneof=fixed sniff"`
	MaxUploadBytes  int64   `validate:"gte=0"`
	UploadRateLimit float64 `validate:"gt=0"`
	LogFormat       string  `validate:"omitempty,oneof=text json"`
	LogLevel        string
}

// New loads configuration from the environment, reading an optional .env
// file first.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() (*Config, error) {
	maxUpload, err := int64Env("UPLOAD_MAX_BYTES", 10<<20)
	if err != nil {
		return nil, err
	}
	rateLimit, err := floatEnv("UPLOAD_RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddr:      stringEnv("SERVER_ADDR", ":8080"),
		StorageLocation: stringEnv("FILE_STORAGE_LOCATION", DefaultStorageLocation),
		ContentTypeMode: stringEnv("IMAGE_CONTENT_TYPE_MODE", "fixed"),
		MaxUploadBytes:  maxUpload,
		UploadRateLimit: rateLimit,
		LogFormat:       os.Getenv("LOG_FORMAT"),
		LogLevel:        stringEnv("LOG_LEVEL", "info"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func int64Env(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
