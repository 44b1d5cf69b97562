package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "FILE_STORAGE_LOCATION", "IMAGE_CONTENT_TYPE_MODE",
		"UPLOAD_MAX_BYTES", "UPLOAD_RATE_LIMIT", "LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, DefaultStorageLocation, cfg.StorageLocation)
	assert.Equal(t, "fixed", cfg.ContentTypeMode)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, float64(10), cfg.UploadRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("FILE_STORAGE_LOCATION", "/tmp/pets")
	t.Setenv("IMAGE_CONTENT_TYPE_MODE", "sniff")
	t.Setenv("UPLOAD_MAX_BYTES", "2048")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "/tmp/pets", cfg.StorageLocation)
	assert.Equal(t, "sniff", cfg.ContentTypeMode)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown content type mode", "IMAGE_CONTENT_TYPE_MODE", "guess"},
		{"non-numeric upload limit", "UPLOAD_MAX_BYTES", "lots"},
		{"negative upload limit", "UPLOAD_MAX_BYTES", "-1"},
		{"zero rate limit", "UPLOAD_RATE_LIMIT", "0"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
