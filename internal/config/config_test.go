package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable FromEnv reads so the host environment does
// not leak into the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL",
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_TEMPERATURE", "MODEL_TIMEOUT",
		"MAX_FILE_SIZE", "DEBUG_RAW_RESPONSE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv_MissingAPIKeyFailsFast(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.2, cfg.Gemini.Temperature, 1e-6)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.EqualValues(t, 10485760, cfg.Storage.MaxFileSize)
	assert.False(t, cfg.Debug.RawResponse)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_GoogleAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.Gemini.APIKey)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "primary")
	t.Setenv("GOOGLE_API_KEY", "ignored")
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("MODEL_TIMEOUT", "90s")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("DEBUG_RAW_RESPONSE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.Gemini.APIKey)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 1e-6)
	assert.Equal(t, 90*time.Second, cfg.Gemini.Timeout)
	assert.EqualValues(t, 2048, cfg.Storage.MaxFileSize)
	assert.True(t, cfg.Debug.RawResponse)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown env", "ENV", "staging"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"non-numeric port", "PORT", "http"},
		{"temperature out of range", "GEMINI_TEMPERATURE", "3.5"},
		{"negative file size", "MAX_FILE_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEMINI_API_KEY", "test-key")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		cfg := &Config{Server: ServerConfig{Env: env, LogLevel: "warn"}}
		logger := NewLogger(cfg)
		require.NotNil(t, logger)
		assert.False(t, logger.Handler().Enabled(t.Context(), slog.LevelDebug), "debug must be disabled at warn level")
	}
}

func TestNewLogger_LeavesDefaultOptionsAlone(t *testing.T) {
	defaultLevel := slogcolor.DefaultOptions.Level
	defaultSrcMode := slogcolor.DefaultOptions.SrcFileMode

	debugLogger := NewLogger(&Config{Server: ServerConfig{Env: "development", LogLevel: "debug"}})
	errorLogger := NewLogger(&Config{Server: ServerConfig{Env: "development", LogLevel: "error"}})

	assert.Equal(t, defaultLevel, slogcolor.DefaultOptions.Level)
	assert.Equal(t, defaultSrcMode, slogcolor.DefaultOptions.SrcFileMode)

	assert.True(t, debugLogger.Handler().Enabled(t.Context(), slog.LevelDebug))
	assert.False(t, errorLogger.Handler().Enabled(t.Context(), slog.LevelWarn))
}
