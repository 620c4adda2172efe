package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY (or GOOGLE_API_KEY) must be set")

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Debug   DebugConfig
}

type ServerConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development production"`
	LogLevel string `validate:"oneof=debug info warn error"`
}

type GeminiConfig struct {
	APIKey      string        `validate:"required"`
	Model       string        `validate:"required"`
	Temperature float32       `validate:"gte=0,lte=2"`
	Timeout     time.Duration `validate:"gt=0"`
}

type StorageConfig struct {
	MaxFileSize int64 `validate:"gt=0"`
}

// DebugConfig toggles diagnostic output. RawResponse renders the model's raw
// reply next to successful results; failures always carry it.
type DebugConfig struct {
	RawResponse bool
}

// Load reads the environment (and an optional .env file) and validates the
// result. A missing API key is reported here so the process fails at startup
// instead of on the first request.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return FromEnv()
}

// FromEnv builds the config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.2),
			Timeout:     getEnvAsDuration("MODEL_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Debug: DebugConfig{
			RawResponse: getEnvAsBool("DEBUG_RAW_RESPONSE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its struct tag.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}

	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
