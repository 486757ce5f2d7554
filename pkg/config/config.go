package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// ErrInvalid is returned when the configuration cannot start the service.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Port     string `env:"PORT" validate:"required,numeric"`
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	Provider    string  `env:"LLM_PROVIDER" validate:"oneof=gemini openrouter"`
	Temperature float32 `env:"LLM_TEMPERATURE" validate:"gte=0,lte=2"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY" validate:"required_if=Provider gemini"`
	GeminiModel   string `env:"GEMINI_MODEL"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" validate:"omitempty,url"`

	OpenRouterAPIKey   string `env:"OPENROUTER_API_KEY" validate:"required_if=Provider openrouter"`
	OpenRouterBase     string `env:"OPENROUTER_BASE_URL" validate:"omitempty,url"`
	OpenRouterModel    string `env:"OPENROUTER_MODEL"`
	OpenRouterAppTitle string `env:"OPENROUTER_APP_TITLE"`
	OpenRouterReferer  string `env:"OPENROUTER_REFERER"`

	ExtractTimeout time.Duration `env:"EXTRACT_TIMEOUT" validate:"gt=0"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" validate:"gt=0"`
	FormSessionTTL time.Duration `env:"FORM_SESSION_TTL" validate:"gte=0"`

	// Empty secret leaves the API open.
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	JWTIssuer string `env:"AUTH_JWT_ISSUER"`
}

// Load reads environment variables, optionally from a .env file if present.
// The provider credential is resolved here once; Validate decides whether it is usable.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		Provider:    strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		Temperature: getEnvFloat32("LLM_TEMPERATURE", 0),

		GeminiAPIKey:  firstEnv("GEMINI_API_KEY", "API_KEY", "GOOGLE_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "google/gemini-2.5-flash"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "resumefill"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		ExtractTimeout: getEnvDuration("EXTRACT_TIMEOUT", 90*time.Second),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 15<<20),
		FormSessionTTL: getEnvDuration("FORM_SESSION_TTL", 30*time.Minute),

		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		JWTIssuer: getEnv("AUTH_JWT_ISSUER", "resumefill"),
	}
}

// Validate reports every problem at once. A missing provider key is fatal:
// the service must not start serving extraction requests without it.
func (c Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	err := v.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// AuthEnabled reports whether API routes require a bearer token.
func (c Config) AuthEnabled() bool { return c.JWTSecret != "" }

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat32(key string, def float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
