package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"prism-backend/internal/shared/telemetry"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel = "gemini-2.5-flash-lite"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	Env                string
	LLMProvider        string
	LLMModel           string
	LLMTimeout         time.Duration
	GeminiAPIKey       string
	OpenAIAPIKey       string
	MaxResumeChars     int
	SessionTTL         time.Duration
	GenerateRatePerMin float64
	GenerateBurst      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	provider := normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini))

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:8080")),
		Env:                env,
		LLMProvider:        provider,
		LLMModel:           getEnv("LLM_MODEL", defaultModel(provider)),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", os.Getenv("gemini")),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		MaxResumeChars:     getEnvInt("PRISM_MAX_RESUME_CHARS", 5000),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		GenerateRatePerMin: float64(getEnvInt("GENERATE_RATE_PER_MINUTE", 6)),
		GenerateBurst:      getEnvInt("GENERATE_BURST", 3),
	}

	if cfg.APIKey() == "" {
		telemetry.Info("config.api_key_missing", map[string]any{
			"provider": provider,
			"env_var":  cfg.APIKeyEnv(),
		})
	}
	return cfg
}

// APIKey returns the credential for the configured provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return strings.TrimSpace(c.OpenAIAPIKey)
	}
	return strings.TrimSpace(c.GeminiAPIKey)
}

// APIKeyEnv names the variable an operator should set for the configured provider.
func (c Config) APIKeyEnv() string {
	if c.LLMProvider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		telemetry.Error("config.invalid_value", map[string]any{
			"key":     key,
			"value":   raw,
			"default": def,
		})
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}
