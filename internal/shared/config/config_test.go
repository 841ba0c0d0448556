package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prism-backend/internal/shared/telemetry"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LLM_PROVIDER", "LLM_MODEL", "GEMINI_API_KEY", "gemini", "PRISM_MAX_RESUME_CHARS", "SESSION_TTL_MINUTES"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %s", cfg.Env)
	}
	if cfg.LLMProvider != ProviderGemini {
		t.Fatalf("expected gemini provider, got %s", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gemini-2.5-flash-lite" {
		t.Fatalf("unexpected model: %s", cfg.LLMModel)
	}
	if cfg.MaxResumeChars != 5000 {
		t.Fatalf("expected 5000 resume chars, got %d", cfg.MaxResumeChars)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected 1h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.APIKey() != "" {
		t.Fatalf("expected empty api key")
	}
}

func TestLoadLegacyGeminiVariable(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("gemini", "legacy-key")
	t.Setenv("LLM_PROVIDER", "")
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.APIKey() != "legacy-key" {
		t.Fatalf("expected legacy key, got %q", cfg.APIKey())
	}
}

func TestLoadOpenAIProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.LLMProvider != ProviderOpenAI {
		t.Fatalf("expected openai provider, got %s", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", cfg.LLMModel)
	}
	if cfg.APIKey() != "sk-test" {
		t.Fatalf("unexpected key: %s", cfg.APIKey())
	}
	if cfg.APIKeyEnv() != "OPENAI_API_KEY" {
		t.Fatalf("unexpected key env: %s", cfg.APIKeyEnv())
	}
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9999\nGEMINI_API_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "")
	os.Unsetenv("GEMINI_API_KEY")

	cfg := Load()
	if cfg.Port != "7000" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.GeminiAPIKey != "from-file" {
		t.Fatalf("expected key from file, got %q", cfg.GeminiAPIKey)
	}
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("PRISM_TEST_INT", "abc")
	if got := getEnvInt("PRISM_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
	t.Setenv("PRISM_TEST_INT", "-3")
	if got := getEnvInt("PRISM_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default for negative, got %d", got)
	}
	t.Setenv("PRISM_TEST_INT", "12")
	if got := getEnvInt("PRISM_TEST_INT", 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestGetEnvIntLogsThroughTelemetry(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	t.Setenv("PRISM_TEST_INT", "abc")
	getEnvInt("PRISM_TEST_INT", 7)

	line := strings.TrimSpace(buf.String())
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", line, err)
	}
	if payload["msg"] != "config.invalid_value" || payload["level"] != "error" {
		t.Fatalf("unexpected log line: %v", payload)
	}
	if payload["key"] != "PRISM_TEST_INT" || payload["value"] != "abc" {
		t.Fatalf("unexpected fields: %v", payload)
	}
}
