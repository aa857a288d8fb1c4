package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_MODE", "LLM_MODEL", "LLM_TEMPERATURE", "LLM_TIMEOUT",
		"OPENAI_API_KEY", "OPENAI_BASE_URL",
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "OPENROUTER_APP_TITLE", "OPENROUTER_REFERER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, "openai:gpt-4o-mini", cfg.LLMModel)
	assert.InDelta(t, 0.5, cfg.LLMTemperature, 1e-6)
	assert.Zero(t, cfg.LLMTimeout)

	s := cfg.LLMSettings()
	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "gpt-4o-mini", s.Model)
	assert.Empty(t, s.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:11434/v1")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.InDelta(t, 0.2, cfg.LLMTemperature, 1e-6)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)

	s := cfg.LLMSettings()
	assert.Equal(t, "sk-test", s.APIKey)
	assert.Equal(t, "http://localhost:11434/v1", s.BaseURL)
	assert.Equal(t, 45*time.Second, s.Timeout)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_TEMPERATURE", "warm")
	t.Setenv("LLM_TIMEOUT", "-5s")

	cfg := Load()
	assert.InDelta(t, 0.5, cfg.LLMTemperature, 1e-6)
	assert.Zero(t, cfg.LLMTimeout)
}

func TestLLMSettingsOpenRouter(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_MODEL", "openrouter:qwen/qwen2.5-32b-instruct")
	t.Setenv("OPENAI_API_KEY", "sk-unused")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("OPENROUTER_REFERER", "http://localhost:8080")

	s := Load().LLMSettings()
	assert.Equal(t, "openrouter", s.Provider)
	assert.Equal(t, "qwen/qwen2.5-32b-instruct", s.Model)
	assert.Equal(t, "or-key", s.APIKey)
	assert.Equal(t, "experts", s.AppTitle)
	assert.Equal(t, "http://localhost:8080", s.Referer)
}
