package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/artem13815/experts/pkg/llm"
)

type Config struct {
	Port    string
	LogMode string

	LLMModel       string
	LLMTemperature float32
	LLMTimeout     time.Duration

	OpenAIAPIKey  string
	OpenAIBaseURL string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		LogMode:            getEnv("LOG_MODE", "dev"),
		LLMModel:           getEnv("LLM_MODEL", "openai:gpt-4o-mini"),
		LLMTemperature:     getEnvFloat("LLM_TEMPERATURE", 0.5),
		LLMTimeout:         getEnvDuration("LLM_TIMEOUT", 0),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "experts"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
	return cfg
}

// LLMSettings resolves the provider from LLMModel and picks its credential.
func (c Config) LLMSettings() llm.Settings {
	provider, model := llm.ParseModel(c.LLMModel)
	s := llm.Settings{
		Provider:    provider,
		Model:       model,
		Temperature: c.LLMTemperature,
		Timeout:     c.LLMTimeout,
	}
	switch provider {
	case "openrouter":
		s.APIKey = c.OpenRouterAPIKey
		s.BaseURL = c.OpenRouterBase
		s.AppTitle = c.OpenRouterAppTitle
		s.Referer = c.OpenRouterReferer
	default:
		s.APIKey = c.OpenAIAPIKey
		s.BaseURL = c.OpenAIBaseURL
	}
	return s
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}
