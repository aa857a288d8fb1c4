package llm

import (
	"context"
	"strings"
	"time"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	// Invoke sends the whole prompt as a single user message.
	Invoke(ctx context.Context, prompt string) (Response, error)
}

// Factory builds a ChatModel. Construction errors mean the client is unusable
// (unknown provider, missing credential) and are reported separately from call errors.
type Factory func(s Settings) (ChatModel, error)

// DefaultProvider is used when a model identifier carries no "provider:" prefix.
const DefaultProvider = "openai"

// Settings is the immutable client configuration fixed at startup.
type Settings struct {
	Provider    string
	Model       string
	Temperature float32
	APIKey      string
	BaseURL     string
	AppTitle    string
	Referer     string
	// Zero means no client-side timeout.
	Timeout     time.Duration
}

// ParseModel splits "provider:model". A bare model name belongs to DefaultProvider.
func ParseModel(id string) (provider, model string) {
	id = strings.TrimSpace(id)
	if p, m, ok := strings.Cut(id, ":"); ok {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			p = DefaultProvider
		}
		return p, strings.TrimSpace(m)
	}
	return DefaultProvider, id
}
