package factory

import (
	"fmt"

	"github.com/artem13815/experts/pkg/llm"
	"github.com/artem13815/experts/pkg/llm/openai"
	"github.com/artem13815/experts/pkg/llm/openrouter"
)

// New returns the chat model for s.Provider. It satisfies llm.Factory.
func New(s llm.Settings) (llm.ChatModel, error) {
	switch s.Provider {
	case "openai", "":
		c, err := openai.New(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openrouter":
		c, err := openrouter.New(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", s.Provider)
	}
}

var _ llm.Factory = New
