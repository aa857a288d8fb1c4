package checkers

import (
	"context"

	"github.com/artem13815/experts/pkg/llm"
)

// LLMChecker verifies that a chat client can be constructed from the settings.
// It does not call the remote service.
type LLMChecker struct {
	factory  llm.Factory
	settings llm.Settings
}

func NewLLMChecker(factory llm.Factory, settings llm.Settings) *LLMChecker {
	return &LLMChecker{factory: factory, settings: settings}
}

func (c *LLMChecker) Name() string { return "llm" }

func (c *LLMChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.factory(c.settings)
	return err
}
