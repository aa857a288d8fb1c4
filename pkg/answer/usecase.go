package answer

import (
	"context"

	"github.com/artem13815/experts/pkg/expert"
	"github.com/artem13815/experts/pkg/llm"
)

// promptSeparator sits between the expert's system prompt and the question.
const promptSeparator = "\n\n"

// UseCase answers a question in the voice of the chosen expert.
type UseCase interface {
	Fetch(ctx context.Context, question, expertLabel string) (string, error)
}

type service struct {
	experts  *expert.Registry
	newModel llm.Factory
	settings llm.Settings
}

// NewService wires the registry and the chat model factory. A client is built
// per call; nothing is shared between submissions.
func NewService(experts *expert.Registry, newModel llm.Factory, settings llm.Settings) UseCase {
	return &service{experts: experts, newModel: newModel, settings: settings}
}

// BuildPrompt joins the system prompt and question as sent to the model.
func BuildPrompt(systemPrompt, question string) string {
	return systemPrompt + promptSeparator + question
}

func (s *service) Fetch(ctx context.Context, question, expertLabel string) (string, error) {
	if IsBlank(question) {
		return "", ErrEmptyQuestion
	}
	prompt := BuildPrompt(s.experts.Lookup(expertLabel), question)

	model, err := s.newModel(s.settings)
	if err != nil {
		return "", &Error{Kind: KindClientUnavailable, Err: err}
	}
	resp, err := model.Invoke(ctx, prompt)
	if err != nil {
		return "", &Error{Kind: KindRequestFailed, Err: err}
	}
	return resp.Answer(), nil
}
