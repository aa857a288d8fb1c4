package openai

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/experts/pkg/llm"
)

// Client adapts go-openai chat completions to llm.ChatModel.
type Client struct {
	api         *goopenai.Client
	Model       string
	Temperature float32
}

// New builds a client from settings. It fails when the credential or model is missing.
func New(s llm.Settings) (*Client, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if strings.TrimSpace(s.Model) == "" {
		return nil, errors.New("openai model is empty")
	}
	cfg := goopenai.DefaultConfig(s.APIKey)
	if s.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(s.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: s.Timeout}
	return &Client{
		api:         goopenai.NewClientWithConfig(cfg),
		Model:       s.Model,
		Temperature: s.Temperature,
	}, nil
}

func (c *Client) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: requestTemperature(c.Temperature),
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return llm.Response{}, err
	}
	if len(resp.Choices) == 0 {
		return llm.Unknown(resp), nil
	}
	return llm.ContentOf(resp.Choices[0].Message.Content, resp.Choices[0].Message), nil
}

// requestTemperature keeps an explicit 0 on the wire; go-openai omits a zero
// temperature, so it is sent as the smallest non-zero float32 instead.
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
