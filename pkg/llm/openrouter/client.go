package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/artem13815/experts/pkg/llm"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	AppTitle    string
	Referer     string
	httpDo      *http.Client
}

// New builds a client from settings. It fails when the credential or model is missing.
func New(s llm.Settings) (*Client, error) {
	if strings.TrimSpace(s.APIKey) == "" {
		return nil, errors.New("openrouter api key is empty")
	}
	if strings.TrimSpace(s.Model) == "" {
		return nil, errors.New("openrouter model is empty")
	}
	baseURL := strings.TrimRight(s.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		APIKey:      s.APIKey,
		BaseURL:     baseURL,
		Model:       s.Model,
		Temperature: s.Temperature,
		AppTitle:    s.AppTitle,
		Referer:     s.Referer,
		httpDo:      &http.Client{Timeout: s.Timeout},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type chatChoice struct {
	Index   int      `json:"index"`
	Message *message `json:"message"`
}

// Invoke sends the prompt as one user message and classifies the reply body.
func (c *Client) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	reqBody := chatCompletionsRequest{
		Model:       c.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.Temperature,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Response{}, err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return llm.Response{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return llm.Response{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return llm.Response{}, fmt.Errorf("openrouter http %d: %v", resp.StatusCode, errMap)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.Response{}, fmt.Errorf("read openrouter response: %w", err)
	}
	return classify(body), nil
}

// classify checks a string content field first, then a choices array; any
// other JSON object is Unknown.
func classify(body []byte) llm.Response {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return llm.PlainText(string(body))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// valid JSON but not an object (array, bare string, number)
		var s string
		if json.Unmarshal(trimmed, &s) == nil {
			return llm.PlainText(s)
		}
		return llm.Unknown(string(trimmed))
	}
	if raw, ok := fields["content"]; ok && string(raw) != "null" {
		var content string
		if json.Unmarshal(raw, &content) == nil {
			return llm.ContentOf(content, string(trimmed))
		}
	}
	if raw, ok := fields["choices"]; ok {
		var choices []chatChoice
		if json.Unmarshal(raw, &choices) == nil && choices != nil {
			gens := make([]llm.Generation, 0, len(choices))
			for _, ch := range choices {
				g := llm.Generation{}
				if ch.Message != nil {
					g.Message = &llm.Message{Role: ch.Message.Role, Content: ch.Message.Content}
				}
				gens = append(gens, g)
			}
			return llm.GenerationsOf(gens, string(trimmed))
		}
	}
	return llm.Unknown(string(trimmed))
}
