package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/experts/pkg/llm"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(llm.Settings{
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		Temperature: 0.5,
		APIKey:      "sk-test",
		BaseURL:     srv.URL + "/v1",
	})
	require.NoError(t, err)
	return c
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(llm.Settings{Model: "gpt-4o-mini"})
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	_, err = New(llm.Settings{APIKey: "sk"})
	assert.ErrorContains(t, err, "model")
}

func TestInvokeReturnsContent(t *testing.T) {
	var got capturedRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "X"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
		}`))
	})

	resp, err := c.Invoke(context.Background(), "sys\n\nq")
	require.NoError(t, err)
	assert.Equal(t, llm.KindContent, resp.Kind)
	assert.Equal(t, "X", resp.Answer())

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.5, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "sys\n\nq", got.Messages[0].Content)
}

func TestInvokeNoChoicesIsUnknown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","model":"gpt-4o-mini","choices":[]}`))
	})
	resp, err := c.Invoke(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, llm.KindUnknown, resp.Kind)
	assert.Contains(t, resp.Answer(), "chatcmpl-2")
}

func TestInvokeAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})
	_, err := c.Invoke(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestInvokeSendsZeroTemperature(t *testing.T) {
	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-3","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)
	c, err := New(llm.Settings{Model: "gpt-4o-mini", APIKey: "sk-test", BaseURL: srv.URL + "/v1", Temperature: 0})
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), "p")
	require.NoError(t, err)
	require.Contains(t, got, "temperature")
	var temp float64
	require.NoError(t, json.Unmarshal(got["temperature"], &temp))
	assert.InDelta(t, 0, temp, 1e-9)
}
