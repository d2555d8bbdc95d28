package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
)

func TestCompletePostsChatRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var body chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		assert.InDelta(t, 0.3, body.Temperature, 1e-6)
		assert.Equal(t, []chatMessage{{Role: "system", Content: "sys"}, {Role: "user", Content: "hello"}}, body.Messages)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"name\":\"Jo\"}"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL + "/v1/", Model: "test-model"}, nil)
	out, err := c.Complete(context.Background(), llm.ChatRequest{System: "sys", User: "hello", Temperature: 0.3})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Jo"}`, out)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), llm.ChatRequest{User: "hello"})
	assert.Error(t, err)
}

func TestCompleteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL}, nil)
	_, err := c.Complete(context.Background(), llm.ChatRequest{User: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "from-env")
	c := NewClient(Config{}, nil)
	assert.Equal(t, "from-env", c.cfg.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", c.cfg.BaseURL)
	assert.Equal(t, "llama3-8b-8192", c.cfg.Model)
	assert.Positive(t, c.cfg.Timeout)
}
