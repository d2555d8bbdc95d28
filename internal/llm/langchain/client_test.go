package langchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
)

type fakeModel struct {
	messages []llms.MessageContent
	opts     llms.CallOptions
	reply    string
	err      error
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, o := range options {
		o(&m.opts)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func TestCompleteSendsSystemAndHuman(t *testing.T) {
	m := &fakeModel{reply: `[{"task_name":"A"}]`}
	c := NewWithModel(m, "fake", nil)

	out, err := c.Complete(context.Background(), llm.ChatRequest{System: "sys", User: "plan please", Temperature: 0.4})
	require.NoError(t, err)
	assert.Equal(t, `[{"task_name":"A"}]`, out)

	require.Len(t, m.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, m.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, m.messages[1].Role)
	assert.Equal(t, llms.TextContent{Text: "plan please"}, m.messages[1].Parts[0])
	assert.InDelta(t, 0.4, m.opts.Temperature, 1e-6)
}

func TestCompleteError(t *testing.T) {
	c := NewWithModel(&fakeModel{err: errors.New("boom")}, "fake", nil)
	_, err := c.Complete(context.Background(), llm.ChatRequest{User: "x"})
	assert.ErrorContains(t, err, "boom")
}
