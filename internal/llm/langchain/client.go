package langchain

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
)

// Config for a langchaingo-backed model. The OpenAI driver is used, so any
// OpenAI-compatible endpoint works through BaseURL.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client adapts an llms.Model to llm.Completer.
type Client struct {
	model     llms.Model
	modelName string
	log       *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, lcopenai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	m, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("langchain openai: %w", err)
	}
	return NewWithModel(m, cfg.Model, logger), nil
}

// NewWithModel wraps an existing model.
func NewWithModel(m llms.Model, modelName string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{model: m, modelName: modelName, log: logger}
}

func (c *Client) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	start := time.Now()
	runID := common.RunIDFromContext(ctx)

	var messages []llms.MessageContent
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.User))

	c.log.Info("llm.complete.start", "run_id", runID, "provider", "langchain", "model", c.modelName, "temp", req.Temperature)

	resp, err := c.model.GenerateContent(ctx, messages, llms.WithTemperature(float64(req.Temperature)))
	if err != nil {
		c.log.Error("llm.complete.error", "run_id", runID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in model response")
	}

	content := resp.Choices[0].Content
	c.log.Info("llm.complete.ok", "run_id", runID, "content_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}
