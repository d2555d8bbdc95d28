package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
)

type Config struct {
	APIKey  string
	Model   string // e.g., "gemini-2.5-flash"
	BaseURL string // optional endpoint override
	Timeout time.Duration
}

// Client calls the Gemini API through the genai SDK.
type Client struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client, model: cfg.Model, log: logger}, nil
}

func (c *Client) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	start := time.Now()
	runID := common.RunIDFromContext(ctx)

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	c.log.Info("llm.complete.start", "run_id", runID, "provider", "gemini", "model", c.model, "temp", req.Temperature)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.User), gc)
	if err != nil {
		c.log.Error("llm.complete.error", "run_id", runID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	content := resp.Text()
	c.log.Info("llm.complete.ok", "run_id", runID, "content_len", len(content), "elapsed_ms", time.Since(start).Milliseconds())
	return content, nil
}
