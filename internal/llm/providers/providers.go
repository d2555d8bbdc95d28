package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/gemini"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/langchain"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/openai"
)

// New returns the model invoker selected by cfg.Provider.
func New(ctx context.Context, cfg common.LLMConfig, logger *slog.Logger) (llm.Completer, error) {
	switch cfg.Provider {
	case common.ProviderOpenAI, "":
		return openai.NewClient(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger), nil
	case common.ProviderLangChain:
		return langchain.NewClient(langchain.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger)
	case common.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}, logger)
	default:
		return nil, common.NewAppError("CONFIG_ERROR", fmt.Sprintf("unknown provider %q", cfg.Provider), common.ErrInvalidInput)
	}
}
