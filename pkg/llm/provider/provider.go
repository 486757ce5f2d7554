package provider

import (
	"context"
	"fmt"

	"github.com/artem13815/resumefill/pkg/config"
	"github.com/artem13815/resumefill/pkg/llm"
	"github.com/artem13815/resumefill/pkg/llm/gemini"
	"github.com/artem13815/resumefill/pkg/llm/openrouter"
)

// New builds the DocumentModel selected by cfg.Provider. It is called once at
// startup; the returned client is shared read-only afterwards.
func New(ctx context.Context, cfg config.Config) (llm.DocumentModel, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			BaseURL:     cfg.GeminiBaseURL,
			Temperature: cfg.Temperature,
			Timeout:     cfg.ExtractTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenRouter:
		return openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
			cfg.ExtractTimeout,
		), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
