package embedding

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
)

// New builds the embedder selected by cfg.Embedding.Provider.
func New(ctx context.Context, cfg *config.Config) (Embedder, error) {
	switch cfg.Embedding.Provider {
	case config.ProviderOpenAI:
		return NewOpenAI(OpenAIConfig{
			APIKey:  cfg.Secrets.OpenAIKey,
			BaseURL: cfg.Embedding.BaseURL,
			Model:   cfg.Embedding.Model,
		})
	case config.ProviderGemini:
		if len(cfg.Secrets.GeminiKeys) == 0 {
			return nil, fmt.Errorf("gemini embeddings: API key is required")
		}
		return NewGemini(ctx, cfg.Secrets.GeminiKeys[0], cfg.Embedding.Model)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}
