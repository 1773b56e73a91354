package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/brief-flow/internal/config"
	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, req Request) (Response, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// New builds the configured provider wrapped in the shared rate limiter.
// It returns (nil, nil) when the provider has no credentials so callers can
// fall back to rule-based merging.
func New(l logger.Logger, cfg *config.Config) (Completer, error) {
	if !cfg.HasCompletionKey() {
		return nil, nil
	}

	var (
		c   Completer
		err error
	)
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		c, err = NewOpenAI(OpenAIOptions{
			BaseURL:     cfg.LLM.BaseURL,
			APIKey:      cfg.Secrets.OpenAIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.Analysis.MergeTimeout,
		})
	case config.ProviderGemini:
		c, err = NewGemini(l, cfg.Secrets.GeminiKeys, GeminiOptions{
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithRateLimit(c, cfg.LLM.RequestsPerSecond, cfg.LLM.Burst), nil
}
