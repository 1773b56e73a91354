package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
	"google.golang.org/genai"
)

// GeminiOptions configures the Gemini completer.
type GeminiOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

type geminiCompleter struct {
	l    logger.Logger
	opts GeminiOptions

	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	clients    map[string]*genai.Client
}

// NewGemini builds a Completer that rotates across apiKeys when a key hits its quota.
func NewGemini(l logger.Logger, apiKeys []string, opts GeminiOptions) (Completer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("gemini: %w: no api keys", ErrInvalidInput)
	}
	return &geminiCompleter{
		l:       l,
		opts:    opts,
		apiKeys: apiKeys,
		clients: make(map[string]*genai.Client, len(apiKeys)),
	}, nil
}

func (g *geminiCompleter) Complete(ctx context.Context, req Request) (Response, error) {
	contents, cfg, err := g.build(req)
	if err != nil {
		return Response{}, err
	}

	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		idx, client, err := g.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.opts.Model, contents, cfg)
		if err != nil {
			if isQuotaError(err) {
				g.l.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return Response{}, fmt.Errorf("generate content: %w", classify(ctx, err))
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				return Response{Text: text.String(), Model: g.opts.Model}, nil
			}
		}
		return Response{}, fmt.Errorf("empty response from Gemini: %w", ErrResponseInvalid)
	}

	return Response{}, fmt.Errorf("all API keys exhausted: %w: %w", ErrRateLimited, lastErr)
}

func (g *geminiCompleter) build(req Request) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.opts.Temperature),
		MaxOutputTokens: int32(g.opts.MaxTokens),
	}
	if req.Temperature != nil {
		cfg.Temperature = genai.Ptr(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema.toGenai()
	}

	var system []string
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(contents) == 0 {
		return nil, nil, fmt.Errorf("no user messages: %w", ErrInvalidInput)
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	return contents, cfg, nil
}

// client returns the client for the current key, creating it on first use.
func (g *geminiCompleter) client(ctx context.Context) (int, *genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.currentKey
	key := g.apiKeys[idx]
	if c, ok := g.clients[key]; ok {
		return idx, c, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return idx, nil, err
	}
	g.clients[key] = c
	return idx, c, nil
}

// rotateKey advances past idx unless another worker already rotated.
func (g *geminiCompleter) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}
