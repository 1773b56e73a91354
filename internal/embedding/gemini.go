package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "text-embedding-004"

type geminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGemini creates an Embedder backed by the Gemini embedContent API.
func NewGemini(ctx context.Context, apiKey, model string) (Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini embeddings: API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &geminiEmbedder{client: client, model: model}, nil
}

func (e *geminiEmbedder) ModelName() string { return e.model }

func (e *geminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatch {
		end := min(start+maxBatch, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, t := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
		}
		resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
			TaskType: "SEMANTIC_SIMILARITY",
		})
		if err != nil {
			return nil, fmt.Errorf("embed content: %w", err)
		}
		if resp == nil || len(resp.Embeddings) != end-start {
			return nil, fmt.Errorf("gemini embeddings: unexpected vector count")
		}
		for _, emb := range resp.Embeddings {
			if emb == nil {
				return nil, fmt.Errorf("gemini embeddings: nil vector")
			}
			out = append(out, emb.Values)
		}
	}
	return out, nil
}
