package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIOptions configures the chat-completions client.
type OpenAIOptions struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type openAICompleter struct {
	hc    *http.Client
	url   string
	key   string
	model string
	temp  float32
	max   int
}

// NewOpenAI builds a Completer for an OpenAI-compatible chat-completions endpoint.
func NewOpenAI(opts OpenAIOptions) (Completer, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: %w: missing api key", ErrInvalidInput)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultOpenAIBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &openAICompleter{
		hc:    &http.Client{Timeout: opts.Timeout},
		url:   strings.TrimRight(opts.BaseURL, "/") + "/chat/completions",
		key:   opts.APIKey,
		model: opts.Model,
		temp:  opts.Temperature,
		max:   opts.MaxTokens,
	}, nil
}

type oaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaRequest struct {
	Model          string            `json:"model"`
	Messages       []oaMessage       `json:"messages"`
	Temperature    float32           `json:"temperature"`
	MaxTokens      int               `json:"max_completion_tokens,omitempty"`
	ResponseFormat *oaResponseFormat `json:"response_format,omitempty"`
}

type oaResponseFormat struct {
	Type       string        `json:"type"`
	JSONSchema *oaJSONSchema `json:"json_schema,omitempty"`
}

type oaJSONSchema struct {
	Name   string  `json:"name"`
	Schema *Schema `json:"schema"`
}

type oaResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openAICompleter) encode(req Request) ([]byte, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages: %w", ErrInvalidInput)
	}
	body := oaRequest{
		Model:       c.model,
		Messages:    make([]oaMessage, 0, len(req.Messages)),
		Temperature: c.temp,
		MaxTokens:   c.max,
	}
	if req.Temperature != nil {
		body.Temperature = *req.Temperature
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = req.MaxTokens
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, oaMessage{Role: m.Role, Content: m.Content})
	}
	if req.Schema != nil {
		name := req.SchemaName
		if name == "" {
			name = "response"
		}
		body.ResponseFormat = &oaResponseFormat{
			Type:       "json_schema",
			JSONSchema: &oaJSONSchema{Name: name, Schema: req.Schema},
		}
	}
	return json.Marshal(&body)
}

func (c *openAICompleter) Complete(ctx context.Context, req Request) (Response, error) {
	body, err := c.encode(req)
	if err != nil {
		return Response{}, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("new request: %w: %w", ErrInvalidInput, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.key)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		var te interface{ Timeout() bool }
		if errors.As(err, &te) && te.Timeout() {
			return Response{}, fmt.Errorf("openai: %w: %w", ErrTimeout, err)
		}
		if ctx.Err() != nil {
			return Response{}, classify(ctx, ctx.Err())
		}
		return Response{}, fmt.Errorf("openai: %w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(slurp))
		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return Response{}, fmt.Errorf("openai %d: %w", resp.StatusCode, ErrRateLimited)
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return Response{}, fmt.Errorf("openai %d: %w", resp.StatusCode, ErrAuth)
		case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode/100 == 5:
			return Response{}, fmt.Errorf("openai upstream %d: %s: %w", resp.StatusCode, msg, ErrTransport)
		default:
			return Response{}, fmt.Errorf("openai upstream %d: %s: %w", resp.StatusCode, msg, ErrInvalidInput)
		}
	}

	var out oaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("decode: %w: %w", ErrResponseInvalid, err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return Response{}, fmt.Errorf("empty choices: %w", ErrResponseInvalid)
	}
	model := out.Model
	if model == "" {
		model = c.model
	}
	return Response{Text: out.Choices[0].Message.Content, Model: model}, nil
}
