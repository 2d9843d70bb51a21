// Package llm provides the gateway to the Groq chat-completion API.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"learnsphere/internal/config"
	"learnsphere/internal/domain"
	"learnsphere/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// temperature is policy, not a parameter. Callers cannot override it.
const temperature = 0.7

// GroqClient implements domain.LLMClient against Groq's OpenAI-compatible
// chat-completions endpoint.
type GroqClient struct {
	llm     llms.Model
	model   string
	timeout time.Duration
}

// NewGroqClient creates the client. The API key, base URL, and model id come
// from configuration; absence of the key surfaces as upstream auth failures
// at call time.
func NewGroqClient(cfg config.GroqConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("groq model name cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq LLM client: %w", err)
	}

	logger.Get().Info("Initialized Groq LLM client",
		zap.String("model", cfg.Model),
		zap.String("base_url", cfg.BaseURL))

	return &GroqClient{
		llm:     model,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Complete issues a single chat-completion request. No retries; any failure
// is wrapped as an LLM service error for the caller to degrade on.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		logger.Get().Error("Groq completion failed",
			zap.Error(err),
			zap.String("model", c.model))
		return "", domain.NewLLMServiceError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewLLMServiceError(fmt.Errorf("empty choices in completion response"))
	}

	return resp.Choices[0].Content, nil
}

var _ domain.LLMClient = (*GroqClient)(nil)
