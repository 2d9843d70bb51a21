package domain

import "context"

// LLMClient issues a single chat-completion request. Model and temperature
// are fixed by the implementation; callers only control the prompts and the
// token budget. No retries.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}
