package service

import (
	"context"
)

// CompletionRequest is one chat-completion call. MockResponse is the canned
// text the mock variant answers with when no model credential is configured;
// live variants ignore it.
type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32
	MaxTokens    int
	MockResponse string
}

// CompletionResult carries the generated text. Warning is set by the mock
// variant so callers can flag that no real model was consulted.
type CompletionResult struct {
	Content string
	Warning string
}

// AIService is implemented by the OpenAI, Gemini and mock variants. The
// variant is selected once at startup from configuration.
type AIService interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}
