package service

import "context"

const mockWarning = "Using mock response."

// MockAIService answers every completion with the request's canned text and
// never touches the network. It is wired in at startup when no model
// credential is configured.
type MockAIService struct{}

func NewMockAIService() *MockAIService {
	return &MockAIService{}
}

func (s *MockAIService) Complete(_ context.Context, req CompletionRequest) (*CompletionResult, error) {
	return &CompletionResult{
		Content: req.MockResponse,
		Warning: mockWarning,
	}, nil
}
