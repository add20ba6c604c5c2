package service

import (
	"context"
	"strings"
	"sync"
)

// MockProvider is a deterministic stand-in for the real provider, used when
// no API key is configured and in tests. It recognizes the prompt contracts
// from prompts.go and answers in kind.
type MockProvider struct {
	mu    sync.Mutex
	calls int
}

// NewMockProvider creates a mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var mockOptionCycle = []string{"A", "B", "C", "D"}

// Generate answers based on the prompt's contract markers.
func (p *MockProvider) Generate(_ context.Context, req GenerateRequest) (string, error) {
	p.mu.Lock()
	p.calls++
	n := p.calls
	p.mu.Unlock()

	switch {
	case strings.Contains(req.Prompt, `mapping item ids`):
		return "{}", nil
	case strings.Contains(req.Prompt, `{"option":`):
		return `{"option": "` + mockOptionCycle[n%len(mockOptionCycle)] + `"}`, nil
	case strings.Contains(req.Prompt, "simulating a user"):
		return "I'm doing okay, I guess. Work has been a lot lately.", nil
	case strings.Contains(req.Prompt, "follow-up attempt"):
		return "Could you share a bit more about that? If you'd rather not answer, that's completely okay.", nil
	default:
		return "Thank you for sharing that with me. Could you tell me a bit more about how that part of your life has felt lately?", nil
	}
}
