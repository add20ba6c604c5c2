package service

import (
	"context"
	"fmt"
)

// Provider failure reasons.
const (
	ReasonNetwork   = "network"
	ReasonTimeout   = "timeout"
	ReasonQuota     = "quota"
	ReasonAPI       = "api"
	ReasonMalformed = "malformed-response"
)

// ProviderError is an upstream model-call failure. It is recovered locally by
// the dialogue service (bounded retry, then a canned fallback) and never
// surfaced to the end user as raw error text.
type ProviderError struct {
	Reason string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("provider error (%s)", e.Reason)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// GenerateRequest names the model to use and the prompt to send.
type GenerateRequest struct {
	Model  string
	Prompt string
}

// Provider is the external language-model boundary: one function-shaped call.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
