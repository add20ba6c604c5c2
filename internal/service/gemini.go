package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"avika/internal/config"
)

// GeminiProvider calls the Gemini generateContent API.
type GeminiProvider struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeminiProvider creates a provider backed by the Gemini API.
func NewGeminiProvider(cfg *config.AIConfig) *GeminiProvider {
	return &GeminiProvider{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate sends the prompt and returns the first candidate's text.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": req.Prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ProviderError{Reason: ReasonMalformed, Err: err}
	}

	url := fmt.Sprintf("%s?key=%s", p.config.ModelEndpoint(req.Model), p.config.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &ProviderError{Reason: ReasonNetwork, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", &ProviderError{Reason: ReasonTimeout, Err: err}
		}
		return "", &ProviderError{Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Reason: ReasonNetwork, Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &ProviderError{Reason: ReasonQuota, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode >= 400 {
		return "", &ProviderError{Reason: ReasonAPI, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &ProviderError{Reason: ReasonMalformed, Err: err}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Reason: ReasonMalformed, Err: errors.New("empty response")}
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
