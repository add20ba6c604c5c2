package config

import (
	"os"
	"strconv"
)

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Classify is for per-turn option classification (needs to be fast)
	Classify string `json:"classify"`

	// Reply is for the empathetic reply / next-question generation
	Reply string `json:"reply"`

	// FollowUp is for clarifying rephrases after an unclear answer
	FollowUp string `json:"followUp"`

	// Simulate is for dev-tool simulated user replies
	Simulate string `json:"simulate"`
}

// AIConfig holds all provider-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// Policy holds the dialogue policy knobs. The spec leaves the exact retry and
// default-option bounds open, so they are configuration rather than constants.
type Policy struct {
	// ClarifyBound is how many consecutive unclear turns are allowed on one
	// item before it is defaulted and the session advances.
	ClarifyBound int `json:"clarifyBound"`

	// ProviderRetries is how many times a failed provider call is retried
	// within a single turn.
	ProviderRetries int `json:"providerRetries"`

	// RetryBackoffMS is the pause before a provider retry.
	RetryBackoffMS int `json:"retryBackoffMs"`

	// BatchClassify enables the opportunistic pass that offers the remaining
	// uncovered items to the provider after the target item is handled.
	BatchClassify bool `json:"batchClassify"`

	// TranscriptWindow is how many recent turns are embedded in prompts.
	TranscriptWindow int `json:"transcriptWindow"`
}

// Config is the full service configuration.
type Config struct {
	Port        string `json:"port"`
	CatalogPath string `json:"catalogPath"`
	AI          *AIConfig
	Policy      Policy
}

// DefaultAIConfig returns the default provider configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Classify: getEnvOrDefault("GEMINI_MODEL_CLASSIFY", "gemini-2.5-flash-preview-05-20"),
			Reply:    getEnvOrDefault("GEMINI_MODEL_REPLY", "gemini-2.5-flash-preview-05-20"),
			FollowUp: getEnvOrDefault("GEMINI_MODEL_FOLLOWUP", "gemini-2.5-flash-preview-05-20"),
			Simulate: getEnvOrDefault("GEMINI_MODEL_SIMULATE", "gemini-2.0-flash"),
		},
		TimeoutMS: getIntEnv("GEMINI_TIMEOUT_MS", 10000),
	}
}

// DefaultPolicy returns the dialogue policy defaults.
func DefaultPolicy() Policy {
	return Policy{
		ClarifyBound:     getIntEnv("CLARIFY_BOUND", 3),
		ProviderRetries:  getIntEnv("PROVIDER_RETRIES", 1),
		RetryBackoffMS:   getIntEnv("RETRY_BACKOFF_MS", 500),
		BatchClassify:    getBoolEnv("BATCH_CLASSIFY", true),
		TranscriptWindow: getIntEnv("TRANSCRIPT_WINDOW", 6),
	}
}

// Load builds the full configuration from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		AI:          DefaultAIConfig(),
		Policy:      DefaultPolicy(),
	}
}

// IsEnabled returns true if the provider API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v == "1" || v == "true" || v == "TRUE"
}
