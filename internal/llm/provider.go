// Package llm holds the external language-model collaborators: the claim
// extraction engine, the verdict synthesizer, and the restricted web-search
// capability. Providers are treated as untrusted — their output is parsed
// defensively and routing never takes their suggestions as commands.
package llm

import (
	"context"
	"errors"
)

// ErrSearchUnsupported is returned by providers without a web-search tool
var ErrSearchUnsupported = errors.New("provider does not support web search")

// Provider defines the interface every LLM backend implements
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete runs one prompt and returns the raw text response
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// WebSearch runs a completion with a domain-restricted web-search tool.
	// Providers without tool support return ErrSearchUnsupported.
	WebSearch(ctx context.Context, req WebSearchRequest) (*WebSearchResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is one plain prompt completion
type CompletionRequest struct {
	System    string
	Prompt    string
	Model     string // Overrides the configured model when set
	MaxTokens int
}

// CompletionResponse carries the raw model output
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// WebSearchRequest is a completion with search restricted to an allow-list
type WebSearchRequest struct {
	Prompt         string
	AllowedDomains []string
	Model          string
	MaxTokens      int
}

// WebSearchResponse carries the narrative text and cited URLs the search
// tool produced, in citation order.
type WebSearchResponse struct {
	Text      string
	CitedURLs []string
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model is the default model for analysis completions
	Model string

	// SynthModel is the cheaper model used for verdict synthesis and search
	SynthModel string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   60,
		MaxTokens: 4096,
	}
}
