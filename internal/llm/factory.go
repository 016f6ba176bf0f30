package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates an LLM provider based on the configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "anthropic", "claude", "":
		return NewAnthropicProvider(config)
	case "openai":
		return NewOpenAIProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: anthropic, openai, ollama)", config.Provider)
	}
}
