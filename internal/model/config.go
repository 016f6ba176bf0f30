package model

import "time"

// Config holds the complete ClearView configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Keys        KeysConfig        `yaml:"keys"`
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Server      ServerConfig      `yaml:"server"`
}

// HTTPConfig controls outbound requests to statistics providers
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`        // Per-call deadline for external APIs
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"` // Cap on fetched article bodies
	RatePerHost  float64       `yaml:"rate_per_host"`  // Requests/second per provider host
	RateBurst    int           `yaml:"rate_burst"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty"`
}

// CacheConfig controls the in-memory analysis result cache
type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

// KeysConfig holds API keys for statistics providers
type KeysConfig struct {
	FRED string `yaml:"fred,omitempty"`
	EIA  string `yaml:"eia,omitempty"`
}

// LLMConfig configures the analysis and synthesis collaborators
type LLMConfig struct {
	Provider   string `yaml:"provider"` // openai, anthropic, ollama
	Model      string `yaml:"model"`    // Model for claim extraction
	SynthModel string `yaml:"synth_model,omitempty"` // Cheaper model for verdict synthesis
	APIKey     string `yaml:"api_key,omitempty"`
	BaseURL    string `yaml:"base_url,omitempty"`
	Timeout    int    `yaml:"timeout"` // seconds
	MaxTokens  int    `yaml:"max_tokens"`
}

// SearchConfig controls the restricted web-search fallback
type SearchConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxDomains int  `yaml:"max_domains"` // Domains passed per search call
}

// ConcurrencyConfig bounds the validation fan-out
type ConcurrencyConfig struct {
	ValidationWorkers int `yaml:"validation_workers"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	AllowedOrigins string `yaml:"allowed_origins"`
	MinArticleLen  int    `yaml:"min_article_len"`
	MaxArticleLen  int    `yaml:"max_article_len"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      10 * time.Second,
			UserAgent:    "ClearView/1.0 (+https://github.com/ppiankov/clearview)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  5,
			RateBurst:    5,
		},
		Cache: CacheConfig{
			TTL:        24 * time.Hour,
			MaxEntries: 200,
		},
		LLM: LLMConfig{
			Provider:  "anthropic",
			Timeout:   60,
			MaxTokens: 4096,
		},
		Search: SearchConfig{
			Enabled:    true,
			MaxDomains: 8,
		},
		Concurrency: ConcurrencyConfig{
			ValidationWorkers: 8,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: "*",
			MinArticleLen:  200,
			MaxArticleLen:  15000,
		},
	}
}
