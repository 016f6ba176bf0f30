package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("anthropic-version header missing")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.System != "be terse" {
			t.Errorf("system = %q", req.System)
		}
		if len(req.Tools) != 0 {
			t.Errorf("plain completion should not carry tools, got %+v", req.Tools)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [{"type": "text", "text": "hello"}],
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}

	resp, err := p.Complete(context.Background(), CompletionRequest{
		System: "be terse",
		Prompt: "say hello",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.TokensUsed != 15 {
		t.Errorf("tokens = %d", resp.TokensUsed)
	}
}

func TestAnthropicCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	p, _ := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestAnthropicWebSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Tools) != 1 || req.Tools[0].Type != webSearchToolType {
			t.Fatalf("tools = %+v", req.Tools)
		}
		if len(req.Tools[0].AllowedDomains) != 2 {
			t.Errorf("allowed domains = %v", req.Tools[0].AllowedDomains)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_2", "type": "message", "role": "assistant",
			"model": "claude-haiku-4-5-20251001",
			"content": [
				{"type": "web_search_tool_result", "content": [
					{"type": "web_search_result", "url": "https://www.imf.org/page", "title": "IMF report"}
				]},
				{"type": "text", "text": "Supports the claim per IMF data."}
			],
			"usage": {"input_tokens": 50, "output_tokens": 30}
		}`))
	}))
	defer server.Close()

	p, _ := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	resp, err := p.WebSearch(context.Background(), WebSearchRequest{
		Prompt:         "check this claim",
		AllowedDomains: []string{"imf.org", "oecd.org"},
	})
	if err != nil {
		t.Fatalf("WebSearch: %v", err)
	}
	if resp.Text != "Supports the claim per IMF data." {
		t.Errorf("text = %q", resp.Text)
	}
	if len(resp.CitedURLs) != 1 || resp.CitedURLs[0] != "https://www.imf.org/page" {
		t.Errorf("cited urls = %v", resp.CitedURLs)
	}
}

func TestNewAnthropicProviderRequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(Config{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestNewProviderFactory(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"anthropic", "anthropic", false},
		{"claude", "anthropic", false},
		{"", "anthropic", false},
		{"openai", "openai", false},
		{"ollama", "ollama", false},
		{"gemini", "", true},
	}
	for _, tt := range tests {
		t.Run("provider_"+tt.provider, func(t *testing.T) {
			p, err := NewProvider(Config{Provider: tt.provider, APIKey: "k"})
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("name = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}
