package search

import (
	"context"
	"errors"
	"testing"

	"github.com/ppiankov/clearview/internal/llm"
	"github.com/ppiankov/clearview/internal/model"
)

type fakeSearchProvider struct {
	resp    *llm.WebSearchResponse
	err     error
	lastReq llm.WebSearchRequest
}

func (f *fakeSearchProvider) Name() string { return "fake" }

func (f *fakeSearchProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeSearchProvider) WebSearch(ctx context.Context, req llm.WebSearchRequest) (*llm.WebSearchResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeSearchProvider) IsAvailable(ctx context.Context) bool { return true }

func TestSearchPrimaryTier(t *testing.T) {
	p := &fakeSearchProvider{resp: &llm.WebSearchResponse{
		Text:      "Supports the claim. IMF data shows 2.8% growth.",
		CitedURLs: []string{"https://www.imf.org/report"},
	}}
	s := NewSearcher(p, "test-model")

	obs := s.Search(context.Background(), "US GDP grew 2.8%", TierPrimary)
	if !obs.Available {
		t.Fatalf("expected available, got error %q", obs.Error)
	}
	if obs.SourceTier != model.TierPrimarySource {
		t.Errorf("tier = %q", obs.SourceTier)
	}
	if obs.Source != "imf.org" {
		t.Errorf("source = %q", obs.Source)
	}
	if obs.URL != "https://www.imf.org/report" {
		t.Errorf("url = %q", obs.URL)
	}
	if !obs.WebSearch {
		t.Error("WebSearch flag not set")
	}
	if len(p.lastReq.AllowedDomains) != len(Tier2Domains) {
		t.Errorf("allowed domains = %d, want %d", len(p.lastReq.AllowedDomains), len(Tier2Domains))
	}
}

func TestSearchNewsTier(t *testing.T) {
	p := &fakeSearchProvider{resp: &llm.WebSearchResponse{
		Text: "Reuters reported the figure. See https://reuters.com/article/x for detail.",
	}}
	s := NewSearcher(p, "")

	obs := s.Search(context.Background(), "some claim", TierNews)
	if !obs.Available {
		t.Fatalf("expected available, got error %q", obs.Error)
	}
	if obs.SourceTier != model.TierNewsReport {
		t.Errorf("tier = %q", obs.SourceTier)
	}
	// no cited URL block: the URL embedded in the text is picked up
	if obs.URL != "https://reuters.com/article/x" {
		t.Errorf("url = %q", obs.URL)
	}
	if obs.Source != "reuters.com" {
		t.Errorf("source = %q", obs.Source)
	}
}

func TestSearchStripsMarkdown(t *testing.T) {
	p := &fakeSearchProvider{resp: &llm.WebSearchResponse{
		Text: "**Supports** the claim.\n- point one\n* point two",
	}}
	s := NewSearcher(p, "")

	obs := s.Search(context.Background(), "claim", TierPrimary)
	want := "Supports the claim.\npoint one\npoint two"
	if obs.Summary != want {
		t.Errorf("summary = %q, want %q", obs.Summary, want)
	}
}

func TestSearchProviderError(t *testing.T) {
	p := &fakeSearchProvider{err: errors.New("tool unavailable")}
	s := NewSearcher(p, "")

	obs := s.Search(context.Background(), "claim", TierPrimary)
	if obs.Available {
		t.Error("expected unavailable on provider error")
	}
	if obs.Error == "" {
		t.Error("expected error message")
	}
}

func TestSearchEmptyText(t *testing.T) {
	p := &fakeSearchProvider{resp: &llm.WebSearchResponse{Text: ""}}
	s := NewSearcher(p, "")

	obs := s.Search(context.Background(), "claim", TierNews)
	if obs.Available {
		t.Error("expected unavailable on empty narrative")
	}
}

func TestSearchUnsupportedProvider(t *testing.T) {
	p := &fakeSearchProvider{err: llm.ErrSearchUnsupported}
	s := NewSearcher(p, "")

	obs := s.Search(context.Background(), "claim", TierPrimary)
	if obs.Available {
		t.Error("expected unavailable when provider lacks search")
	}
}
