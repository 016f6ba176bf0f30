// Package search escalates failed structured-data lookups to an LLM
// web search restricted to trusted domains.
package search

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ppiankov/clearview/internal/llm"
	"github.com/ppiankov/clearview/internal/model"
)

// Tier selects the domain allow-list for a search pass.
type Tier int

const (
	// TierPrimary searches official and institutional sources.
	TierPrimary Tier = 2
	// TierNews searches reputable news and analysis outlets.
	TierNews Tier = 3
)

// Trusted source lists by tier. Tier 1 is the structured-data domains the
// connectors already cover; it is kept for citation display, not searched.
var (
	Tier1Domains = []string{
		"fred.stlouisfed.org", "worldbank.org", "data.worldbank.org",
		"ec.europa.eu/eurostat", "eia.gov", "iea.org",
		"federalreserve.gov", "ecb.europa.eu", "bis.org",
		"imf.org", "oecd.org", "un.org", "wto.org", "opec.org",
	}

	Tier2Domains = []string{
		"imf.org", "iea.org", "wto.org", "un.org", "trade.gov",
		"ustr.gov", "treasury.gov", "bis.org", "ecb.europa.eu",
		"bea.gov", "bls.gov", "census.gov", "europarl.europa.eu",
		"consilium.europa.eu", "energy.gov", "state.gov",
	}

	Tier3Domains = []string{
		"reuters.com", "ft.com", "apnews.com", "economist.com",
		"bbc.com", "bloomberg.com", "wsj.com", "nytimes.com",
		"theguardian.com", "foreignaffairs.com", "cfr.org",
		"brookings.edu", "chathamhouse.org", "piie.com",
	}
)

var urlPattern = regexp.MustCompile(`https?://[^\s)\]'"]+`)

// Searcher runs tiered web searches through an LLM provider's search tool.
type Searcher struct {
	provider llm.Provider
	model    string
}

// NewSearcher creates a searcher. The model should be a cheap one; search
// narratives are short.
func NewSearcher(provider llm.Provider, modelName string) *Searcher {
	return &Searcher{provider: provider, model: modelName}
}

// Search looks for evidence about a claim on the tier's domains. The
// returned observation carries the narrative in Summary; numeric fields
// stay empty. Any provider failure yields available=false.
func (s *Searcher) Search(ctx context.Context, claimText string, tier Tier) model.Observation {
	domains := Tier2Domains
	sourceType := "Primary Source"
	tierLabel := model.TierPrimarySource
	if tier == TierNews {
		domains = Tier3Domains
		sourceType = "News/Analysis"
		tierLabel = model.TierNewsReport
	}

	prompt := fmt.Sprintf(`Search for evidence to validate or refute this specific claim from a news article:

CLAIM: %s

Search only trusted sources. Look for:
1. Official statistics or reports that directly address this claim
2. Recent data (2022-2026) that confirms or contradicts the specific figures or facts stated
3. The most authoritative source available

Provide a 2-3 sentence assessment: what did you find, does it support or contradict the claim, and cite the specific source.`, claimText)

	resp, err := s.provider.WebSearch(ctx, llm.WebSearchRequest{
		Prompt:         prompt,
		AllowedDomains: domains,
		Model:          s.model,
		MaxTokens:      300,
	})
	if err != nil {
		return model.Unavailable(fmt.Sprintf("web search failed: %v", err))
	}

	text := stripMarkdown(resp.Text)
	if text == "" {
		return model.Unavailable("No search results")
	}

	sourceURL := ""
	if len(resp.CitedURLs) > 0 {
		sourceURL = resp.CitedURLs[0]
	} else if m := urlPattern.FindString(text); m != "" {
		sourceURL = m
	}

	sourceName := sourceType
	if sourceURL != "" {
		if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
			sourceName = strings.TrimPrefix(u.Host, "www.")
		}
	}

	return model.Observation{
		Available:   true,
		Source:      sourceName,
		SourceTier:  tierLabel,
		SeriesLabel: "Web search — " + sourceType,
		Summary:     text,
		URL:         sourceURL,
		WebSearch:   true,
	}
}

// stripMarkdown removes bold and bullet markers the model sometimes adds
// despite the no-markdown instruction.
func stripMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			lines[i] = strings.TrimSpace(trimmed[2:])
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
