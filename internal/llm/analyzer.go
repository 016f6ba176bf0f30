package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/clearview/internal/model"
)

// ErrMalformedAnalysis indicates the model returned output that could not
// be decoded as an analysis. The server maps this to a retryable error.
var ErrMalformedAnalysis = errors.New("analysis returned malformed output")

const analysisSystem = "You are ClearView's analysis engine. Expert in critical thinking and argument analysis. Always respond with valid JSON only. Never use markdown code fences."

// maxArticleChars bounds the article text placed into the prompt so the
// request stays within context limits.
const maxArticleChars = 12000

// Analyzer turns raw article text into a structured epistemic analysis
// using an LLM provider.
type Analyzer struct {
	provider Provider
	model    string
}

// NewAnalyzer creates an analyzer on top of the given provider.
func NewAnalyzer(provider Provider, modelName string) *Analyzer {
	return &Analyzer{provider: provider, model: modelName}
}

// Analyze runs the epistemic analysis prompt and decodes the result.
// Returns ErrMalformedAnalysis (wrapped) when the model output cannot be
// parsed as JSON.
func (a *Analyzer) Analyze(ctx context.Context, articleText, headline, source string) (*model.Analysis, error) {
	if headline == "" {
		headline = "(none)"
	}
	if source == "" {
		source = "(unknown)"
	}
	if len(articleText) > maxArticleChars {
		articleText = articleText[:maxArticleChars]
	}

	prompt := buildAnalysisPrompt(headline, source, articleText)

	resp, err := a.provider.Complete(ctx, CompletionRequest{
		System:    analysisSystem,
		Prompt:    prompt,
		Model:     a.model,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	cleaned := StripCodeFences(resp.Text)

	var analysis model.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if analysis.Thesis == "" && len(analysis.Claims) == 0 {
		return nil, fmt.Errorf("%w: empty analysis", ErrMalformedAnalysis)
	}

	return &analysis, nil
}

// StripCodeFences removes a surrounding markdown code fence, with or
// without a json language tag. Models add them despite instructions.
func StripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		parts := strings.SplitN(cleaned, "```", 3)
		if len(parts) >= 2 {
			cleaned = parts[1]
		}
		cleaned = strings.TrimPrefix(cleaned, "json")
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func buildAnalysisPrompt(headline, source, articleText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Analyse this news article and return ONLY valid JSON — no markdown, no prose.

HEADLINE: %s
SOURCE: %s
TEXT: %s

Return this exact JSON schema:
`, headline, source, articleText)
	b.WriteString(analysisSchema)
	b.WriteString(analysisRules)
	return b.String()
}

const analysisSchema = `{
  "thesis": "Central conclusion in one sentence",
  "claims": [
    {
      "id": "C1",
      "text": "claim text",
      "type": "explicit_fact|implicit_assumption|normative|hedged",
      "is_checkable": true,
      "domain": "economics|geopolitics|energy|other"
    }
  ],
  "argument_map": {
    "conclusion": "thesis restatement",
    "nodes": [{"id":"C1","label":"short label","type":"premise|conclusion|assumption"}],
    "edges": [{"from":"C1","to":"C2","relation":"supports|contradicts|assumes"}]
  },
  "implicit_assumptions": [
    {"id":"A1","text":"assumption","underlies_claim":"C1","explanation":"why this matters"}
  ],
  "logical_flags": [
    {"type":"inferential_gap|correlation_causation|other","description":"plain english description","location":"which claim"}
  ],
  "validation_queries": [
    {
      "claim_id": "C1",
      "claim_text": "exact claim text",
      "domain": "economics|geopolitics|energy|other",
      "query_description": "what data would validate this",
      "suggested_source": "fred|worldbank|worldbank_commodity|eurostat|eia|uncomtrade|rest_countries",
      "suggested_parameters": {
        "description": "specific data needed — name the country, indicator, or commodity explicitly"
      }
    }
  ],
  "summary": {
    "total_claims": 0,
    "explicit_facts": 0,
    "implicit_assumptions": 0,
    "normative_claims": 0,
    "hedged_claims": 0,
    "checkable_claims": 0,
    "logical_flags_count": 0
  }
}
`

const analysisRules = `
RULES:
- Extract 5-12 claims. Identify 2-5 implicit assumptions. Be politically neutral.
- Only generate validation_queries for claims where is_checkable is true.
- For oil price, crude oil, energy commodity, Urals, Brent, WTI claims: ALWAYS use suggested_source = "worldbank_commodity"
- For US economic data (GDP, unemployment, inflation, interest rates, trade, Fed): ALWAYS use suggested_source = "fred"
- For country-level economic data (GDP, trade, energy imports, oil rents for any specific country): ALWAYS use suggested_source = "worldbank"
- For claims about a country importing energy (e.g. India importing Russian oil): use suggested_source = "worldbank" with description = "energy imports percentage for [country]"
- For claims about specific statistics (percentages, dollar amounts, growth rates): ALWAYS generate a validation_query even if the source is indirect
- In suggested_parameters.description: be specific — name the exact country, commodity, or indicator needed.
- For EU/European energy claims (Russian gas dependency, EU gas supply, electricity prices, German manufacturing, EU energy imports): ALWAYS use suggested_source = "eurostat"
- For US LNG export claims or US bilateral energy trade: use suggested_source = "eia"
- IMPORTANT: if the claim mentions EU, European, Germany, German, France, Norway, or any European country in an energy context, use "eurostat" not "fred" or "worldbank_commodity"
- For bilateral trade volume claims between two named countries: use suggested_source = "uncomtrade"
- For country facts (population, capital, region): use suggested_source = "rest_countries"
- Never use suggested_source = "other" — always pick the closest available source.
- Generate validation_queries for AT LEAST 3 claims per article if possible.`
