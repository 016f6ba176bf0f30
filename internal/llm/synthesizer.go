package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/synth"
)

// Synthesizer turns a claim plus a retrieved observation into a short
// plain-language verdict paragraph.
type Synthesizer struct {
	provider Provider
	model    string
}

// NewSynthesizer creates a synthesizer on top of the given provider. The
// model is typically a cheaper one than the analysis model.
func NewSynthesizer(provider Provider, modelName string) *Synthesizer {
	return &Synthesizer{provider: provider, model: modelName}
}

// Synthesize writes the validation summary for one claim. The returned
// text leads with a verdict word so the status can be inferred from it.
func (s *Synthesizer) Synthesize(ctx context.Context, claimText string, obs model.Observation) (string, error) {
	prompt := buildSynthesisPrompt(claimText, obs)

	resp, err := s.provider.Complete(ctx, CompletionRequest{
		Prompt:    prompt,
		Model:     s.model,
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("synthesis request: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}

func buildSynthesisPrompt(claimText string, obs model.Observation) string {
	sourceLabel := obs.SeriesLabel
	if sourceLabel == "" {
		sourceLabel = obs.Indicator
	}
	if sourceLabel == "" {
		sourceLabel = obs.Commodity
	}
	if sourceLabel == "" {
		sourceLabel = "Economic indicator"
	}

	return fmt.Sprintf(`You are a fact-checker validating a specific news claim against authoritative data.

CLAIM: %s

DATA SOURCE: %s
DATA:
%s

Write 2-3 sharp, direct sentences. No markdown whatsoever — no asterisks, no bold, no bullet points, no headers.

Start with a plain verdict word: Supports, Partially supports, or Contradicts.
Then give the specific numbers that justify your verdict.
Then note the single most important caveat.

Rules:
- No asterisks or bold formatting of any kind
- The series label in the data tells you what the numbers represent — always use it. Never confuse a price ($/barrel) with a volume (barrels/day)
- If the claim mentions a specific number, compare it directly to the data value
- If data covers a price series, describe the price trend and what it implies for the claim
- Commit to a verdict — never say only "cannot validate" if the data is clearly relevant
- Keep total length under 65 words`, claimText, sourceLabel, synth.FormatObservation(obs))
}
