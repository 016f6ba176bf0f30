package synth

import (
	"strings"

	"github.com/ppiankov/clearview/internal/model"
)

// Keyword groups checked in precedence order. A contradiction word wins
// over a hedge word, a hedge word wins over a support word.
var (
	contradictedWords = []string{"contradicts", "contradicted", "does not support", "inconsistent", "contrary", "refutes"}
	partialWords      = []string{"partially", "mixed", "somewhat", "nuanced", "complex"}
	supportedWords    = []string{"supports", "corroborates", "consistent with", "confirms", "aligns", "validates"}
)

// InferStatus derives a validation status from the synthesis text. The
// whole text is scanned, not just the leading verdict word, so "the data
// partially supports" still resolves to partially_supported.
func InferStatus(text string) model.Status {
	t := strings.ToLower(text)
	if containsAny(t, contradictedWords) {
		return model.StatusContradicted
	}
	if containsAny(t, partialWords) {
		return model.StatusPartiallySupported
	}
	if containsAny(t, supportedWords) {
		return model.StatusSupported
	}
	return model.StatusInsufficientData
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
