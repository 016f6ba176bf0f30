package pipeline

import "github.com/ppiankov/clearview/internal/model"

// buildSummary combines the engine's claim counts with validation outcome
// tallies. Engine counts are untrusted; zero values are backfilled from the
// actual collections.
func buildSummary(analysis *model.Analysis, results []model.ValidationResult) model.ReportSummary {
	s := model.ReportSummary{AnalysisSummary: analysis.Summary}

	if s.TotalClaims == 0 {
		s.TotalClaims = len(analysis.Claims)
	}
	if s.ImplicitAssumptions == 0 {
		s.ImplicitAssumptions = len(analysis.ImplicitAssumptions)
	}
	if s.CheckableClaims == 0 {
		s.CheckableClaims = len(analysis.ValidationQueries)
	}
	if s.LogicalFlagsCount == 0 {
		s.LogicalFlagsCount = len(analysis.LogicalFlags)
	}

	for _, r := range results {
		switch r.Status {
		case model.StatusSupported:
			s.ValidatedCount++
		case model.StatusPartiallySupported:
			s.PartialCount++
		case model.StatusContradicted:
			s.ContradictedCount++
		case model.StatusInsufficientData:
			s.InsufficientCount++
		}
	}
	return s
}
