package model

// Report is the complete ClearView analysis payload returned to clients
type Report struct {
	Status      string `json:"status"` // "success" or "error"
	FromCache   bool   `json:"from_cache"`
	ArticleHash string `json:"article_hash"`

	Thesis              string               `json:"thesis"`
	Claims              []Claim              `json:"claims"`
	ArgumentMap         ArgumentMap          `json:"argument_map"`
	ImplicitAssumptions []ImplicitAssumption `json:"implicit_assumptions"`
	LogicalFlags        []LogicalFlag        `json:"logical_flags"`
	ValidationResults   []ValidationResult   `json:"validation_results"`

	Summary ReportSummary `json:"summary"`
}

// ReportSummary extends the engine's claim counts with validation outcomes
type ReportSummary struct {
	AnalysisSummary
	ValidatedCount    int `json:"validated_count"`
	PartialCount      int `json:"partial_count"`
	ContradictedCount int `json:"contradicted_count"`
	InsufficientCount int `json:"insufficient_count"`
}
