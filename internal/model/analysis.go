package model

// Analysis is the structured output of the claim-extraction LLM call.
// Every field is optional on decode: the engine's output is untrusted and
// missing fields default to empty collections.
type Analysis struct {
	Thesis              string                `json:"thesis"`
	Claims              []Claim               `json:"claims"`
	ArgumentMap         ArgumentMap           `json:"argument_map"`
	ImplicitAssumptions []ImplicitAssumption  `json:"implicit_assumptions"`
	LogicalFlags        []LogicalFlag         `json:"logical_flags"`
	ValidationQueries   []ValidationQuery     `json:"validation_queries"`
	Summary             AnalysisSummary       `json:"summary"`
}

// Claim represents a factual or normative assertion extracted from an article
type Claim struct {
	ID          string `json:"id"`                    // e.g. "C1"
	Text        string `json:"text"`                  // The claim text itself
	Type        string `json:"type"`                  // explicit_fact, implicit_assumption, normative, hedged
	SourceHint  string `json:"source_hint,omitempty"` // Quote or location hint from the article
	IsCheckable bool   `json:"is_checkable"`          // Whether a data source could validate it
	Domain      string `json:"domain,omitempty"`      // economics, geopolitics, energy, health, other
}

// ArgumentMap captures the article's argument structure as a small graph
type ArgumentMap struct {
	Conclusion string         `json:"conclusion"`
	Nodes      []ArgumentNode `json:"nodes"`
	Edges      []ArgumentEdge `json:"edges"`
}

// ArgumentNode is one premise, conclusion or assumption in the map
type ArgumentNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"` // premise, conclusion, assumption
}

// ArgumentEdge is a directed relation between two nodes
type ArgumentEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Relation string `json:"relation"` // supports, contradicts, assumes
}

// ImplicitAssumption is an unstated premise the argument relies on
type ImplicitAssumption struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	UnderliesClaim string `json:"underlies_claim,omitempty"`
	Explanation    string `json:"explanation,omitempty"`
}

// LogicalFlag marks a reasoning issue detected in the article
type LogicalFlag struct {
	Type        string `json:"type"` // inferential_gap, correlation_causation, cherry_picked_data, false_dichotomy, appeal_to_authority, other
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// ValidationQuery pairs a checkable claim with a data-source suggestion.
// Fields beyond ClaimID/ClaimText are advisory hints from the LLM, never
// commands: the router validates and may override them.
type ValidationQuery struct {
	ClaimID             string              `json:"claim_id"`
	ClaimText           string              `json:"claim_text"`
	Domain              string              `json:"domain,omitempty"`
	QueryDescription    string              `json:"query_description,omitempty"`
	SuggestedSource     string              `json:"suggested_source,omitempty"`
	SuggestedParameters SuggestedParameters `json:"suggested_parameters,omitempty"`
}

// SuggestedParameters carries the free-text data description from the LLM
type SuggestedParameters struct {
	Description string `json:"description,omitempty"`
}

// AnalysisSummary holds the per-article claim counts reported by the engine
type AnalysisSummary struct {
	TotalClaims         int `json:"total_claims"`
	ExplicitFacts       int `json:"explicit_facts"`
	ImplicitAssumptions int `json:"implicit_assumptions"`
	NormativeClaims     int `json:"normative_claims"`
	HedgedClaims        int `json:"hedged_claims"`
	CheckableClaims     int `json:"checkable_claims"`
	LogicalFlagsCount   int `json:"logical_flags_count"`
}
