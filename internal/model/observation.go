package model

// Observation is the normalized snapshot every source connector returns.
// Available=false means only Error carries information; Available=true
// guarantees LatestValue and LatestDate unless the observation is a
// web-search narrative (then Summary stands in for the numeric fields).
type Observation struct {
	Available bool   `json:"available"`
	Source    string `json:"source,omitempty"` // Human-readable provider label
	Error     string `json:"error,omitempty"`

	SeriesLabel string `json:"series_label,omitempty"`
	Indicator   string `json:"indicator,omitempty"`
	Country     string `json:"country,omitempty"`
	Commodity   string `json:"commodity,omitempty"`

	LatestValue  string        `json:"latest_value,omitempty"`
	LatestDate   string        `json:"latest_date,omitempty"` // Date or year, provider-native
	RecentValues []PeriodValue `json:"recent_values,omitempty"`

	// Bilateral trade fields
	Reporter      string      `json:"reporter,omitempty"`
	Partner       string      `json:"partner,omitempty"`
	Year          string      `json:"year,omitempty"`
	TotalValueUSD float64     `json:"total_value_usd,omitempty"`
	TopFlows      []TradeFlow `json:"top_flows,omitempty"`

	// Country facts fields
	Capital    string `json:"capital,omitempty"`
	Population int64  `json:"population,omitempty"`
	Region     string `json:"region,omitempty"`
	Subregion  string `json:"subregion,omitempty"`

	URL string `json:"url,omitempty"` // Citation URL for user-facing display

	// Web-search narrative fields
	WebSearch  bool   `json:"web_search,omitempty"`
	Summary    string `json:"summary,omitempty"`
	SourceTier string `json:"source_tier,omitempty"` // primary_source or news_report
}

// PeriodValue is one point of a recent-values trend, most-recent-first
type PeriodValue struct {
	Period string `json:"period"` // Date or year in the provider's native format
	Value  string `json:"value"`
}

// TradeFlow is one bilateral trade flow from the trade connector
type TradeFlow struct {
	Partner  string  `json:"partner"`
	ValueUSD float64 `json:"value_usd"`
	Flow     string  `json:"flow"`
}

// Unavailable builds the failure shape every connector returns on error
func Unavailable(errMsg string) Observation {
	return Observation{Available: false, Error: errMsg}
}

// Source tier labels for validation results
const (
	TierPrimaryData   = "primary_data"   // Structured statistical API
	TierPrimarySource = "primary_source" // Web search over official domains
	TierNewsReport    = "news_report"    // Web search over news/analysis domains
)
