package model

// Status is the four-way verdict classification for a validated claim
type Status string

const (
	StatusSupported          Status = "supported"
	StatusPartiallySupported Status = "partially_supported"
	StatusContradicted       Status = "contradicted"
	StatusInsufficientData   Status = "insufficient_data"
)

// ValidationResult is the final per-claim record. Created once per claim per
// analysis run and never mutated afterwards.
type ValidationResult struct {
	ClaimID    string                 `json:"claim_id"`
	Status     Status                 `json:"status"`
	Summary    string                 `json:"summary"`
	SourceName string                 `json:"source_name"`
	SourceURL  string                 `json:"source_url"`
	SourceTier string                 `json:"source_tier,omitempty"`
	SourceDate string                 `json:"source_date,omitempty"`
	RawData    map[string]interface{} `json:"raw_data,omitempty"`
}

// safeRawKeys are the only observation fields exposed to clients
var safeRawKeys = map[string]bool{
	"latest_value": true, "latest_date": true,
	"indicator": true, "country": true, "commodity": true,
	"series_label": true, "recent_values": true, "total_value_usd": true,
}

// SafeRawData returns the restricted-key subset of an observation suitable
// for client-side display.
func SafeRawData(obs Observation) map[string]interface{} {
	raw := make(map[string]interface{})
	put := func(key string, ok bool, val interface{}) {
		if ok && safeRawKeys[key] {
			raw[key] = val
		}
	}
	put("latest_value", obs.LatestValue != "", obs.LatestValue)
	put("latest_date", obs.LatestDate != "", obs.LatestDate)
	put("indicator", obs.Indicator != "", obs.Indicator)
	put("country", obs.Country != "", obs.Country)
	put("commodity", obs.Commodity != "", obs.Commodity)
	put("series_label", obs.SeriesLabel != "", obs.SeriesLabel)
	put("recent_values", len(obs.RecentValues) > 0, obs.RecentValues)
	put("total_value_usd", obs.TotalValueUSD != 0, obs.TotalValueUSD)
	return raw
}
