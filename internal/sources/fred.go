package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
)

const (
	fredDefaultBaseURL = "https://api.stlouisfed.org"
	// FRED marks suppressed or not-yet-collected observations with "."
	fredMissingValue = "."
	// fredRecentCount is the fixed number of trend points returned
	fredRecentCount = 3
	fredObsStart    = "2021-01-01"
)

// FRED queries the Federal Reserve Bank of St. Louis macro-series store
type FRED struct {
	client  *Client
	apiKey  string
	BaseURL string
}

// NewFRED creates a FRED connector. An empty API key leaves the connector
// constructed but unavailable, reported per call.
func NewFRED(client *Client, apiKey string) *FRED {
	return &FRED{client: client, apiKey: apiKey, BaseURL: fredDefaultBaseURL}
}

// Configured reports whether an API key is present
func (f *FRED) Configured() bool { return f.apiKey != "" }

type fredResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// Fetch retrieves the most recent observations for a series. The provider
// already sorts descending by date, so the first non-missing row is the
// latest value.
func (f *FRED) Fetch(ctx context.Context, seriesID, seriesLabel string) model.Observation {
	if f.apiKey == "" {
		return model.Unavailable("FRED API key not configured")
	}

	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", f.apiKey)
	params.Set("file_type", "json")
	params.Set("sort_order", "desc")
	params.Set("limit", "24")
	params.Set("observation_start", fredObsStart)

	var resp fredResponse
	if err := f.client.getJSON(ctx, f.BaseURL+"/fred/series/observations", params, &resp); err != nil {
		return model.Unavailable(err.Error())
	}

	var recent []model.PeriodValue
	for _, o := range resp.Observations {
		if o.Value == fredMissingValue {
			continue
		}
		recent = append(recent, model.PeriodValue{Period: o.Date, Value: o.Value})
		if len(recent) == fredRecentCount {
			break
		}
	}
	if len(recent) == 0 {
		return model.Unavailable("No data returned")
	}

	return model.Observation{
		Available:    true,
		Source:       "FRED — Federal Reserve Bank of St. Louis",
		SeriesLabel:  seriesLabel,
		LatestValue:  recent[0].Value,
		LatestDate:   recent[0].Period,
		RecentValues: recent,
		URL:          fmt.Sprintf("https://fred.stlouisfed.org/series/%s", seriesID),
	}
}
