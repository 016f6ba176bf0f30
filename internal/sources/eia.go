package sources

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
)

const (
	eiaDefaultBaseURL = "https://api.eia.gov"
	// eiaRecentCount is the fixed number of trend points returned
	eiaRecentCount = 6
)

// EIA queries the US Energy Information Administration bilateral energy
// trade series. Many series work without a key; one is passed when present.
type EIA struct {
	client  *Client
	apiKey  string
	BaseURL string
}

// NewEIA creates an EIA connector
func NewEIA(client *Client, apiKey string) *EIA {
	return &EIA{client: client, apiKey: apiKey, BaseURL: eiaDefaultBaseURL}
}

type eiaResponse struct {
	Response struct {
		Data []struct {
			Period string          `json:"period"`
			Value  json.RawMessage `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

// Fetch retrieves the most recent periods of an EIA v2 series, sorted
// descending by period on the provider side.
func (e *EIA) Fetch(ctx context.Context, seriesID, seriesLabel string) model.Observation {
	params := url.Values{}
	params.Set("api_key", e.apiKey)
	params.Set("data[0]", "value")
	params.Set("sort[0][column]", "period")
	params.Set("sort[0][direction]", "desc")
	params.Set("length", "12")

	var resp eiaResponse
	if err := e.client.getJSON(ctx, e.BaseURL+"/v2/seriesid/"+seriesID, params, &resp); err != nil {
		return model.Unavailable(err.Error())
	}
	if len(resp.Response.Data) == 0 {
		return model.Unavailable("No EIA data")
	}

	var recent []model.PeriodValue
	for _, d := range resp.Response.Data {
		if len(recent) == eiaRecentCount {
			break
		}
		val := decodeEIAValue(d.Value)
		if val == "" {
			continue
		}
		recent = append(recent, model.PeriodValue{Period: d.Period, Value: val})
	}
	if len(recent) == 0 {
		return model.Unavailable("No EIA data")
	}

	return model.Observation{
		Available:    true,
		Source:       "EIA — US Energy Information Administration",
		SeriesLabel:  seriesLabel,
		LatestValue:  recent[0].Value,
		LatestDate:   recent[0].Period,
		RecentValues: recent,
		URL:          "https://www.eia.gov/opendata/",
	}
}

// decodeEIAValue handles the API returning values as either numbers or
// strings, with null meaning withheld.
func decodeEIAValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return formatValue(f)
	}
	return string(raw)
}
