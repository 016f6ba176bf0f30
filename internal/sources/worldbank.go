package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

const (
	worldBankDefaultBaseURL = "https://api.worldbank.org"
	// worldBankRecentCount is the fixed number of trend points returned
	worldBankRecentCount = 3
)

// WorldBank queries the World Bank country-indicator store
type WorldBank struct {
	client  *Client
	BaseURL string
}

// NewWorldBank creates a World Bank connector; no API key is needed
func NewWorldBank(client *Client) *WorldBank {
	return &WorldBank{client: client, BaseURL: worldBankDefaultBaseURL}
}

// wbRecord is one row of the World Bank v2 JSON response. Value is null for
// years with no data, which is the provider's missing-value sentinel.
type wbRecord struct {
	Date    string   `json:"date"`
	Value   *float64 `json:"value"`
	Country struct {
		Value string `json:"value"`
	} `json:"country"`
}

// Fetch retrieves the most recent values of an indicator for a country.
// indicatorKey must be a key of the indicator registry table.
func (w *WorldBank) Fetch(ctx context.Context, countryCode, indicatorKey string) model.Observation {
	indicatorID, label, ok := registry.Indicator(indicatorKey)
	if !ok {
		return model.Unavailable(fmt.Sprintf("Unknown indicator: %s", indicatorKey))
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", "4")
	params.Set("mrv", "4")

	endpoint := fmt.Sprintf("%s/v2/country/%s/indicator/%s", w.BaseURL, countryCode, indicatorID)

	// The v2 API returns [metadata, records]
	var raw []json.RawMessage
	if err := w.client.getJSON(ctx, endpoint, params, &raw); err != nil {
		return model.Unavailable(err.Error())
	}
	if len(raw) < 2 {
		return model.Unavailable("No data")
	}
	var records []wbRecord
	if err := json.Unmarshal(raw[1], &records); err != nil {
		return model.Unavailable(fmt.Sprintf("decode records: %v", err))
	}

	var recent []model.PeriodValue
	countryName := countryCode
	for _, r := range records {
		if r.Value == nil {
			continue
		}
		if r.Country.Value != "" {
			countryName = r.Country.Value
		}
		recent = append(recent, model.PeriodValue{Period: r.Date, Value: formatValue(*r.Value)})
		if len(recent) == worldBankRecentCount {
			break
		}
	}
	if len(recent) == 0 {
		return model.Unavailable("No values found")
	}

	return model.Observation{
		Available:    true,
		Source:       "World Bank Open Data",
		Country:      countryName,
		Indicator:    label,
		LatestValue:  recent[0].Value,
		LatestDate:   recent[0].Period,
		RecentValues: recent,
		URL:          fmt.Sprintf("https://data.worldbank.org/indicator/%s?locations=%s", indicatorID, countryCode),
	}
}
