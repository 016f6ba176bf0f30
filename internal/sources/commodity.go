package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

// commodityRecentCount is the fixed number of trend points for the Pink
// Sheet tier. The FRED tier returns that connector's own count.
const commodityRecentCount = 4

// Commodity resolves commodity-price claims with a two-tier fallback:
// FRED first when a key is configured and the commodity has a daily series,
// else the World Bank Pink Sheet monthly series. Either way the caller gets
// a single Observation.
type Commodity struct {
	fred      *FRED
	client    *Client
	WBBaseURL string
}

// NewCommodity creates the composite commodity-price connector
func NewCommodity(client *Client, fred *FRED) *Commodity {
	return &Commodity{fred: fred, client: client, WBBaseURL: worldBankDefaultBaseURL}
}

// Fetch retrieves the latest price for a commodity key from the registry
func (c *Commodity) Fetch(ctx context.Context, commodityKey string) model.Observation {
	if c.fred != nil && c.fred.Configured() {
		if seriesID, label, ok := registry.CommodityFREDSeries(commodityKey); ok {
			obs := c.fred.Fetch(ctx, seriesID, label)
			if obs.Available {
				return obs
			}
		}
	}
	return c.fetchPinkSheet(ctx, commodityKey)
}

// fetchPinkSheet queries World Bank Commodity Price Data for world prices
func (c *Commodity) fetchPinkSheet(ctx context.Context, commodityKey string) model.Observation {
	indicatorID, label := registry.CommodityWBSeries(commodityKey)

	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", "6")
	params.Set("mrv", "6")

	endpoint := fmt.Sprintf("%s/v2/country/WLD/indicator/%s", c.WBBaseURL, indicatorID)

	var raw []json.RawMessage
	if err := c.client.getJSON(ctx, endpoint, params, &raw); err != nil {
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
	for _, r := range records {
		if r.Value == nil {
			continue
		}
		recent = append(recent, model.PeriodValue{Period: r.Date, Value: formatValue(*r.Value)})
		if len(recent) == commodityRecentCount {
			break
		}
	}
	if len(recent) == 0 {
		return model.Unavailable("No values")
	}

	return model.Observation{
		Available:    true,
		Source:       "World Bank Commodity Price Data (Pink Sheet)",
		Commodity:    label,
		LatestValue:  recent[0].Value,
		LatestDate:   recent[0].Period,
		RecentValues: recent,
		URL:          "https://www.worldbank.org/en/research/commodity-markets",
	}
}
