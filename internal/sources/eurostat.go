package sources

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

const (
	eurostatDefaultBaseURL = "https://ec.europa.eu/eurostat/api/dissemination/statistics/1.0/data"
	// eurostatRecentCount is the fixed number of trend points returned
	eurostatRecentCount = 4
)

// Eurostat queries the EU statistical office; free, no key needed
type Eurostat struct {
	client  *Client
	BaseURL string
}

// NewEurostat creates a Eurostat connector
func NewEurostat(client *Client) *Eurostat {
	return &Eurostat{client: client, BaseURL: eurostatDefaultBaseURL}
}

// eurostatResponse is the slice of the JSON-stat format this connector
// needs: the flat value map plus the time-dimension index.
type eurostatResponse struct {
	Value     map[string]float64 `json:"value"`
	Dimension struct {
		Time struct {
			Category struct {
				Index map[string]int `json:"index"`
			} `json:"category"`
		} `json:"time"`
	} `json:"dimension"`
}

// Fetch retrieves the most recent periods of a dataset. Periods absent from
// the value map are suppressed observations and are skipped.
func (e *Eurostat) Fetch(ctx context.Context, ds registry.EurostatDataset) model.Observation {
	params := url.Values{}
	params.Set("format", "JSON")
	params.Set("lang", "EN")
	params.Set("lastTimePeriod", "4")
	for k, v := range ds.Filters {
		params.Set(k, v)
	}

	var resp eurostatResponse
	if err := e.client.getJSON(ctx, e.BaseURL+"/"+ds.Dataset, params, &resp); err != nil {
		return model.Unavailable(err.Error())
	}

	index := resp.Dimension.Time.Category.Index
	if len(resp.Value) == 0 || len(index) == 0 {
		return model.Unavailable("No Eurostat data")
	}

	type timeDim struct {
		label string
		idx   int
	}
	dims := make([]timeDim, 0, len(index))
	for label, idx := range index {
		dims = append(dims, timeDim{label, idx})
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i].idx > dims[j].idx })

	var recent []model.PeriodValue
	for _, d := range dims {
		if len(recent) == eurostatRecentCount {
			break
		}
		if v, ok := resp.Value[strconv.Itoa(d.idx)]; ok {
			recent = append(recent, model.PeriodValue{Period: d.label, Value: formatValue(v)})
		}
	}
	if len(recent) == 0 {
		return model.Unavailable("No values found")
	}

	return model.Observation{
		Available:    true,
		Source:       "Eurostat — European Union Statistical Office",
		SeriesLabel:  ds.Label,
		LatestValue:  recent[0].Value,
		LatestDate:   recent[0].Period,
		RecentValues: recent,
		URL:          fmt.Sprintf("https://ec.europa.eu/eurostat/databrowser/view/%s", ds.Dataset),
	}
}
