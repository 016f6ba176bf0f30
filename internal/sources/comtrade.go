package sources

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

const (
	comtradeDefaultBaseURL = "https://comtradeapi.un.org"
	// comtradeTopFlows bounds the per-claim flow list
	comtradeTopFlows   = 3
	comtradeDefaultYr  = "2023"
	comtradeSumRecords = 5
)

// Comtrade queries the UN Comtrade bilateral-trade store through the public
// preview API (no key required for basic queries).
type Comtrade struct {
	client  *Client
	BaseURL string
}

// NewComtrade creates a Comtrade connector
func NewComtrade(client *Client) *Comtrade {
	return &Comtrade{client: client, BaseURL: comtradeDefaultBaseURL}
}

type comtradeResponse struct {
	Data []struct {
		PartnerCode  int     `json:"partnerCode"`
		PartnerDesc  string  `json:"partnerDesc"`
		FlowDesc     string  `json:"flowDesc"`
		PrimaryValue float64 `json:"primaryValue"`
	} `json:"data"`
}

// Fetch retrieves import flows for a reporter/partner/commodity/year
// selector. An empty or "WLD" partner keeps all partners; an unknown
// partner filter that matches nothing falls back to the unfiltered records.
func (c *Comtrade) Fetch(ctx context.Context, q registry.TradeQuery, year string) model.Observation {
	reporterCode := registry.TradeReporterCode(q.Reporter)
	if reporterCode == "" {
		return model.Unavailable(fmt.Sprintf("Unknown reporter country code: %s", q.Reporter))
	}
	if year == "" {
		year = comtradeDefaultYr
	}
	commodityCode := registry.TradeCommodityCode(q.Commodity)

	params := url.Values{}
	params.Set("reporterCode", reporterCode)
	params.Set("period", year)
	params.Set("cmdCode", commodityCode)
	params.Set("flowCode", "M")
	params.Set("format", "JSON")

	var resp comtradeResponse
	if err := c.client.getJSON(ctx, c.BaseURL+"/public/v1/preview/C/A/HS", params, &resp); err != nil {
		return model.Unavailable(err.Error())
	}
	records := resp.Data
	if len(records) == 0 {
		return model.Unavailable("No trade data found for these parameters")
	}

	partner := strings.ToUpper(q.Partner)
	if partner != "" && partner != "WLD" {
		if partnerCode := registry.TradeReporterCode(partner); partnerCode != "" {
			filtered := records[:0:0]
			for _, r := range records {
				if fmt.Sprintf("%d", r.PartnerCode) == partnerCode {
					filtered = append(filtered, r)
				}
			}
			if len(filtered) > 0 {
				records = filtered
			}
		}
	}

	var total float64
	for i, r := range records {
		if i == comtradeSumRecords {
			break
		}
		total += r.PrimaryValue
	}

	sorted := make([]int, len(records))
	for i := range sorted {
		sorted[i] = i
	}
	sort.Slice(sorted, func(i, j int) bool {
		return records[sorted[i]].PrimaryValue > records[sorted[j]].PrimaryValue
	})

	var flows []model.TradeFlow
	for _, idx := range sorted {
		if len(flows) == comtradeTopFlows {
			break
		}
		r := records[idx]
		desc := r.PartnerDesc
		if desc == "" {
			desc = "Unknown"
		}
		flows = append(flows, model.TradeFlow{Partner: desc, ValueUSD: r.PrimaryValue, Flow: r.FlowDesc})
	}

	partnerLabel := "World"
	if partner != "" && partner != "WLD" {
		partnerLabel = partner
	}

	return model.Observation{
		Available:     true,
		Source:        "UN Comtrade Database",
		Reporter:      strings.ToUpper(q.Reporter),
		Partner:       partnerLabel,
		Commodity:     q.Commodity,
		Year:          year,
		LatestValue:   formatValue(total),
		LatestDate:    year,
		TotalValueUSD: total,
		TopFlows:      flows,
		URL:           "https://comtradeplus.un.org/",
	}
}
