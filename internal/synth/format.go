// Package synth renders retrieved observations for the synthesis prompt
// and infers validation statuses from synthesis text.
package synth

import (
	"fmt"
	"strings"

	"github.com/ppiankov/clearview/internal/model"
)

// FormatObservation renders an observation as the readable block the
// synthesis prompt consumes. Only fields the connector populated appear.
func FormatObservation(obs model.Observation) string {
	if !obs.Available {
		return "No data available."
	}

	var lines []string
	source := obs.Source
	if source == "" {
		source = "Unknown source"
	}
	lines = append(lines, "Source: "+source)

	if obs.SeriesLabel != "" {
		lines = append(lines, "Series: "+obs.SeriesLabel)
	}
	if obs.LatestValue != "" && obs.LatestDate != "" {
		lines = append(lines, fmt.Sprintf("Most recent value: %s (as of %s)", obs.LatestValue, obs.LatestDate))
	}
	if obs.Indicator != "" {
		lines = append(lines, "Indicator: "+obs.Indicator)
	}
	if obs.Country != "" {
		lines = append(lines, "Country: "+obs.Country)
	}
	if obs.Commodity != "" {
		lines = append(lines, "Commodity: "+obs.Commodity)
	}
	if len(obs.RecentValues) > 0 {
		parts := make([]string, 0, len(obs.RecentValues))
		for _, v := range obs.RecentValues {
			parts = append(parts, v.Period+": "+v.Value)
		}
		lines = append(lines, "Recent trend: "+strings.Join(parts, ", "))
	}
	if obs.TotalValueUSD > 0 {
		lines = append(lines, fmt.Sprintf("Total trade value (USD): %.0f", obs.TotalValueUSD))
		if obs.Reporter != "" && obs.Partner != "" {
			lines = append(lines, fmt.Sprintf("Trade pair: %s with %s (%s)", obs.Reporter, obs.Partner, obs.Year))
		}
	}
	for i, flow := range obs.TopFlows {
		if i >= 2 {
			break
		}
		partner := flow.Partner
		if partner == "" {
			partner = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("  %s: USD %.0f (%s)", partner, flow.ValueUSD, flow.Flow))
	}
	if obs.Population > 0 {
		lines = append(lines, fmt.Sprintf("Population: %d", obs.Population))
	}
	if obs.Capital != "" {
		lines = append(lines, "Capital: "+obs.Capital)
	}
	if obs.Region != "" {
		region := obs.Region
		if obs.Subregion != "" {
			region += " / " + obs.Subregion
		}
		lines = append(lines, "Region: "+region)
	}

	return strings.Join(lines, "\n")
}
