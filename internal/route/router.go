// Package route sends each validation query to the data source most likely
// to hold relevant evidence. Routing is keyword-driven over the combined
// query description and claim text; two hard overrides outrank whatever
// source the analysis suggested, because the analysis model routinely
// mislabels European energy claims.
package route

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

// Connectors is the set of data sources the router dispatches to. Each is
// an interface so tests can substitute fakes.
type Connectors struct {
	FRED          FREDSource
	WorldBank     CountrySource
	Commodity     CommoditySource
	Eurostat      EurostatSource
	EIA           SeriesSource
	Comtrade      TradeSource
	RESTCountries CountryFactsSource
}

type FREDSource interface {
	Configured() bool
	Fetch(ctx context.Context, seriesID, seriesLabel string) model.Observation
}

type CountrySource interface {
	Fetch(ctx context.Context, countryCode, indicatorKey string) model.Observation
}

type CommoditySource interface {
	Fetch(ctx context.Context, commodityKey string) model.Observation
}

type EurostatSource interface {
	Fetch(ctx context.Context, ds registry.EurostatDataset) model.Observation
}

type SeriesSource interface {
	Fetch(ctx context.Context, seriesID, seriesLabel string) model.Observation
}

type TradeSource interface {
	Fetch(ctx context.Context, q registry.TradeQuery, year string) model.Observation
}

type CountryFactsSource interface {
	Fetch(ctx context.Context, countryName string) model.Observation
}

// Router resolves validation queries into observations.
type Router struct {
	conns  Connectors
	logger *log.Logger
}

// NewRouter builds a router over the given connectors.
func NewRouter(conns Connectors, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.New(os.Stderr, "route: ", log.LstdFlags)
	}
	return &Router{conns: conns, logger: logger}
}

// euOverrideTerms force Eurostat regardless of the suggested source.
var euOverrideTerms = []string{
	"european union", "eu member", "eu gas", "eu supply", "eu import", "eu depend", "eu energy",
	"eu electricity", "eu spent", "eu subsid", "eu natural gas", "eu shrink", "eu reduc",
	"germany", "german industrial", "german manufactur", "german electricity",
	"norway gas", "europe gas", "europe energy", "europe electric", "europe manufactur",
	"europe slash", "europe cut", "european commission", "russia gas to europe",
	"russian gas depend", "lng to europe", "europe lng",
}

// europeanTerms guard the energy override: European energy claims belong to
// Eurostat, not the commodity connector.
var europeanTerms = []string{
	"european", "eu gas", "eu import", "eu supply", "eu depend", "eu member", "eu spent", "eu subsid",
	"eurozone", "germany", "german", "france", "french", "italy", "spain", "norway", "dutch", "netherlands",
	"lng import to europe", "europe lng", "europe slash", "europe cut", "european commission",
	"eu electricity", "eu energy", "eu natural gas",
}

var energyTerms = []string{"oil", "crude", "petroleum", "urals", "brent", "wti", "energy price", "gas price", "discount"}

// knownSources are the suggestion values dispatched directly; anything else
// goes through inference.
var knownSources = map[string]bool{
	"skip": true, "fred": true, "worldbank": true, "worldbank_commodity": true,
	"eia": true, "eurostat": true, "uncomtrade": true, "rest_countries": true,
}

// Execute routes one validation query and returns the observation. It never
// panics or returns an error: every failure mode becomes an unavailable
// observation so one claim cannot take down the fan-out.
func (r *Router) Execute(ctx context.Context, q model.ValidationQuery) (obs model.Observation) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Printf("routing panic for %s: %v", q.ClaimID, rec)
			obs = model.Unavailable(fmt.Sprintf("routing failed: %v", rec))
		}
	}()

	combined := strings.ToLower(q.SuggestedParameters.Description + " " + q.ClaimText)
	domain := strings.ToLower(q.Domain)

	// Hard override 1: European energy and economic claims go to Eurostat
	// no matter what the analysis suggested.
	if containsAny(combined, euOverrideTerms) {
		r.logger.Printf("EU override for %s -> eurostat", q.ClaimID)
		return r.conns.Eurostat.Fetch(ctx, registry.MatchEurostatDataset(combined))
	}

	// Hard override 2: energy-price claims go to the commodity connector,
	// unless they are European (those were caught above or stay European).
	isEuropean := containsAny(combined, europeanTerms)
	isEnergy := domain == "energy" || containsAny(combined, energyTerms)
	if isEnergy && !isEuropean {
		r.logger.Printf("energy override for %s -> commodity", q.ClaimID)
		return r.conns.Commodity.Fetch(ctx, registry.MatchCommodity(combined))
	}

	source := strings.ToLower(q.SuggestedSource)
	if !knownSources[source] {
		// Absent, "other", or anything the analysis invented
		source = inferSource(combined, domain)
	}

	r.logger.Printf("routing %s -> %s", q.ClaimID, source)

	switch source {
	case "skip":
		return model.Unavailable("No suitable source")

	case "fred":
		if entry := registry.MatchSeries(registry.FREDSeries, combined); entry != nil {
			return r.conns.FRED.Fetch(ctx, entry.ID, entry.Label)
		}
		if containsAny(combined, []string{"oil", "crude", "energy"}) {
			return r.conns.Commodity.Fetch(ctx, "oil_brent")
		}
		return model.Unavailable("Could not match to a FRED series")

	case "worldbank":
		// Country indicators are the wrong shape for energy-price claims.
		if containsAny(combined, []string{"oil", "crude", "petroleum", "urals", "energy", "gas", "coal", "commodity", "price"}) {
			return r.conns.Commodity.Fetch(ctx, registry.MatchCommodity(combined))
		}
		country := registry.MatchCountry(combined)
		if country == "" {
			return model.Unavailable("Could not identify country")
		}
		return r.conns.WorldBank.Fetch(ctx, country, registry.MatchIndicator(combined))

	case "worldbank_commodity":
		return r.conns.Commodity.Fetch(ctx, registry.MatchCommodity(combined))

	case "eia":
		entry := registry.MatchSeries(registry.EIASeries, combined)
		if entry == nil {
			// Energy-trade claims default to the LNG export series.
			entry = &registry.DefaultEIASeries
		}
		return r.conns.EIA.Fetch(ctx, entry.ID, entry.Label)

	case "eurostat":
		return r.conns.Eurostat.Fetch(ctx, registry.MatchEurostatDataset(combined))

	case "uncomtrade":
		tq := registry.ParseTradeQuery(combined)
		return r.conns.Comtrade.Fetch(ctx, tq, "2023")

	case "rest_countries":
		name := registry.MatchCountryName(combined)
		if name == "" {
			return model.Unavailable("Could not identify country")
		}
		return r.conns.RESTCountries.Fetch(ctx, name)
	}

	return model.Unavailable("No suitable data source available for this claim type")
}

// inferSource picks a source when the analysis suggested none, "other", or
// something unknown.
func inferSource(combined, domain string) string {
	euKeywords := []string{
		"european union", "eu member", "eu gas", "eu supply", "eu import", "eu energy", "eu depend",
		"germany", "german", "france", "french", "italy", "spain", "norway", "dutch", "netherlands",
		"europe slashes", "europe cut", "european commission", "eu spent", "eu subsid",
	}
	energyKeywords := []string{
		"gas", "electricity", "energy", "manufacturing", "industrial", "lng", "supply", "depend",
		"import", "subsid", "price", "cost", "billion", "trillion",
	}
	if containsAny(combined, euKeywords) || containsAny(combined, []string{"eu ", "europe "}) {
		if containsAny(combined, energyKeywords) {
			return "eurostat"
		}
	}
	if domain == "energy" && containsAny(combined, []string{"europe", "eu", "german", "norway", "russia"}) {
		return "eurostat"
	}

	if containsAny(combined, []string{"lng export", "us lng", "american lng", "us gas export", "us energy export"}) {
		return "eia"
	}

	if containsAny(combined, []string{"oil", "crude", "petroleum", "urals", "brent", "wti", "coal", "energy price", "commodity"}) {
		return "worldbank_commodity"
	}
	if domain == "energy" && !containsAny(combined, []string{"european", "eu ", "germany", "german"}) {
		return "worldbank_commodity"
	}

	if containsAny(combined, []string{"us ", "united states", "american", "federal", "dollar", "gdp", "inflation", "unemployment", "interest rate", "trade balance", "manufacturing employment"}) {
		return "fred"
	}

	if registry.MatchCountry(combined) != "" &&
		!containsAny(combined, []string{"oil", "crude", "energy", "gas", "coal", "petroleum", "urals"}) {
		return "worldbank"
	}
	if domain == "economics" {
		return "fred"
	}

	return "skip"
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
