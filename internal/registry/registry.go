// Package registry holds the static tables mapping domain concepts to
// provider-specific identifiers. Tables are loaded once, read-only, and
// lookups are pure functions: case-insensitive substring containment over
// the claim's combined text, first matching entry wins (insertion order is
// part of the contract and covered by tests).
package registry

import "strings"

// SeriesEntry maps a keyword tuple to one provider series or dataset
type SeriesEntry struct {
	Keywords []string
	ID       string
	Label    string
}

// MatchSeries returns the first entry with any keyword contained in text,
// or nil when nothing matches.
func MatchSeries(table []SeriesEntry, text string) *SeriesEntry {
	lower := strings.ToLower(text)
	for i := range table {
		for _, k := range table[i].Keywords {
			if strings.Contains(lower, k) {
				return &table[i]
			}
		}
	}
	return nil
}

// containsAny reports whether text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// MatchCountry returns the ISO2 code of the first country name found in
// text, or "" when none is mentioned.
func MatchCountry(text string) string {
	lower := strings.ToLower(text)
	for _, c := range countryCodes {
		if strings.Contains(lower, c.Name) {
			return c.Code
		}
	}
	return ""
}

// MatchCountryName returns the first country name found in text, suitable
// for a country-facts lookup. Empty when none is mentioned.
func MatchCountryName(text string) string {
	lower := strings.ToLower(text)
	for _, c := range countryCodes {
		if strings.Contains(lower, c.Name) {
			return c.Name
		}
	}
	return ""
}

// MatchIndicator maps description text to a World Bank indicator key.
// Falls back to gdp_growth, the safe default for economic claims.
func MatchIndicator(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "gdp growth", "growth rate", "economic growth"):
		return "gdp_growth"
	case containsAny(lower, "gdp", "economy size", "output"):
		return "gdp_current_usd"
	case containsAny(lower, "inflation", "price index"):
		return "inflation_cpi"
	case containsAny(lower, "unemployment", "employment"):
		return "unemployment"
	case containsAny(lower, "export"):
		return "exports_pct_gdp"
	case containsAny(lower, "energy import", "oil import", "crude import"):
		return "energy_imports"
	case containsAny(lower, "import"):
		return "imports_pct_gdp"
	case containsAny(lower, "oil rent", "oil revenue", "petro"):
		return "oil_rents"
	case containsAny(lower, "trade"):
		return "trade_pct_gdp"
	case containsAny(lower, "military", "defence", "defense"):
		return "military_expend"
	case containsAny(lower, "debt", "deficit"):
		return "debt_pct_gdp"
	case containsAny(lower, "population", "people", "demographic"):
		return "population"
	}
	return "gdp_growth"
}

// Indicator resolves a World Bank indicator key to its code and label
func Indicator(key string) (id, label string, ok bool) {
	ind, ok := wbIndicators[key]
	return ind.ID, ind.Label, ok
}

// MatchCommodity maps description text to a commodity key for the price
// connectors. Brent is the default for generic energy language.
func MatchCommodity(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "brent"):
		return "oil_brent"
	case containsAny(lower, "oil", "crude", "petroleum", "urals", "energy"):
		return "oil_brent"
	case containsAny(lower, "gas", "natural gas", "lng"):
		return "gas"
	case strings.Contains(lower, "coal"):
		return "coal"
	case strings.Contains(lower, "gold"):
		return "gold"
	case containsAny(lower, "wheat", "grain"):
		return "wheat"
	}
	return "oil_brent"
}

// CommodityFREDSeries resolves a commodity key to its FRED series, used by
// the fast tier of the commodity connector.
func CommodityFREDSeries(key string) (id, label string, ok bool) {
	s, ok := commodityFRED[key]
	return s.ID, s.Label, ok
}

// CommodityWBSeries resolves a commodity key to its World Bank Pink Sheet
// indicator. Unknown keys fall back to Brent.
func CommodityWBSeries(key string) (id, label string) {
	s, ok := commodityWB[key]
	if !ok {
		s = commodityWB["oil_brent"]
	}
	return s.ID, s.Label
}

// EurostatDataset describes one Eurostat dataset plus its fixed filters
type EurostatDataset struct {
	Dataset string
	Filters map[string]string
	Label   string
}

// MatchEurostatDataset picks the Eurostat dataset for a claim. Precedence is
// fixed: electricity prices, manufacturing output, energy dependency,
// Russian gas, then the gas-supply default.
func MatchEurostatDataset(text string) EurostatDataset {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "electricity", "power price", "industrial price"):
		return eurostatDatasets["eu_electricity_price"]
	case containsAny(lower, "manufactur", "industrial output", "factory", "production index"):
		return eurostatDatasets["de_manufacturing"]
	case containsAny(lower, "depend", "import share", "import percent", "supply share"):
		return eurostatDatasets["eu_energy_dependency"]
	case containsAny(lower, "russia", "russian"):
		return eurostatDatasets["eu_gas_russia"]
	}
	return eurostatDatasets["eu_gas_supply"]
}

// TradeQuery is a resolved bilateral-trade selector
type TradeQuery struct {
	Reporter  string // ISO2, defaults to US
	Partner   string // ISO2 or WLD
	Commodity string // Key into the trade commodity table
}

// ParseTradeQuery extracts reporter, partner and commodity from description
// text. Partner is detected via "from X" / "to X" / "with X" phrasing.
func ParseTradeQuery(text string) TradeQuery {
	lower := strings.ToLower(text)

	q := TradeQuery{Reporter: "US", Partner: "WLD", Commodity: "total_trade"}
	if code := MatchCountry(lower); code != "" {
		q.Reporter = code
	}
	for _, c := range countryCodes {
		if containsAny(lower, "from "+c.Name, "to "+c.Name, "with "+c.Name) {
			q.Partner = c.Code
			break
		}
	}

	switch {
	case containsAny(lower, "oil", "crude", "petroleum"):
		q.Commodity = "crude_oil"
	case containsAny(lower, "gas", "natural gas", "lng"):
		q.Commodity = "natural_gas"
	case strings.Contains(lower, "coal"):
		q.Commodity = "coal"
	case containsAny(lower, "wheat", "grain", "food"):
		q.Commodity = "wheat"
	case containsAny(lower, "weapons", "arms", "military"):
		q.Commodity = "arms_weapons"
	case containsAny(lower, "semiconductor", "chips"):
		q.Commodity = "semiconductors"
	case containsAny(lower, "steel", "iron"):
		q.Commodity = "iron_steel"
	}
	return q
}

// TradeReporterCode resolves an ISO2 code to the numeric reporter code used
// by the trade API. Empty when the country is not in the table.
func TradeReporterCode(iso2 string) string {
	return tradeReporterCodes[strings.ToUpper(iso2)]
}

// TradeCommodityCode resolves a commodity key to its HS code. Unknown keys
// pass through unchanged so callers may supply raw HS codes.
func TradeCommodityCode(key string) string {
	if code, ok := tradeCommodityCodes[key]; ok {
		return code
	}
	return key
}
