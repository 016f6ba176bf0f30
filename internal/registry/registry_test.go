package registry

import "testing"

func TestMatchSeriesOrdering(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"narrow phrase wins over prefix", "gdp growth slowed last quarter", "A191RL1Q225SBEA"},
		{"bare gdp falls to level series", "gdp reached a record high", "GDP"},
		{"unemployment", "the unemployment rate fell to 3.9%", "UNRATE"},
		{"brent before generic oil price", "brent crude traded above $90", "DCOILBRENTEU"},
		{"urals proxied to brent", "urals discount widened", "DCOILBRENTEU"},
		{"case insensitive", "INFLATION is cooling", "CPIAUCSL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := MatchSeries(FREDSeries, tt.text)
			if entry == nil {
				t.Fatal("no match")
			}
			if entry.ID != tt.want {
				t.Errorf("ID = %s, want %s", entry.ID, tt.want)
			}
		})
	}
}

func TestMatchSeriesNoMatch(t *testing.T) {
	if entry := MatchSeries(FREDSeries, "the weather was pleasant"); entry != nil {
		t.Errorf("expected nil, got %s", entry.ID)
	}
}

func TestMatchCountry(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"germany raised its defence budget", "DE"},
		{"United States exports rose", "US"},
		{"south korea chip production", "KR"},
		{"exports from north korea", "KP"},
		{"an unrelated sentence", ""},
	}
	for _, tt := range tests {
		if got := MatchCountry(tt.text); got != tt.want {
			t.Errorf("MatchCountry(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestMatchCountryTableOrder(t *testing.T) {
	// Two countries present: the one earlier in the table wins, regardless
	// of position in the text.
	if got := MatchCountry("egypt bought wheat from russia"); got != "RU" {
		t.Errorf("got %q, want RU (table order)", got)
	}
}

func TestMatchIndicator(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"gdp growth is slowing", "gdp_growth"},
		{"total gdp in dollars", "gdp_current_usd"},
		{"inflation above target", "inflation_cpi"},
		{"energy imports dependence", "energy_imports"},
		{"machine imports surged", "imports_pct_gdp"},
		{"military spending increased", "military_expend"},
		{"nothing economic here", "gdp_growth"}, // default
	}
	for _, tt := range tests {
		if got := MatchIndicator(tt.text); got != tt.want {
			t.Errorf("MatchIndicator(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIndicator(t *testing.T) {
	id, label, ok := Indicator("unemployment")
	if !ok || id != "SL.UEM.TOTL.ZS" || label == "" {
		t.Errorf("Indicator(unemployment) = %q, %q, %v", id, label, ok)
	}
	if _, _, ok := Indicator("no_such_key"); ok {
		t.Error("expected ok=false for unknown key")
	}
}

func TestMatchCommodity(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"brent prices jumped", "oil_brent"},
		{"crude shipments", "oil_brent"},
		{"lng terminal capacity", "gas"},
		{"coal consumption", "coal"},
		{"wheat futures", "wheat"},
		{"something else entirely", "oil_brent"}, // default
	}
	for _, tt := range tests {
		if got := MatchCommodity(tt.text); got != tt.want {
			t.Errorf("MatchCommodity(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestCommodityWBSeriesFallback(t *testing.T) {
	id, _ := CommodityWBSeries("unknown_commodity")
	if id != "POILBREUSDM" {
		t.Errorf("fallback = %s, want Brent", id)
	}
}

func TestMatchEurostatDataset(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"electricity price", "industrial electricity prices doubled", "nrg_pc_205"},
		{"manufacturing", "german manufacturing output declined", "sts_inpr_m"},
		{"dependency", "import share of energy supply", "nrg_ind_id"},
		{"russian gas", "pipeline gas from russia", "nrg_t_gasgov"},
		{"default gas supply", "european gas storage levels", "nrg_t_gasgov"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := MatchEurostatDataset(tt.text)
			if ds.Dataset != tt.want {
				t.Errorf("dataset = %s, want %s", ds.Dataset, tt.want)
			}
		})
	}

	// electricity outranks the russia keyword
	ds := MatchEurostatDataset("russian gas pushed electricity prices up")
	if ds.Dataset != "nrg_pc_205" {
		t.Errorf("precedence: dataset = %s, want nrg_pc_205", ds.Dataset)
	}
}

func TestParseTradeQuery(t *testing.T) {
	q := ParseTradeQuery("united states wheat imports from india")
	if q.Reporter != "US" {
		t.Errorf("reporter = %s, want US", q.Reporter)
	}
	if q.Partner != "IN" {
		t.Errorf("partner = %s, want IN", q.Partner)
	}
	if q.Commodity != "wheat" {
		t.Errorf("commodity = %s, want wheat", q.Commodity)
	}
}

func TestParseTradeQueryDefaults(t *testing.T) {
	q := ParseTradeQuery("trade volumes shifted")
	if q.Reporter != "US" || q.Partner != "WLD" || q.Commodity != "total_trade" {
		t.Errorf("defaults = %+v", q)
	}
}

func TestTradeCodes(t *testing.T) {
	if got := TradeReporterCode("ru"); got != "643" {
		t.Errorf("TradeReporterCode(ru) = %q", got)
	}
	if got := TradeReporterCode("XX"); got != "" {
		t.Errorf("unknown reporter = %q, want empty", got)
	}
	if got := TradeCommodityCode("crude_oil"); got != "2709" {
		t.Errorf("TradeCommodityCode(crude_oil) = %q", got)
	}
	// raw HS codes pass through
	if got := TradeCommodityCode("2711"); got != "2711" {
		t.Errorf("passthrough = %q", got)
	}
}
