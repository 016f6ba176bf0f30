package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/registry"
)

func testClient() *Client {
	return NewClient(model.HTTPConfig{
		Timeout:     5 * time.Second,
		UserAgent:   "clearview-test",
		RatePerHost: 100,
		RateBurst:   100,
	})
}

func TestFREDFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("series_id") != "UNRATE" {
			t.Errorf("series_id = %s", r.URL.Query().Get("series_id"))
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("api_key missing")
		}
		fmt.Fprint(w, `{"observations":[
			{"date":"2026-07-01","value":"."},
			{"date":"2026-06-01","value":"4.1"},
			{"date":"2026-05-01","value":"4.2"},
			{"date":"2026-04-01","value":"4.2"},
			{"date":"2026-03-01","value":"4.3"}
		]}`)
	}))
	defer srv.Close()

	fred := NewFRED(testClient(), "test-key")
	fred.BaseURL = srv.URL

	obs := fred.Fetch(context.Background(), "UNRATE", "US Unemployment Rate (%)")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	// "." rows are skipped, so the latest value is the June one
	if obs.LatestValue != "4.1" || obs.LatestDate != "2026-06-01" {
		t.Errorf("latest = %s @ %s", obs.LatestValue, obs.LatestDate)
	}
	if len(obs.RecentValues) != 3 {
		t.Errorf("recent values = %d, want 3", len(obs.RecentValues))
	}
	if obs.SeriesLabel != "US Unemployment Rate (%)" {
		t.Errorf("label = %s", obs.SeriesLabel)
	}
}

func TestFREDNoKey(t *testing.T) {
	fred := NewFRED(testClient(), "")
	if fred.Configured() {
		t.Error("Configured() = true without a key")
	}
	obs := fred.Fetch(context.Background(), "UNRATE", "label")
	if obs.Available {
		t.Error("expected unavailable")
	}
	if obs.Error != "FRED API key not configured" {
		t.Errorf("error = %q", obs.Error)
	}
}

func TestFREDAllMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"observations":[{"date":"2026-07-01","value":"."}]}`)
	}))
	defer srv.Close()

	fred := NewFRED(testClient(), "k")
	fred.BaseURL = srv.URL
	obs := fred.Fetch(context.Background(), "X", "x")
	if obs.Available {
		t.Error("expected unavailable when every row is missing")
	}
}

func TestFREDServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fred := NewFRED(testClient(), "k")
	fred.BaseURL = srv.URL
	obs := fred.Fetch(context.Background(), "X", "x")
	if obs.Available {
		t.Error("expected unavailable on 502")
	}
	if obs.Error == "" {
		t.Error("error message empty")
	}
}

func TestWorldBankFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"page":1},
			[
				{"date":"2024","value":null,"country":{"value":"Germany"}},
				{"date":"2023","value":-0.3,"country":{"value":"Germany"}},
				{"date":"2022","value":1.8,"country":{"value":"Germany"}},
				{"date":"2021","value":3.2,"country":{"value":"Germany"}}
			]
		]`)
	}))
	defer srv.Close()

	wb := NewWorldBank(testClient())
	wb.BaseURL = srv.URL

	obs := wb.Fetch(context.Background(), "DE", "gdp_growth")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	if obs.Country != "Germany" {
		t.Errorf("country = %s", obs.Country)
	}
	if obs.Indicator != "GDP Growth Rate (%)" {
		t.Errorf("indicator = %s", obs.Indicator)
	}
	// null 2024 row is skipped
	if obs.LatestDate != "2023" || obs.LatestValue != "-0.3" {
		t.Errorf("latest = %s @ %s", obs.LatestValue, obs.LatestDate)
	}
}

func TestWorldBankUnknownIndicator(t *testing.T) {
	wb := NewWorldBank(testClient())
	obs := wb.Fetch(context.Background(), "DE", "no_such_indicator")
	if obs.Available {
		t.Error("expected unavailable")
	}
}

func TestCommodityFallsBackToPinkSheet(t *testing.T) {
	// FRED tier errors; the Pink Sheet tier must answer.
	fredSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer fredSrv.Close()

	wbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"page":1},
			[
				{"date":"2026M06","value":78.4,"country":{"value":"World"}},
				{"date":"2026M05","value":80.1,"country":{"value":"World"}}
			]
		]`)
	}))
	defer wbSrv.Close()

	fred := NewFRED(testClient(), "k")
	fred.BaseURL = fredSrv.URL
	commodity := NewCommodity(testClient(), fred)
	commodity.WBBaseURL = wbSrv.URL

	obs := commodity.Fetch(context.Background(), "oil_brent")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	if obs.LatestValue != "78.4" {
		t.Errorf("latest = %s", obs.LatestValue)
	}
}

func TestCommodityWithoutFREDKey(t *testing.T) {
	wbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"page":1},[{"date":"2026M06","value":2.9,"country":{"value":"World"}}]]`)
	}))
	defer wbSrv.Close()

	commodity := NewCommodity(testClient(), NewFRED(testClient(), ""))
	commodity.WBBaseURL = wbSrv.URL

	obs := commodity.Fetch(context.Background(), "gas")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
}

func TestRESTCountriesFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{
			"name":{"common":"Germany"},
			"capital":["Berlin"],
			"population":83200000,
			"region":"Europe",
			"subregion":"Western Europe",
			"area":357022
		}]`)
	}))
	defer srv.Close()

	rc := NewRESTCountries(testClient())
	rc.BaseURL = srv.URL

	obs := rc.Fetch(context.Background(), "germany")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	if obs.Capital != "Berlin" || obs.Population != 83200000 {
		t.Errorf("capital = %s, population = %d", obs.Capital, obs.Population)
	}
	if obs.Region != "Europe" || obs.Subregion != "Western Europe" {
		t.Errorf("region = %s / %s", obs.Region, obs.Subregion)
	}
}

func TestRESTCountriesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	rc := NewRESTCountries(testClient())
	rc.BaseURL = srv.URL
	obs := rc.Fetch(context.Background(), "atlantis")
	if obs.Available {
		t.Error("expected unavailable")
	}
}

func TestComtradeFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("reporterCode") != "842" {
			t.Errorf("reporterCode = %s", q.Get("reporterCode"))
		}
		if q.Get("cmdCode") != "1001" {
			t.Errorf("cmdCode = %s", q.Get("cmdCode"))
		}
		fmt.Fprint(w, `{"data":[
			{"partnerCode":356,"partnerDesc":"India","flowDesc":"Import","primaryValue":5000000},
			{"partnerCode":124,"partnerDesc":"Canada","flowDesc":"Import","primaryValue":9000000}
		]}`)
	}))
	defer srv.Close()

	ct := NewComtrade(testClient())
	ct.BaseURL = srv.URL

	q := registry.TradeQuery{Reporter: "US", Partner: "IN", Commodity: "wheat"}
	obs := ct.Fetch(context.Background(), q, "2023")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	// Partner filter keeps only the India row
	if obs.TotalValueUSD != 5000000 {
		t.Errorf("total = %v", obs.TotalValueUSD)
	}
	if len(obs.TopFlows) != 1 || obs.TopFlows[0].Partner != "India" {
		t.Errorf("flows = %+v", obs.TopFlows)
	}
}

func TestComtradeUnknownPartnerKeepsAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"partnerCode":356,"partnerDesc":"India","flowDesc":"Import","primaryValue":5000000},
			{"partnerCode":124,"partnerDesc":"Canada","flowDesc":"Import","primaryValue":9000000}
		]}`)
	}))
	defer srv.Close()

	ct := NewComtrade(testClient())
	ct.BaseURL = srv.URL

	q := registry.TradeQuery{Reporter: "US", Partner: "WLD", Commodity: "wheat"}
	obs := ct.Fetch(context.Background(), q, "")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	if obs.TotalValueUSD != 14000000 {
		t.Errorf("total = %v", obs.TotalValueUSD)
	}
	// Flows sorted by value descending
	if obs.TopFlows[0].Partner != "Canada" {
		t.Errorf("top flow = %s", obs.TopFlows[0].Partner)
	}
}

func TestComtradeUnknownReporter(t *testing.T) {
	ct := NewComtrade(testClient())
	q := registry.TradeQuery{Reporter: "XX", Partner: "WLD", Commodity: "wheat"}
	obs := ct.Fetch(context.Background(), q, "2023")
	if obs.Available {
		t.Error("expected unavailable for unknown reporter")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.1, "4.1"},
		{-0.3, "-0.3"},
		{78.4, "78.4"},
		{3, "3"},
		{1.2345, "1.2345"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEurostatFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("geo") != "EU" {
			t.Errorf("geo = %s", r.URL.Query().Get("geo"))
		}
		fmt.Fprint(w, `{
			"value":{"0":55.5,"1":57.1,"3":58.9},
			"dimension":{"time":{"category":{"index":{"2022":0,"2023":1,"2024":2,"2025":3}}}}
		}`)
	}))
	defer srv.Close()

	es := NewEurostat(testClient())
	es.BaseURL = srv.URL

	obs := es.Fetch(context.Background(), registry.MatchEurostatDataset("energy import dependency"))
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	// Index 2 has no value (suppressed), so the latest period is 2025
	if obs.LatestDate != "2025" || obs.LatestValue != "58.9" {
		t.Errorf("latest = %s @ %s", obs.LatestValue, obs.LatestDate)
	}
	if len(obs.RecentValues) != 3 {
		t.Errorf("recent values = %d", len(obs.RecentValues))
	}
}

func TestEurostatEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":{},"dimension":{"time":{"category":{"index":{}}}}}`)
	}))
	defer srv.Close()

	es := NewEurostat(testClient())
	es.BaseURL = srv.URL
	obs := es.Fetch(context.Background(), registry.MatchEurostatDataset("gas"))
	if obs.Available {
		t.Error("expected unavailable")
	}
}

func TestEIAFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"data":[
			{"period":"2026-06","value":null},
			{"period":"2026-05","value":412.7},
			{"period":"2026-04","value":"398.2"}
		]}}`)
	}))
	defer srv.Close()

	eia := NewEIA(testClient(), "k")
	eia.BaseURL = srv.URL

	obs := eia.Fetch(context.Background(), "NG.N9130US2.M", "US LNG Exports (Bcf/month)")
	if !obs.Available {
		t.Fatalf("unavailable: %s", obs.Error)
	}
	// Null row skipped; numeric and string values both decode
	if obs.LatestValue != "412.7" || obs.LatestDate != "2026-05" {
		t.Errorf("latest = %s @ %s", obs.LatestValue, obs.LatestDate)
	}
	if len(obs.RecentValues) != 2 || obs.RecentValues[1].Value != "398.2" {
		t.Errorf("recent = %+v", obs.RecentValues)
	}
}

func TestEIANoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"data":[]}}`)
	}))
	defer srv.Close()

	eia := NewEIA(testClient(), "")
	eia.BaseURL = srv.URL
	obs := eia.Fetch(context.Background(), "X", "x")
	if obs.Available {
		t.Error("expected unavailable")
	}
}
