package registry

// FREDSeries maps economic topics to FRED series IDs. Order matters: the
// first matching tuple wins, so narrower phrases sit above their prefixes
// ("gdp growth" before "gdp").
var FREDSeries = []SeriesEntry{
	{Keywords: []string{"gdp growth", "economic growth", "gdp rate"}, ID: "A191RL1Q225SBEA", Label: "US Real GDP Growth Rate (%)"},
	{Keywords: []string{"gdp", "gross domestic product", "economy size"}, ID: "GDP", Label: "US Real GDP ($B, Chained 2017)"},
	{Keywords: []string{"inflation", "cpi", "consumer price", "price level"}, ID: "CPIAUCSL", Label: "US Consumer Price Index"},
	{Keywords: []string{"unemployment", "jobless", "jobs"}, ID: "UNRATE", Label: "US Unemployment Rate (%)"},
	{Keywords: []string{"interest rate", "federal funds", "fed rate"}, ID: "FEDFUNDS", Label: "US Federal Funds Rate (%)"},
	{Keywords: []string{"trade balance", "trade deficit", "trade surplus"}, ID: "BOPGSTB", Label: "US Trade Balance ($M)"},
	{Keywords: []string{"wti", "west texas", "oil price us"}, ID: "DCOILWTICO", Label: "WTI Crude Oil Price ($/barrel)"},
	{Keywords: []string{"brent", "brent crude", "global oil price"}, ID: "DCOILBRENTEU", Label: "Brent Crude Oil Price ($/barrel)"},
	{Keywords: []string{"dollar", "usd", "dollar index"}, ID: "DTWEXBGS", Label: "US Dollar Index (Broad)"},
	{Keywords: []string{"national debt", "government debt", "federal debt"}, ID: "GFDEBTN", Label: "US National Debt ($M)"},
	{Keywords: []string{"money supply", "m2", "monetary"}, ID: "M2SL", Label: "US M2 Money Supply ($B)"},
	{Keywords: []string{"exports", "export"}, ID: "EXPGS", Label: "US Exports of Goods & Services ($B)"},
	{Keywords: []string{"imports", "import"}, ID: "IMPGS", Label: "US Imports of Goods & Services ($B)"},
	{Keywords: []string{"oil price", "crude price", "petroleum price"}, ID: "DCOILBRENTEU", Label: "Brent Crude Oil Price ($/barrel)"},
	{Keywords: []string{"urals", "russian oil", "russian crude"}, ID: "DCOILBRENTEU", Label: "Brent Crude Oil Price ($/barrel, proxy for Urals)"},
	{Keywords: []string{"energy price", "commodity price"}, ID: "DCOILWTICO", Label: "WTI Crude Oil Price ($/barrel)"},
	{Keywords: []string{"sanctions", "russian export", "oil revenue"}, ID: "DCOILBRENTEU", Label: "Brent Crude Oil Price ($/barrel)"},
}

// EIASeries maps bilateral energy-trade topics to EIA v2 series IDs
var EIASeries = []SeriesEntry{
	{Keywords: []string{"india russian oil", "india russia crude", "indian russian crude"}, ID: "PET.MTTIM_NUS-NIN_1.M", Label: "US Petroleum Trade — India context (monthly)"},
	{Keywords: []string{"us lng export", "american lng", "us liquefied natural gas export"}, ID: "NG.N9130US2.M", Label: "US LNG Exports (Bcf/month)"},
	{Keywords: []string{"us natural gas export", "us gas export"}, ID: "NG.N9130US2.M", Label: "US Natural Gas Exports (Bcf/month)"},
	{Keywords: []string{"europe lng", "european lng import"}, ID: "NG.N9132EU2.M", Label: "US LNG Exports to Europe (Bcf/month)"},
}

// DefaultEIASeries is the fallback when no EIA keyword tuple matches an
// energy-trade claim.
var DefaultEIASeries = SeriesEntry{
	Keywords: nil, ID: "NG.N9130US2.M", Label: "US LNG Exports (Bcf/month)",
}

type wbIndicator struct {
	ID    string
	Label string
}

var wbIndicators = map[string]wbIndicator{
	"gdp_growth":      {"NY.GDP.MKTP.KD.ZG", "GDP Growth Rate (%)"},
	"gdp_current_usd": {"NY.GDP.MKTP.CD", "GDP (Current USD)"},
	"inflation_cpi":   {"FP.CPI.TOTL.ZG", "Inflation Rate (%)"},
	"unemployment":    {"SL.UEM.TOTL.ZS", "Unemployment Rate (%)"},
	"exports_pct_gdp": {"NE.EXP.GNFS.ZS", "Exports (% of GDP)"},
	"imports_pct_gdp": {"NE.IMP.GNFS.ZS", "Imports (% of GDP)"},
	"military_expend": {"MS.MIL.XPND.GD.ZS", "Military Expenditure (% of GDP)"},
	"debt_pct_gdp":    {"GC.DOD.TOTL.GD.ZS", "Government Debt (% of GDP)"},
	"population":      {"SP.POP.TOTL", "Total Population"},
	"energy_imports":  {"EG.IMP.CONS.ZS", "Energy Imports (% of energy use)"},
	"oil_rents":       {"NY.GDP.PETR.RT.ZS", "Oil Rents (% of GDP)"},
	"trade_pct_gdp":   {"NE.TRD.GNFS.ZS", "Trade (% of GDP)"},
}

type countryCode struct {
	Name string
	Code string
}

// countryCodes is ordered: multi-word names before substrings of themselves
// ("south korea" before "korea", "united states" before "us").
var countryCodes = []countryCode{
	{"united states", "US"}, {"usa", "US"}, {"america", "US"},
	{"china", "CN"}, {"prc", "CN"},
	{"russia", "RU"},
	{"india", "IN"},
	{"germany", "DE"},
	{"france", "FR"},
	{"united kingdom", "GB"}, {"britain", "GB"},
	{"japan", "JP"},
	{"brazil", "BR"},
	{"canada", "CA"},
	{"australia", "AU"},
	{"south korea", "KR"}, {"north korea", "KP"}, {"korea", "KR"},
	{"saudi arabia", "SA"},
	{"iran", "IR"},
	{"turkey", "TR"},
	{"ukraine", "UA"},
	{"israel", "IL"},
	{"pakistan", "PK"},
	{"indonesia", "ID"},
	{"mexico", "MX"},
	{"italy", "IT"},
	{"spain", "ES"},
	{"netherlands", "NL"},
	{"poland", "PL"},
	{"taiwan", "TW"},
	{"venezuela", "VE"},
	{"nigeria", "NG"},
	{"south africa", "ZA"},
	{"egypt", "EG"},
	{"ethiopia", "ET"},
}

var commodityFRED = map[string]wbIndicator{
	"oil":       {"DCOILWTICO", "WTI Crude Oil Price ($/barrel)"},
	"oil_brent": {"DCOILBRENTEU", "Brent Crude Oil Price ($/barrel)"},
	"gas":       {"MHHNGSP", "Natural Gas Price ($/mmbtu)"},
}

var commodityWB = map[string]wbIndicator{
	"oil":       {"POILWTIUSDM", "Crude Oil (WTI), $/barrel"},
	"oil_brent": {"POILBREUSDM", "Crude Oil (Brent), $/barrel"},
	"gas":       {"PNGASUSDM", "Natural Gas (US), $/mmbtu"},
	"coal":      {"PCOALAUUSDM", "Coal (Australia), $/mt"},
	"gold":      {"PGOLDUSDM", "Gold, $/troy oz"},
	"wheat":     {"PWHEAMTUSDM", "Wheat (US HRW), $/mt"},
}

var eurostatDatasets = map[string]EurostatDataset{
	"eu_gas_supply":        {Dataset: "nrg_t_gasgov", Filters: map[string]string{"geo": "EU"}, Label: "EU Natural Gas Supply by Source (TJ)"},
	"eu_gas_russia":        {Dataset: "nrg_t_gasgov", Filters: map[string]string{"geo": "EU", "partner": "RU"}, Label: "EU Gas Imports from Russia (TJ)"},
	"eu_electricity_price": {Dataset: "nrg_pc_205", Filters: map[string]string{"geo": "DE", "consom": "4161903"}, Label: "Germany Industrial Electricity Price (€/kWh)"},
	"eu_energy_dependency": {Dataset: "nrg_ind_id", Filters: map[string]string{"geo": "EU"}, Label: "EU Energy Import Dependency (%)"},
	"de_manufacturing":     {Dataset: "sts_inpr_m", Filters: map[string]string{"geo": "DE", "nace_r2": "C"}, Label: "Germany Manufacturing Output Index"},
}

// tradeReporterCodes maps ISO2 to the numeric reporter codes the trade API
// expects.
var tradeReporterCodes = map[string]string{
	"US": "842", "CN": "156", "RU": "643", "IN": "356", "DE": "276",
	"FR": "251", "GB": "826", "JP": "392", "BR": "76", "CA": "124",
	"AU": "36", "KR": "410", "SA": "682", "IR": "364", "TR": "792",
	"UA": "804", "NG": "566", "ZA": "710", "EG": "818", "NL": "528",
}

var tradeCommodityCodes = map[string]string{
	"crude_oil":          "2709",
	"natural_gas":        "2711",
	"petroleum_products": "2710",
	"coal":               "2701",
	"iron_steel":         "72",
	"wheat":              "1001",
	"arms_weapons":       "93",
	"semiconductors":     "8542",
	"vehicles":           "87",
	"total_trade":        "TOTAL",
}
