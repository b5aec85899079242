package chat

import (
	"strings"

	"macropilot.econdata.org/internal/reference"
)

// Intent types resolved from a user query.
const (
	IntentGeneral       = "general"
	IntentSingleCountry = "single_country"
	IntentComparison    = "comparison"
	IntentRanking       = "ranking"
	IntentRegional      = "regional"
)

// Intent captures what a query is asking for so the engine can fetch the
// right slice of data before prompting the model.
type Intent struct {
	Type         string   `json:"type"`
	Countries    []string `json:"countries"`
	Indicators   []string `json:"indicators"`
	IsComparison bool     `json:"isComparison"`
	IsRanking    bool     `json:"isRanking"`
	IsRegional   bool     `json:"isRegional"`
	Region       string   `json:"region,omitempty"`
}

type countryAlias struct {
	alias string
	code  string
}

// countryAliases map informal country references to ISO codes. Kept as a
// slice so detection order, and therefore fetch order, is stable.
var countryAliases = []countryAlias{
	{"usa", "USA"}, {"us", "USA"}, {"america", "USA"}, {"united states", "USA"},
	{"uk", "GBR"}, {"britain", "GBR"}, {"england", "GBR"}, {"united kingdom", "GBR"},
	{"china", "CHN"}, {"prc", "CHN"},
	{"india", "IND"},
	{"japan", "JPN"},
	{"germany", "DEU"},
	{"france", "FRA"},
	{"brazil", "BRA"},
	{"russia", "RUS"},
	{"south korea", "KOR"}, {"korea", "KOR"},
	{"australia", "AUS"},
	{"canada", "CAN"},
	{"mexico", "MEX"},
	{"indonesia", "IDN"},
	{"saudi", "SAU"}, {"saudi arabia", "SAU"},
	{"turkey", "TUR"}, {"turkiye", "TUR"},
	{"south africa", "ZAF"},
	{"nigeria", "NGA"},
	{"egypt", "EGY"},
	{"eu", "EUU"}, {"european union", "EUU"}, {"europe", "EUU"},
	{"uae", "ARE"}, {"emirates", "ARE"},
	{"vietnam", "VNM"},
	{"thailand", "THA"},
	{"malaysia", "MYS"},
	{"singapore", "SGP"},
	{"philippines", "PHL"},
	{"pakistan", "PAK"},
	{"bangladesh", "BGD"},
	{"sri lanka", "LKA"},
	{"nepal", "NPL"},
	{"argentina", "ARG"},
	{"chile", "CHL"},
	{"colombia", "COL"},
	{"peru", "PER"},
	{"venezuela", "VEN"},
	{"poland", "POL"},
	{"czech", "CZE"}, {"czech republic", "CZE"},
	{"hungary", "HUN"},
	{"romania", "ROU"},
	{"ukraine", "UKR"},
	{"sweden", "SWE"},
	{"norway", "NOR"},
	{"denmark", "DNK"},
	{"finland", "FIN"},
	{"netherlands", "NLD"}, {"holland", "NLD"},
	{"belgium", "BEL"},
	{"switzerland", "CHE"},
	{"austria", "AUT"},
	{"ireland", "IRL"},
	{"italy", "ITA"},
	{"spain", "ESP"},
	{"portugal", "PRT"},
	{"greece", "GRC"},
	{"israel", "ISR"},
	{"iran", "IRN"},
	{"iraq", "IRQ"},
	{"qatar", "QAT"},
	{"kuwait", "KWT"},
	{"morocco", "MAR"},
	{"algeria", "DZA"},
	{"kenya", "KEN"},
	{"ethiopia", "ETH"},
	{"ghana", "GHA"},
	{"tanzania", "TZA"},
	{"new zealand", "NZL"},
}

// metricKeywords map indicator codes to the phrases users reach for.
var metricKeywords = map[string][]string{
	"gdp_growth":            {"gdp", "growth", "economic growth", "economy growing", "gdp growth"},
	"inflation":             {"inflation", "cpi", "prices", "price level", "cost of living", "inflationary"},
	"unemployment":          {"unemployment", "jobless", "jobs", "labor", "employment", "job market", "unemployed"},
	"interest_rate":         {"interest rate", "rates", "monetary policy", "central bank", "fed", "ecb", "rbi", "policy rate", "benchmark rate"},
	"gdp_per_capita":        {"gdp per capita", "income level", "per capita", "wealth per person", "income per person"},
	"current_account":       {"current account", "external balance", "balance of payments", "external position"},
	"government_debt":       {"debt", "government debt", "public debt", "fiscal debt", "debt to gdp", "national debt"},
	"fdi_inflows":           {"fdi", "foreign direct investment", "foreign investment", "investment inflows"},
	"exchange_rate_change":  {"exchange rate", "currency", "forex", "fx", "currency movement", "appreciation", "depreciation"},
	"industrial_production": {"industrial production", "manufacturing", "industrial output", "factory output", "industry"},
	"consumer_confidence":   {"consumer confidence", "consumer sentiment", "household sentiment", "consumer outlook"},
	"trade_balance":         {"trade balance", "trade surplus", "trade deficit", "exports", "imports", "trade position"},
}

var comparisonWords = []string{"compare", "vs", "versus", "difference", "between", "comparison"}

var rankingWords = []string{"ranking", "top", "highest", "lowest", "best", "worst", "rank", "leading"}

// DetectIntent classifies a free-text query into an intent with the
// countries, indicators and regions it mentions.
func DetectIntent(query string) Intent {
	lower := strings.ToLower(query)
	words := tokenSet(lower)

	intent := Intent{
		Type:       IntentGeneral,
		Countries:  []string{},
		Indicators: []string{},
	}

	for _, code := range reference.IndicatorCodes() {
		for _, kw := range metricKeywords[code] {
			if matches(lower, words, kw) {
				intent.Indicators = append(intent.Indicators, code)
				break
			}
		}
	}
	if len(intent.Indicators) == 0 {
		intent.Indicators = []string{"gdp_growth"}
	}

	seen := make(map[string]bool)
	for _, code := range reference.AllCountryCodes() {
		country := reference.CountryByCode(code)
		if matches(lower, words, strings.ToLower(country.Name)) && !seen[code] {
			seen[code] = true
			intent.Countries = append(intent.Countries, code)
		}
	}
	for _, ca := range countryAliases {
		if matches(lower, words, ca.alias) && !seen[ca.code] {
			seen[ca.code] = true
			intent.Countries = append(intent.Countries, ca.code)
		}
	}

	for _, w := range comparisonWords {
		if matches(lower, words, w) {
			intent.IsComparison = true
			break
		}
	}
	for _, w := range rankingWords {
		if matches(lower, words, w) {
			intent.IsRanking = true
			break
		}
	}

	for _, region := range reference.RegionNames() {
		regionLower := strings.ToLower(region)
		flat := strings.ReplaceAll(regionLower, " - ", " ")
		if strings.Contains(lower, regionLower) || strings.Contains(lower, flat) {
			intent.IsRegional = true
			intent.Region = region
			break
		}
	}

	switch {
	case intent.IsComparison && len(intent.Countries) >= 2:
		intent.Type = IntentComparison
	case intent.IsRanking:
		intent.Type = IntentRanking
	case intent.IsRegional && intent.Region != "":
		intent.Type = IntentRegional
	case len(intent.Countries) > 0:
		intent.Type = IntentSingleCountry
	}

	return intent
}

// matches reports whether the phrase appears in the query. Single words
// must match a whole token so "us" does not fire inside "australia";
// multi-word phrases use substring matching.
func matches(lower string, words map[string]bool, phrase string) bool {
	if strings.ContainsRune(phrase, ' ') {
		return strings.Contains(lower, phrase)
	}
	return words[phrase]
}

func tokenSet(lower string) map[string]bool {
	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '_'
	})
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
