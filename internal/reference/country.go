package reference

// IncomeLevel is the World Bank income classification for a country.
type IncomeLevel string

const (
	IncomeHigh        IncomeLevel = "high"
	IncomeUpperMiddle IncomeLevel = "upper_middle"
	IncomeLowerMiddle IncomeLevel = "lower_middle"
	IncomeLow         IncomeLevel = "low"
)

// Display returns a human-readable label for an income level.
func (l IncomeLevel) Display() string {
	switch l {
	case IncomeHigh:
		return "High Income"
	case IncomeUpperMiddle:
		return "Upper Middle Income"
	case IncomeLowerMiddle:
		return "Lower Middle Income"
	case IncomeLow:
		return "Low Income"
	}
	return string(l)
}

// Country describes a single economy tracked by the service.
// Code is the ISO 3166-1 alpha-3 code; FREDCode is the two-letter code used
// by FRED series identifiers. OECDMember gates queries against the OECD API.
type Country struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	SubRegion   string      `json:"subRegion"`
	IncomeLevel IncomeLevel `json:"incomeLevel"`
	Currency    string      `json:"currency"`
	Flag        string      `json:"flag"`
	FREDCode    string      `json:"-"`
	OECDMember  bool        `json:"oecdMember"`
}

// AggregateCode identifies the European Union aggregate entry, which is
// excluded from rankings and comparisons.
const AggregateCode = "EUU"

// CountryByCode returns the country for an ISO alpha-3 code, or nil.
func CountryByCode(code string) *Country {
	if c, ok := countries[code]; ok {
		return &c
	}
	return nil
}

// CountryCount returns the number of real countries, excluding aggregates.
func CountryCount() int {
	n := 0
	for code := range countries {
		if code != AggregateCode {
			n++
		}
	}
	return n
}

// AllCountryCodes returns every catalog code in region-grouping order.
func AllCountryCodes() []string {
	codes := make([]string, 0, len(countries))
	for _, region := range RegionNames() {
		codes = append(codes, regions[region]...)
	}
	codes = append(codes, AggregateCode)
	return codes
}

// CountriesForRegion returns the countries in a regional grouping, in the
// grouping's canonical order. Returns nil for an unknown region.
func CountriesForRegion(region string) []Country {
	codes, ok := regions[region]
	if !ok {
		return nil
	}
	result := make([]Country, 0, len(codes))
	for _, code := range codes {
		if c, found := countries[code]; found {
			result = append(result, c)
		}
	}
	return result
}

// RegionNames returns all regional grouping names in display order.
func RegionNames() []string {
	return regionOrder
}

// IsRegion reports whether name is a known regional grouping.
func IsRegion(name string) bool {
	_, ok := regions[name]
	return ok
}
