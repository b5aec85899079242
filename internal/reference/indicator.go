package reference

import (
	"fmt"
	"strings"
)

// Polarity expresses whether higher values of an indicator are better,
// worse, or neither (policy rates, trade balances).
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityHigherBetter
	PolarityLowerBetter
)

// Indicator describes one tracked macroeconomic series and how each
// upstream source addresses it. An empty FREDSeriesTemplate, WorldBankCode
// or OECDDataset means the source does not carry the series.
type Indicator struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	DisplayName   string   `json:"displayName"`
	ShortName     string   `json:"shortName"`
	Unit          string   `json:"unit"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Polarity      Polarity `json:"-"`
	DecimalPlaces int      `json:"decimalPlaces"`
	Color         string   `json:"color"`

	FREDSeriesTemplate string  `json:"-"`
	WorldBankCode      string  `json:"-"`
	OECDDataset        string  `json:"-"`
	MinValue           float64 `json:"-"`
	MaxValue           float64 `json:"-"`
}

// FREDSeriesID expands the series template for a country, or returns
// false when FRED does not carry the indicator or the country has no
// FRED country code.
func (ind Indicator) FREDSeriesID(c Country) (string, bool) {
	if ind.FREDSeriesTemplate == "" || c.FREDCode == "" {
		return "", false
	}
	return strings.ReplaceAll(ind.FREDSeriesTemplate, "{country}", c.FREDCode), true
}

// IndicatorByCode returns the indicator for a code, or nil.
func IndicatorByCode(code string) *Indicator {
	if ind, ok := indicators[code]; ok {
		return &ind
	}
	return nil
}

// AllIndicators returns the catalog in canonical display order.
func AllIndicators() []Indicator {
	result := make([]Indicator, 0, len(indicatorOrder))
	for _, code := range indicatorOrder {
		result = append(result, indicators[code])
	}
	return result
}

// IndicatorCodes returns all indicator codes in canonical order.
func IndicatorCodes() []string {
	return indicatorOrder
}

// FormatValue renders a value in the indicator's display format.
// GDP per capita is a dollar amount, currency moves carry an explicit
// sign, index values have no unit suffix.
func (ind Indicator) FormatValue(value float64) string {
	switch ind.Code {
	case "gdp_per_capita":
		return "$" + groupThousands(fmt.Sprintf("%.0f", value))
	case "consumer_confidence":
		return fmt.Sprintf("%.1f", value)
	case "exchange_rate_change":
		return fmt.Sprintf("%+.2f%%", value)
	default:
		return fmt.Sprintf("%.*f%%", ind.DecimalPlaces, value)
	}
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
