package sources

import (
	"context"

	"macropilot.econdata.org/internal/reference"
)

// Source names as they appear in responses and metrics labels.
const (
	SourceFRED      = "fred"
	SourceWorldBank = "worldbank"
	SourceOECD      = "oecd"
)

// DataPoint is one observation from a single source. A nil Value with a
// nil Err means the source does not carry the requested series.
type DataPoint struct {
	Source string
	Value  *float64
	Period string
	Err    error
}

// Skipped reports whether the source declined the request without error.
func (p DataPoint) Skipped() bool {
	return p.Value == nil && p.Err == nil
}

// Source fetches a single indicator observation for a country.
type Source interface {
	Name() string
	Fetch(ctx context.Context, indicator reference.Indicator, country reference.Country) DataPoint
}

func valuePoint(source string, value float64, period string) DataPoint {
	return DataPoint{Source: source, Value: &value, Period: period}
}

func skipPoint(source string) DataPoint {
	return DataPoint{Source: source}
}

func errPoint(source string, err error) DataPoint {
	return DataPoint{Source: source, Err: err}
}
