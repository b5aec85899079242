// Package triangulate combines observations from the upstream sources into
// consensus values with confidence and assessment labels.
package triangulate

import (
	"math"

	"macropilot.econdata.org/internal/reference"
)

// Confidence classifies how well the sources agree on a value.
type Confidence string

const (
	ConfidenceHigh         Confidence = "high"
	ConfidenceMedium       Confidence = "medium"
	ConfidenceLow          Confidence = "low"
	ConfidenceSingleSource Confidence = "single_source"
	ConfidenceNoData       Confidence = "no_data"
)

// Description returns the display text for a confidence level.
func (c Confidence) Description() string {
	switch c {
	case ConfidenceHigh:
		return "Strong agreement across all sources"
	case ConfidenceMedium:
		return "Moderate variation between sources"
	case ConfidenceLow:
		return "Significant divergence between sources"
	case ConfidenceSingleSource:
		return "Data from single source only"
	case ConfidenceNoData:
		return "No data available from any source"
	}
	return string(c)
}

// Observation is one triangulated indicator reading for a country.
type Observation struct {
	CountryCode           string     `json:"countryCode"`
	CountryName           string     `json:"countryName"`
	Region                string     `json:"region"`
	IncomeLevel           string     `json:"incomeLevel"`
	IndicatorCode         string     `json:"indicatorCode"`
	IndicatorName         string     `json:"indicatorName"`
	Unit                  string     `json:"unit"`
	FREDValue             *float64   `json:"fredValue"`
	WorldBankValue        *float64   `json:"worldbankValue"`
	OECDValue             *float64   `json:"oecdValue"`
	ConsensusValue        *float64   `json:"consensusValue"`
	FormattedValue        string     `json:"formattedValue"`
	ConfidenceLevel       Confidence `json:"confidenceLevel"`
	ConfidenceDescription string     `json:"confidenceDescription"`
	AssessmentLabel       string     `json:"assessmentLabel"`
	AssessmentDescription string     `json:"assessmentDescription"`
	Period                string     `json:"period"`
	SourceCount           int        `json:"sourceCount"`
	Simulated             bool       `json:"simulated"`
}

// classifyConfidence buckets source agreement by relative spread: under 5%
// is high, under 15% medium, anything wider low.
func classifyConfidence(values []float64) Confidence {
	switch len(values) {
	case 0:
		return ConfidenceNoData
	case 1:
		return ConfidenceSingleSource
	}

	lo, hi := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}
	avg := sum / float64(len(values))

	spread := hi - lo
	relativeSpread := spread
	if avg != 0 {
		relativeSpread = spread / math.Abs(avg) * 100
	}

	switch {
	case relativeSpread < 5.0:
		return ConfidenceHigh
	case relativeSpread < 15.0:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}

// consensusOf averages the available values, rounded to the indicator's
// decimal places. Returns nil when no values are available.
func consensusOf(values []float64, ind reference.Indicator) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	c := roundTo(sum/float64(len(values)), ind.DecimalPlaces)
	return &c
}
