package sources

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"macropilot.econdata.org/internal/reference"
)

// regionalBaselines hold typical indicator values per coarse region, used
// to synthesize plausible observations in demo mode.
var regionalBaselines = map[string]map[string]float64{
	"North America": {
		"gdp_growth": 2.5, "inflation": 3.2, "unemployment": 4.0, "interest_rate": 5.25,
		"gdp_per_capita": 65000, "current_account": -3.5, "government_debt": 95,
		"fdi_inflows": 2.0, "exchange_rate_change": 0.0, "industrial_production": 2.0,
		"consumer_confidence": 102, "trade_balance": -4.0,
	},
	"South America": {
		"gdp_growth": 2.0, "inflation": 8.5, "unemployment": 7.5, "interest_rate": 9.5,
		"gdp_per_capita": 12000, "current_account": -2.5, "government_debt": 65,
		"fdi_inflows": 3.0, "exchange_rate_change": -8.0, "industrial_production": 1.5,
		"consumer_confidence": 95, "trade_balance": 1.0,
	},
	"Europe": {
		"gdp_growth": 1.2, "inflation": 2.8, "unemployment": 6.0, "interest_rate": 4.0,
		"gdp_per_capita": 45000, "current_account": 2.5, "government_debt": 85,
		"fdi_inflows": 2.5, "exchange_rate_change": -2.0, "industrial_production": 0.5,
		"consumer_confidence": 98, "trade_balance": 3.0,
	},
	"Russia and CIS": {
		"gdp_growth": 2.5, "inflation": 8.0, "unemployment": 5.5, "interest_rate": 12.0,
		"gdp_per_capita": 15000, "current_account": 5.0, "government_debt": 25,
		"fdi_inflows": 1.5, "exchange_rate_change": -10.0, "industrial_production": 3.0,
		"consumer_confidence": 90, "trade_balance": 8.0,
	},
	"Asia": {
		"gdp_growth": 5.0, "inflation": 3.5, "unemployment": 4.5, "interest_rate": 4.5,
		"gdp_per_capita": 25000, "current_account": 3.0, "government_debt": 55,
		"fdi_inflows": 3.5, "exchange_rate_change": -1.0, "industrial_production": 5.0,
		"consumer_confidence": 105, "trade_balance": 4.0,
	},
	"Middle East": {
		"gdp_growth": 3.5, "inflation": 4.5, "unemployment": 8.5, "interest_rate": 5.5,
		"gdp_per_capita": 30000, "current_account": 8.0, "government_debt": 35,
		"fdi_inflows": 2.0, "exchange_rate_change": 0.0, "industrial_production": 2.5,
		"consumer_confidence": 100, "trade_balance": 10.0,
	},
	"Africa": {
		"gdp_growth": 3.5, "inflation": 9.5, "unemployment": 12.0, "interest_rate": 11.0,
		"gdp_per_capita": 3500, "current_account": -4.0, "government_debt": 55,
		"fdi_inflows": 2.5, "exchange_rate_change": -12.0, "industrial_production": 3.5,
		"consumer_confidence": 88, "trade_balance": -5.0,
	},
	"Oceania": {
		"gdp_growth": 2.5, "inflation": 3.5, "unemployment": 4.0, "interest_rate": 4.25,
		"gdp_per_capita": 55000, "current_account": -2.0, "government_debt": 45,
		"fdi_inflows": 3.0, "exchange_rate_change": -3.0, "industrial_production": 2.0,
		"consumer_confidence": 100, "trade_balance": -1.0,
	},
	"Aggregates": {
		"gdp_growth": 2.0, "inflation": 3.0, "unemployment": 6.0, "interest_rate": 4.0,
		"gdp_per_capita": 40000, "current_account": 1.0, "government_debt": 80,
		"fdi_inflows": 2.5, "exchange_rate_change": 0.0, "industrial_production": 1.5,
		"consumer_confidence": 100, "trade_balance": 2.0,
	},
}

// incomeAdjustments scale selected baselines by World Bank income level.
var incomeAdjustments = map[reference.IncomeLevel]map[string]float64{
	reference.IncomeHigh:        {"gdp_per_capita": 1.5, "inflation": 0.7, "unemployment": 0.8},
	reference.IncomeUpperMiddle: {"gdp_per_capita": 0.6, "inflation": 1.2, "unemployment": 1.0},
	reference.IncomeLowerMiddle: {"gdp_per_capita": 0.25, "inflation": 1.4, "unemployment": 1.1},
	reference.IncomeLow:         {"gdp_per_capita": 0.1, "inflation": 1.6, "unemployment": 1.3},
}

const simulatedSeed = 42

// Simulated synthesizes three agreeing-ish observations per request from
// regional baselines and income adjustments. Values are deterministic per
// (indicator, country) pair so repeated requests and tests are stable.
type Simulated struct {
	now func() time.Time
}

func NewSimulated() *Simulated {
	return &Simulated{now: time.Now}
}

// Values returns the three per-source simulated values for a pair.
func (s *Simulated) Values(indicator reference.Indicator, country reference.Country) (fred, wb, oecd float64) {
	baseline, ok := regionalBaselines[country.Region]
	if !ok {
		baseline = regionalBaselines["Aggregates"]
	}
	base := baseline[indicator.Code]

	if adj, ok := incomeAdjustments[country.IncomeLevel][indicator.Code]; ok {
		base *= adj
	}

	rng := rand.New(rand.NewSource(pairSeed(indicator.Code, country.Code)))

	var variation float64
	switch indicator.Code {
	case "gdp_per_capita":
		variation = uniform(rng, -5000, 5000)
	case "consumer_confidence":
		variation = uniform(rng, -8, 8)
	case "government_debt":
		variation = uniform(rng, -15, 15)
	default:
		variation = uniform(rng, -1.5, 1.5)
	}

	fred = clampSimulated(indicator.Code, base+variation+uniform(rng, -0.2, 0.2))
	wb = clampSimulated(indicator.Code, base+variation+uniform(rng, -0.2, 0.2))
	oecd = clampSimulated(indicator.Code, base+variation+uniform(rng, -0.2, 0.2))
	return fred, wb, oecd
}

// Period reports the current quarter, e.g. 2026-Q3.
func (s *Simulated) Period() string {
	now := s.now()
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", now.Year(), quarter)
}

func pairSeed(indicatorCode, countryCode string) int64 {
	h := fnv.New64a()
	h.Write([]byte(indicatorCode)) //nolint:errcheck
	h.Write([]byte{0})             //nolint:errcheck
	h.Write([]byte(countryCode))   //nolint:errcheck
	return simulatedSeed + int64(h.Sum64()) //nolint:gosec
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clampSimulated(indicatorCode string, v float64) float64 {
	switch indicatorCode {
	case "unemployment", "inflation", "interest_rate", "government_debt":
		return max(0.1, v)
	case "gdp_per_capita":
		return max(500, v)
	case "consumer_confidence":
		return min(150, max(50, v))
	}
	return v
}
