package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"macropilot.econdata.org/internal/reference"
)

func TestSimulatedValuesAreDeterministic(t *testing.T) {
	sim := NewSimulated()
	ind := indicator(t, "gdp_growth")
	usa := country(t, "USA")

	f1, w1, o1 := sim.Values(ind, usa)
	f2, w2, o2 := sim.Values(ind, usa)

	assert.Equal(t, f1, f2)
	assert.Equal(t, w1, w2)
	assert.Equal(t, o1, o2)
}

func TestSimulatedValuesDifferAcrossCountries(t *testing.T) {
	sim := NewSimulated()
	ind := indicator(t, "gdp_growth")

	f1, _, _ := sim.Values(ind, country(t, "USA"))
	f2, _, _ := sim.Values(ind, country(t, "JPN"))

	assert.NotEqual(t, f1, f2)
}

func TestSimulatedValuesStayNearRegionalBaseline(t *testing.T) {
	sim := NewSimulated()
	ind := indicator(t, "inflation")

	// North America inflation baseline 3.2, high income adjustment 0.7,
	// variation at most 1.7 in either direction.
	f, w, o := sim.Values(ind, country(t, "USA"))
	for _, v := range []float64{f, w, o} {
		assert.InDelta(t, 3.2*0.7, v, 1.8)
	}
}

func TestSimulatedValuesRespectFloors(t *testing.T) {
	sim := NewSimulated()

	for _, code := range reference.AllCountryCodes() {
		c := country(t, code)

		f, w, o := sim.Values(indicator(t, "unemployment"), c)
		for _, v := range []float64{f, w, o} {
			assert.GreaterOrEqual(t, v, 0.1, code)
		}

		f, w, o = sim.Values(indicator(t, "gdp_per_capita"), c)
		for _, v := range []float64{f, w, o} {
			assert.GreaterOrEqual(t, v, 500.0, code)
		}

		f, w, o = sim.Values(indicator(t, "consumer_confidence"), c)
		for _, v := range []float64{f, w, o} {
			assert.GreaterOrEqual(t, v, 50.0, code)
			assert.LessOrEqual(t, v, 150.0, code)
		}
	}
}

func TestSimulatedPeriod(t *testing.T) {
	sim := NewSimulated()
	sim.now = func() time.Time { return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC) }
	assert.Equal(t, "2026-Q3", sim.Period())

	sim.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "2026-Q1", sim.Period())
}
