package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntentSingleCountry(t *testing.T) {
	intent := DetectIntent("What is India's GDP growth rate?")

	assert.Equal(t, IntentSingleCountry, intent.Type)
	assert.Equal(t, []string{"IND"}, intent.Countries)
	assert.Equal(t, []string{"gdp_growth"}, intent.Indicators)
}

func TestDetectIntentComparison(t *testing.T) {
	intent := DetectIntent("Compare USA and China inflation")

	assert.Equal(t, IntentComparison, intent.Type)
	assert.True(t, intent.IsComparison)
	assert.ElementsMatch(t, []string{"USA", "CHN"}, intent.Countries)
	assert.Equal(t, []string{"inflation"}, intent.Indicators)
}

func TestDetectIntentRanking(t *testing.T) {
	intent := DetectIntent("Which countries have the highest unemployment?")

	assert.Equal(t, IntentRanking, intent.Type)
	assert.True(t, intent.IsRanking)
	assert.Equal(t, []string{"unemployment"}, intent.Indicators)
}

func TestDetectIntentRegional(t *testing.T) {
	intent := DetectIntent("What about inflation in Europe - Western?")

	assert.Equal(t, IntentRegional, intent.Type)
	assert.True(t, intent.IsRegional)
	assert.Equal(t, "Europe - Western", intent.Region)
}

func TestDetectIntentRegionalFlatName(t *testing.T) {
	intent := DetectIntent("How is unemployment across asia east?")

	assert.Equal(t, IntentRegional, intent.Type)
	assert.Equal(t, "Asia - East", intent.Region)
}

func TestDetectIntentGeneralDefaultsToGDPGrowth(t *testing.T) {
	intent := DetectIntent("Hello there!")

	assert.Equal(t, IntentGeneral, intent.Type)
	assert.Empty(t, intent.Countries)
	assert.Equal(t, []string{"gdp_growth"}, intent.Indicators)
}

func TestDetectIntentAliases(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"How is the UK economy doing?", "GBR"},
		{"Tell me about holland", "NLD"},
		{"What about the emirates?", "ARE"},
		{"Is turkiye growing?", "TUR"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent := DetectIntent(tt.query)
			assert.Contains(t, intent.Countries, tt.want)
		})
	}
}

func TestDetectIntentShortAliasNeedsWholeWord(t *testing.T) {
	intent := DetectIntent("Tell me about Australia")

	assert.Equal(t, []string{"AUS"}, intent.Countries)
}

func TestDetectIntentMultipleIndicators(t *testing.T) {
	intent := DetectIntent("How do jobs and prices look in Germany?")

	assert.Equal(t, IntentSingleCountry, intent.Type)
	assert.Contains(t, intent.Indicators, "inflation")
	assert.Contains(t, intent.Indicators, "unemployment")
}

func TestDetectIntentComparisonNeedsTwoCountries(t *testing.T) {
	intent := DetectIntent("Compare the outlook for Brazil")

	assert.True(t, intent.IsComparison)
	assert.Equal(t, IntentSingleCountry, intent.Type)
}
