package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyReferences(t *testing.T) {
	refs := NewEmptyReferences()

	assert.NotNil(t, refs.Countries)
	assert.NotNil(t, refs.Indicators)
	assert.Empty(t, refs.Countries)
	assert.Empty(t, refs.Indicators)

	// Empty slices serialize as [] rather than null.
	raw, err := json.Marshal(refs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"countries":[],"indicators":[]}`, string(raw))
}

func TestReferencesBuilderDeduplicatesAndSorts(t *testing.T) {
	b := NewReferencesBuilder()
	b.AddCountry("USA")
	b.AddCountry("DEU")
	b.AddCountry("USA")
	b.AddIndicator("inflation")
	b.AddIndicator("gdp_growth")
	b.AddIndicator("inflation")

	refs := b.Build()

	require.Len(t, refs.Countries, 2)
	assert.Equal(t, "DEU", refs.Countries[0].Code)
	assert.Equal(t, "USA", refs.Countries[1].Code)

	require.Len(t, refs.Indicators, 2)
	assert.Equal(t, "gdp_growth", refs.Indicators[0].Code)
	assert.Equal(t, "inflation", refs.Indicators[1].Code)
}

func TestReferencesBuilderIgnoresUnknownCodes(t *testing.T) {
	b := NewReferencesBuilder()
	b.AddCountry("XXX")
	b.AddIndicator("money_velocity")

	refs := b.Build()
	assert.Empty(t, refs.Countries)
	assert.Empty(t, refs.Indicators)
}
