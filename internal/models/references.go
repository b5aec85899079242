package models

import (
	"sort"

	"macropilot.econdata.org/internal/reference"
)

// ReferencesModel carries the country and indicator records cited by a
// response payload so clients can resolve codes without extra requests.
type ReferencesModel struct {
	Countries  []reference.Country   `json:"countries"`
	Indicators []reference.Indicator `json:"indicators"`
}

// NewEmptyReferences creates a References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Countries:  []reference.Country{},
		Indicators: []reference.Indicator{},
	}
}

// ReferencesBuilder accumulates cited codes while a handler assembles its
// payload and deduplicates them into a ReferencesModel.
type ReferencesBuilder struct {
	countries  map[string]reference.Country
	indicators map[string]reference.Indicator
}

func NewReferencesBuilder() *ReferencesBuilder {
	return &ReferencesBuilder{
		countries:  make(map[string]reference.Country),
		indicators: make(map[string]reference.Indicator),
	}
}

// AddCountry records a cited country code. Unknown codes are ignored.
func (b *ReferencesBuilder) AddCountry(code string) {
	if _, seen := b.countries[code]; seen {
		return
	}
	if c := reference.CountryByCode(code); c != nil {
		b.countries[code] = *c
	}
}

// AddIndicator records a cited indicator code. Unknown codes are ignored.
func (b *ReferencesBuilder) AddIndicator(code string) {
	if _, seen := b.indicators[code]; seen {
		return
	}
	if ind := reference.IndicatorByCode(code); ind != nil {
		b.indicators[code] = *ind
	}
}

// Build returns the accumulated references sorted by code.
func (b *ReferencesBuilder) Build() ReferencesModel {
	refs := NewEmptyReferences()
	for _, c := range b.countries {
		refs.Countries = append(refs.Countries, c)
	}
	for _, ind := range b.indicators {
		refs.Indicators = append(refs.Indicators, ind)
	}
	sort.Slice(refs.Countries, func(i, j int) bool {
		return refs.Countries[i].Code < refs.Countries[j].Code
	})
	sort.Slice(refs.Indicators, func(i, j int) bool {
		return refs.Indicators[i].Code < refs.Indicators[j].Code
	})
	return refs
}
