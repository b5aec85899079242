package restapi

import (
	"macropilot.econdata.org/internal/models"
	"macropilot.econdata.org/internal/triangulate"
)

// observationReferences collects the countries and indicators cited by a
// set of observations.
func observationReferences(observations []*triangulate.Observation) models.ReferencesModel {
	builder := models.NewReferencesBuilder()
	for _, obs := range observations {
		builder.AddCountry(obs.CountryCode)
		builder.AddIndicator(obs.IndicatorCode)
	}
	return builder.Build()
}
