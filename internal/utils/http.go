package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a parameter value from the request context and removes file extensions like ".json".
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	rawID := params.ByName(paramName)
	return strings.Split(rawID, ".json")[0]
}

// ExtractCountryCode extracts an upper-cased country code path parameter.
func ExtractCountryCode(r *http.Request, paramName string) string {
	return strings.ToUpper(ExtractIDFromParams(r, paramName))
}

// ExtractIndicatorCode extracts a lower-cased indicator code path parameter.
func ExtractIndicatorCode(r *http.Request, paramName string) string {
	return strings.ToLower(ExtractIDFromParams(r, paramName))
}
