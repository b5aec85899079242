package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Routes builds the API handler: router plus the middleware stack. Every
// /api/v2/ endpoint requires an API key; /metrics does not.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	handle := func(method, pattern string, h handlerFunc) {
		router.Handler(method, pattern, api.instrument(pattern, validateAPIKey(api, h)))
	}

	handle(http.MethodGet, "/api/v2/current-time.json", api.currentTimeHandler)

	handle(http.MethodGet, "/api/v2/countries.json", api.countriesHandler)
	handle(http.MethodGet, "/api/v2/country/:id", api.countryHandler)
	handle(http.MethodGet, "/api/v2/regions.json", api.regionsHandler)
	handle(http.MethodGet, "/api/v2/countries-for-region/:id", api.countriesForRegionHandler)
	handle(http.MethodGet, "/api/v2/indicators.json", api.indicatorsHandler)
	handle(http.MethodGet, "/api/v2/indicator/:id", api.indicatorHandler)

	handle(http.MethodGet, "/api/v2/observation/:indicator/:country", api.observationHandler)
	handle(http.MethodGet, "/api/v2/region-observations/:indicator", api.regionObservationsHandler)
	handle(http.MethodGet, "/api/v2/rankings/:indicator", api.rankingsHandler)
	handle(http.MethodGet, "/api/v2/comparison/:indicator", api.comparisonHandler)

	handle(http.MethodGet, "/api/v2/chart/region/:indicator", api.chartRegionHandler)
	handle(http.MethodGet, "/api/v2/chart/ranking/:indicator", api.chartRankingHandler)
	handle(http.MethodGet, "/api/v2/chart/comparison/:indicator", api.chartComparisonHandler)
	handle(http.MethodGet, "/api/v2/chart/profile/:country", api.chartProfileHandler)
	handle(http.MethodGet, "/api/v2/chart/gauge/:indicator/:country", api.chartGaugeHandler)

	handle(http.MethodPost, "/api/v2/chat.json", api.chatHandler)
	handle(http.MethodGet, "/api/v2/chat/suggestions.json", api.chatSuggestionsHandler)
	handle(http.MethodDelete, "/api/v2/chat/history.json", api.chatHistoryHandler)

	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics",
			promhttp.HandlerFor(api.Metrics.Registry(), promhttp.HandlerOpts{}))
	}

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	return handler
}

// instrument records request counts and latency per route pattern, keeping
// label cardinality independent of path parameters.
func (api *RestAPI) instrument(pattern string, next http.Handler) http.Handler {
	if api.Metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		api.Metrics.ObserveHTTPRequest(pattern, strconv.Itoa(wrapped.statusCode), time.Since(start))
	})
}
