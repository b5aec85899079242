package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func serveWithParam(t *testing.T, path string, extract func(r *http.Request) string) string {
	t.Helper()

	router := httprouter.New()
	var result string
	router.Handler(http.MethodGet, "/api/test/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result = extract(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return result
}

func TestExtractIDFromParams(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "Basic ID",
			id:   "USA",
			want: "USA",
		},
		{
			name: "ID with JSON extension",
			id:   "USA.json",
			want: "USA",
		},
		{
			name: "ID with multiple dots",
			id:   "NY.GDP.json",
			want: "NY.GDP",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := serveWithParam(t, "/api/test/"+tc.id, func(r *http.Request) string {
				return ExtractIDFromParams(r, "id")
			})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractCountryCodeUppercases(t *testing.T) {
	got := serveWithParam(t, "/api/test/deu.json", func(r *http.Request) string {
		return ExtractCountryCode(r, "id")
	})
	assert.Equal(t, "DEU", got)
}

func TestExtractIndicatorCodeLowercases(t *testing.T) {
	got := serveWithParam(t, "/api/test/GDP_GROWTH.json", func(r *http.Request) string {
		return ExtractIndicatorCode(r, "id")
	})
	assert.Equal(t, "gdp_growth", got)
}
