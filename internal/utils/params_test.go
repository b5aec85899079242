package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntParam(t *testing.T) {
	t.Run("missing key returns fallback", func(t *testing.T) {
		params := url.Values{}
		n, fieldErrors := ParseIntParam(params, "limit", 20, nil)
		assert.Equal(t, 20, n)
		assert.Empty(t, fieldErrors)
	})

	t.Run("valid value is parsed", func(t *testing.T) {
		params := url.Values{"limit": []string{"5"}}
		n, fieldErrors := ParseIntParam(params, "limit", 20, nil)
		assert.Equal(t, 5, n)
		assert.Empty(t, fieldErrors)
	})

	t.Run("invalid value records field error", func(t *testing.T) {
		params := url.Values{"limit": []string{"five"}}
		n, fieldErrors := ParseIntParam(params, "limit", 20, nil)
		assert.Equal(t, 20, n)
		assert.Contains(t, fieldErrors, "limit")
	})
}

func TestParseCodeListParam(t *testing.T) {
	t.Run("missing key returns nil", func(t *testing.T) {
		assert.Nil(t, ParseCodeListParam(url.Values{}, "countries"))
	})

	t.Run("splits trims and uppercases", func(t *testing.T) {
		params := url.Values{"countries": []string{"usa, deu ,JPN"}}
		assert.Equal(t, []string{"USA", "DEU", "JPN"}, ParseCodeListParam(params, "countries"))
	})

	t.Run("drops empty elements", func(t *testing.T) {
		params := url.Values{"countries": []string{"USA,,FRA,"}}
		assert.Equal(t, []string{"USA", "FRA"}, ParseCodeListParam(params, "countries"))
	})
}
