package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an integer value from the provided URL query
// parameters. A missing key returns the fallback; an invalid value returns
// the fallback and records a field error.
func ParseIntParam(params url.Values, key string, fallback int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return n, fieldErrors
}

// ParseCodeListParam splits a comma-separated list parameter into
// upper-cased codes, dropping empty elements.
func ParseCodeListParam(params url.Values, key string) []string {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}
