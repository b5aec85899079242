package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - covers country and indicator codes
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

	countryCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

	indicatorCodePattern = regexp.MustCompile(`^[a-z][a-z_]{1,40}$`)
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateCountryCode validates an ISO 3166-1 alpha-3 country code.
func ValidateCountryCode(code string) error {
	if code == "" {
		return errors.New("country code cannot be empty")
	}

	if !countryCodePattern.MatchString(code) {
		return errors.New("country code must be three uppercase letters")
	}

	return nil
}

// ValidateIndicatorCode validates an indicator code such as gdp_growth.
func ValidateIndicatorCode(code string) error {
	if code == "" {
		return errors.New("indicator code cannot be empty")
	}

	if !indicatorCodePattern.MatchString(code) {
		return errors.New("indicator code contains invalid characters")
	}

	return nil
}

// ValidateQuery validates free-text query strings such as chat input
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 500 {
		return errors.New("query too long (max 500 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeQuery validates and sanitizes a free-text query
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}
