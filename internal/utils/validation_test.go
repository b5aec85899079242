package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid simple ID",
			id:      "gdp_growth",
			wantErr: false,
		},
		{
			name:    "valid code with dots",
			id:      "NY.GDP.MKTP.KD.ZG",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("a", 101),
			wantErr: true,
			errMsg:  "id too long (max 100 characters)",
		},
		{
			name:    "ID with invalid characters",
			id:      "gdp growth;drop",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCountryCode(t *testing.T) {
	assert.NoError(t, ValidateCountryCode("USA"))
	assert.NoError(t, ValidateCountryCode("EUU"))

	assert.Error(t, ValidateCountryCode(""))
	assert.Error(t, ValidateCountryCode("usa"))
	assert.Error(t, ValidateCountryCode("US"))
	assert.Error(t, ValidateCountryCode("USAX"))
	assert.Error(t, ValidateCountryCode("U1A"))
}

func TestValidateIndicatorCode(t *testing.T) {
	assert.NoError(t, ValidateIndicatorCode("gdp_growth"))
	assert.NoError(t, ValidateIndicatorCode("exchange_rate_change"))

	assert.Error(t, ValidateIndicatorCode(""))
	assert.Error(t, ValidateIndicatorCode("GDP"))
	assert.Error(t, ValidateIndicatorCode("gdp growth"))
	assert.Error(t, ValidateIndicatorCode("1nflation"))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery(""))
	assert.NoError(t, ValidateQuery("compare germany and france inflation"))

	assert.Error(t, ValidateQuery(strings.Repeat("q", 501)))
	assert.Error(t, ValidateQuery("<script>alert(1)</script>"))
	assert.Error(t, ValidateQuery("1; DROP TABLE messages; --"))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
	assert.Equal(t, "plain text", SanitizeInput("plain text"))
}

func TestValidateAndSanitizeQuery(t *testing.T) {
	out, err := ValidateAndSanitizeQuery("  what is gdp in japan?  ")
	assert.NoError(t, err)
	assert.Equal(t, "what is gdp in japan?", out)

	_, err = ValidateAndSanitizeQuery("<img src=x>")
	assert.Error(t, err)
}
