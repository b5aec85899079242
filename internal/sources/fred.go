package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"macropilot.econdata.org/internal/reference"
)

const fredBaseURL = "https://api.stlouisfed.org/fred"

// FRED publishes observations newest-first when sort_order=desc; entries
// with a "." value are placeholders and must be skipped.
type FRED struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewFRED creates a FRED client. An empty API key makes every fetch a skip.
func NewFRED(client *Client, apiKey string) *FRED {
	return &FRED{client: client, baseURL: fredBaseURL, apiKey: apiKey}
}

func (f *FRED) Name() string { return SourceFRED }

func (f *FRED) Fetch(ctx context.Context, indicator reference.Indicator, country reference.Country) DataPoint {
	if f.apiKey == "" {
		return skipPoint(SourceFRED)
	}

	seriesID, ok := indicator.FREDSeriesID(country)
	if !ok {
		return skipPoint(SourceFRED)
	}

	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", f.apiKey)
	params.Set("file_type", "json")
	params.Set("sort_order", "desc")
	params.Set("limit", "10")

	body, err := f.client.GetJSON(ctx, f.baseURL+"/series/observations", params)
	if err != nil {
		return errPoint(SourceFRED, fmt.Errorf("fred %s: %w", seriesID, err))
	}

	for _, obs := range gjson.GetBytes(body, "observations").Array() {
		raw := obs.Get("value").String()
		if raw == "" || raw == "." {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return valuePoint(SourceFRED, value, obs.Get("date").String())
	}

	return errPoint(SourceFRED, fmt.Errorf("fred %s: no valid observations", seriesID))
}
