package sources

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"macropilot.econdata.org/internal/reference"
)

const worldBankBaseURL = "https://api.worldbank.org/v2"

// WorldBank queries the v2 API, which answers with a positional JSON
// array: element 0 is paging metadata, element 1 the observations.
type WorldBank struct {
	client  *Client
	baseURL string
	now     func() time.Time
}

func NewWorldBank(client *Client) *WorldBank {
	return &WorldBank{client: client, baseURL: worldBankBaseURL, now: time.Now}
}

func (w *WorldBank) Name() string { return SourceWorldBank }

func (w *WorldBank) Fetch(ctx context.Context, indicator reference.Indicator, country reference.Country) DataPoint {
	if indicator.WorldBankCode == "" {
		return skipPoint(SourceWorldBank)
	}

	year := w.now().Year()
	params := url.Values{}
	params.Set("format", "json")
	params.Set("per_page", "10")
	params.Set("date", fmt.Sprintf("%d:%d", year-5, year))

	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s", w.baseURL, country.Code, indicator.WorldBankCode)
	body, err := w.client.GetJSON(ctx, endpoint, params)
	if err != nil {
		return errPoint(SourceWorldBank, fmt.Errorf("worldbank %s/%s: %w", country.Code, indicator.WorldBankCode, err))
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() || len(root.Array()) < 2 {
		return errPoint(SourceWorldBank, fmt.Errorf("worldbank %s/%s: unexpected payload", country.Code, indicator.WorldBankCode))
	}

	// Observations are ordered newest-first; take the first non-null value.
	for _, obs := range root.Array()[1].Array() {
		value := obs.Get("value")
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}
		return valuePoint(SourceWorldBank, value.Float(), obs.Get("date").String())
	}

	return errPoint(SourceWorldBank, fmt.Errorf("worldbank %s/%s: no valid observations", country.Code, indicator.WorldBankCode))
}
