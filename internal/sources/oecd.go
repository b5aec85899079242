package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	"macropilot.econdata.org/internal/reference"
)

const oecdBaseURL = "https://sdmx.oecd.org/public/rest/data"

// OECD queries the SDMX-JSON API. Only member countries are queried, and
// only for indicators with a mapped dataset.
type OECD struct {
	client  *Client
	baseURL string
}

func NewOECD(client *Client) *OECD {
	return &OECD{client: client, baseURL: oecdBaseURL}
}

func (o *OECD) Name() string { return SourceOECD }

func (o *OECD) Fetch(ctx context.Context, indicator reference.Indicator, country reference.Country) DataPoint {
	if !country.OECDMember || indicator.OECDDataset == "" {
		return skipPoint(SourceOECD)
	}

	params := url.Values{}
	params.Set("format", "jsondata")
	params.Set("dimensionAtObservation", "AllDimensions")
	params.Set("lastNObservations", "1")

	endpoint := fmt.Sprintf("%s/%s/%s", o.baseURL, indicator.OECDDataset, country.Code)
	body, err := o.client.GetJSON(ctx, endpoint, params)
	if err != nil {
		return errPoint(SourceOECD, fmt.Errorf("oecd %s/%s: %w", indicator.OECDDataset, country.Code, err))
	}

	// SDMX-JSON keys observations by dimension tuple; with a single
	// requested observation the map has one entry of the form [value, ...].
	observations := gjson.GetBytes(body, "data.dataSets.0.observations")
	if !observations.Exists() {
		observations = gjson.GetBytes(body, "dataSets.0.observations")
	}

	var point DataPoint
	point = errPoint(SourceOECD, fmt.Errorf("oecd %s/%s: no observations", indicator.OECDDataset, country.Code))

	observations.ForEach(func(_, obs gjson.Result) bool {
		values := obs.Array()
		if len(values) == 0 || values[0].Type == gjson.Null {
			return true
		}
		point = valuePoint(SourceOECD, values[0].Float(), o.latestPeriod(body))
		return false
	})

	return point
}

// latestPeriod pulls the last TIME_PERIOD value from the SDMX structure
// block, falling back to N/A when the structure is missing.
func (o *OECD) latestPeriod(body []byte) string {
	for _, path := range []string{
		"data.structures.0.dimensions.observation",
		"data.structure.dimensions.observation",
		"structure.dimensions.observation",
	} {
		dims := gjson.GetBytes(body, path)
		if !dims.Exists() {
			continue
		}
		for _, dim := range dims.Array() {
			if dim.Get("id").String() != "TIME_PERIOD" {
				continue
			}
			values := dim.Get("values").Array()
			if len(values) > 0 {
				return values[len(values)-1].Get("id").String()
			}
		}
	}
	return "N/A"
}
