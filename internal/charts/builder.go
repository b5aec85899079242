package charts

import (
	"fmt"

	"macropilot.econdata.org/internal/reference"
	"macropilot.econdata.org/internal/triangulate"
)

// Source series colors shared by the comparison chart.
const (
	colorFRED      = "#1f77b4"
	colorWorldBank = "#2ca02c"
	colorOECD      = "#ff7f0e"
	colorConsensus = "#d62728"
)

// regionPalette colors ranking bars by region.
var regionPalette = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
	"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
}

// confidenceColors map confidence levels to traffic-light colors.
var confidenceColors = map[triangulate.Confidence]string{
	triangulate.ConfidenceHigh:         "#28a745",
	triangulate.ConfidenceMedium:       "#ffc107",
	triangulate.ConfidenceSingleSource: "#fd7e14",
	triangulate.ConfidenceLow:          "#dc3545",
	triangulate.ConfidenceNoData:       "#6c757d",
}

// ConfidenceColor returns the display color for a confidence level.
func ConfidenceColor(c triangulate.Confidence) string {
	if color, ok := confidenceColors[c]; ok {
		return color
	}
	return confidenceColors[triangulate.ConfidenceNoData]
}

// RegionBar builds a horizontal bar chart of one indicator across a
// region's countries, colored by confidence. Observations are plotted in
// the order given, which callers keep best-first.
func RegionBar(data []*triangulate.Observation, indicatorCode string) *ChartConfig {
	ind := reference.IndicatorByCode(indicatorCode)
	if ind == nil || len(data) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(data))
	for _, d := range data {
		points = append(points, ChartPoint{
			Label: d.CountryName,
			Value: d.ConsensusValue,
			Color: ConfidenceColor(d.ConfidenceLevel),
			Text:  d.FormattedValue,
		})
	}

	return &ChartConfig{
		ChartType: "hbar",
		Title:     fmt.Sprintf("%s by Country", ind.DisplayName),
		XAxis:     fmt.Sprintf("Value (%s)", ind.Unit),
		ShowGrid:  true,
		Series:    []ChartSeries{{Name: ind.DisplayName, Data: points}},
	}
}

// Ranking builds a horizontal bar chart of the top countries worldwide,
// colored by region. Colors are assigned in first-seen region order so the
// same input always renders the same chart.
func Ranking(data []*triangulate.Observation, indicatorCode string, topN int) *ChartConfig {
	ind := reference.IndicatorByCode(indicatorCode)
	if ind == nil || len(data) == 0 {
		return nil
	}
	if topN <= 0 {
		topN = 15
	}
	if len(data) > topN {
		data = data[:topN]
	}

	regionColors := make(map[string]string)
	points := make([]ChartPoint, 0, len(data))
	for _, d := range data {
		color, ok := regionColors[d.Region]
		if !ok {
			color = regionPalette[len(regionColors)%len(regionPalette)]
			regionColors[d.Region] = color
		}
		points = append(points, ChartPoint{
			Label: d.CountryName,
			Value: d.ConsensusValue,
			Color: color,
			Text:  d.FormattedValue,
		})
	}

	return &ChartConfig{
		ChartType: "hbar",
		Title:     fmt.Sprintf("Top %d Countries by %s", len(points), ind.DisplayName),
		XAxis:     fmt.Sprintf("Value (%s)", ind.Unit),
		ShowGrid:  true,
		Series:    []ChartSeries{{Name: ind.DisplayName, Data: points}},
	}
}

// Comparison builds a grouped bar chart of per-source values across
// countries with the consensus drawn as a line on top.
func Comparison(data []*triangulate.Observation, indicatorCode string) *ChartConfig {
	ind := reference.IndicatorByCode(indicatorCode)
	if ind == nil || len(data) == 0 {
		return nil
	}

	series := []ChartSeries{
		{Name: "FRED", Color: colorFRED, Data: sourcePoints(data, func(d *triangulate.Observation) *float64 { return d.FREDValue })},
		{Name: "World Bank", Color: colorWorldBank, Data: sourcePoints(data, func(d *triangulate.Observation) *float64 { return d.WorldBankValue })},
		{Name: "OECD", Color: colorOECD, Data: sourcePoints(data, func(d *triangulate.Observation) *float64 { return d.OECDValue })},
		{Name: "Consensus", Type: "line", Color: colorConsensus, Data: sourcePoints(data, func(d *triangulate.Observation) *float64 { return d.ConsensusValue })},
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      fmt.Sprintf("%s Comparison by Data Source", ind.DisplayName),
		XAxis:      "Country",
		YAxis:      fmt.Sprintf("Value (%s)", ind.Unit),
		BarMode:    "group",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     series,
	}
}

func sourcePoints(data []*triangulate.Observation, pick func(*triangulate.Observation) *float64) []ChartPoint {
	points := make([]ChartPoint, 0, len(data))
	for _, d := range data {
		points = append(points, ChartPoint{Label: d.CountryName, Value: pick(d)})
	}
	return points
}

// Profile builds a radar chart of a country's indicators normalized to a
// 0-100 scale. Indicators without a tuned scale sit at the midpoint.
func Profile(data []*triangulate.Observation, countryName string) *ChartConfig {
	if len(data) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(data))
	for _, d := range data {
		norm := normalizeForRadar(d.IndicatorCode, d.ConsensusValue)
		label := d.IndicatorCode
		if ind := reference.IndicatorByCode(d.IndicatorCode); ind != nil {
			label = ind.ShortName
		}
		points = append(points, ChartPoint{Label: label, Value: &norm})
	}

	return &ChartConfig{
		ChartType:  "radar",
		Title:      fmt.Sprintf("Economic Profile: %s", countryName),
		ShowLegend: true,
		Series: []ChartSeries{{
			Name:  countryName,
			Color: "#3498db",
			Data:  points,
		}},
	}
}

// normalizeForRadar maps raw indicator values onto 0-100 where 100 is
// strong. Lower-is-better series invert.
func normalizeForRadar(indicatorCode string, value *float64) float64 {
	if value == nil {
		return 0
	}

	var norm float64
	switch indicatorCode {
	case "gdp_growth":
		norm = (*value + 5) * 6.67
	case "inflation":
		norm = 100 - *value*5
	case "unemployment":
		norm = 100 - *value*4
	case "gdp_per_capita":
		norm = *value / 1000
	case "consumer_confidence":
		norm = *value
	default:
		return 50
	}

	if norm < 0 {
		return 0
	}
	if norm > 100 {
		return 100
	}
	return norm
}

type gaugeRange struct {
	min, max         float64
	goodFrom, goodTo float64
}

var gaugeRanges = map[string]gaugeRange{
	"gdp_growth":          {-5, 15, 2, 8},
	"inflation":           {0, 20, 1, 4},
	"unemployment":        {0, 25, 2, 6},
	"interest_rate":       {0, 20, 2, 6},
	"consumer_confidence": {70, 130, 100, 115},
}

// Gauge builds a dial for one metric with red-amber-green bands around the
// indicator's healthy range.
func Gauge(value *float64, indicatorCode, countryName string) *ChartConfig {
	ind := reference.IndicatorByCode(indicatorCode)
	if ind == nil || value == nil {
		return nil
	}

	r, ok := gaugeRanges[indicatorCode]
	if !ok {
		r = gaugeRange{0, 100, 30, 70}
	}

	return &ChartConfig{
		ChartType: "gauge",
		Title:     fmt.Sprintf("%s: %s", countryName, ind.DisplayName),
		Gauge: &GaugeSpec{
			Min:      r.min,
			Max:      r.max,
			GoodFrom: r.goodFrom,
			GoodTo:   r.goodTo,
			Value:    *value,
			Suffix:   ind.Unit,
			Steps: []GaugeStep{
				{From: r.min, To: r.goodFrom, Color: "#ffcccc"},
				{From: r.goodFrom, To: r.goodTo, Color: "#ccffcc"},
				{From: r.goodTo, To: r.max, Color: "#ffcccc"},
			},
		},
	}
}
