package charts

// ChartConfig is a renderer-agnostic chart description consumed by the
// dashboard. Missing values serialize as null so gaps stay visible.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	BarMode    string        `json:"barMode,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
	Series     []ChartSeries `json:"series"`
	Gauge      *GaugeSpec    `json:"gauge,omitempty"`
}

// ChartSeries is one named run of points. Type overrides the chart's
// default mark, letting a line ride on top of grouped bars.
type ChartSeries struct {
	Name  string       `json:"name"`
	Type  string       `json:"type,omitempty"`
	Color string       `json:"color,omitempty"`
	Data  []ChartPoint `json:"data"`
}

// ChartPoint is a single labeled value.
type ChartPoint struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
	Color string   `json:"color,omitempty"`
	Text  string   `json:"text,omitempty"`
}

// GaugeSpec carries the dial geometry for gauge charts.
type GaugeSpec struct {
	Min      float64    `json:"min"`
	Max      float64    `json:"max"`
	GoodFrom float64    `json:"goodFrom"`
	GoodTo   float64    `json:"goodTo"`
	Value    float64    `json:"value"`
	Suffix   string     `json:"suffix,omitempty"`
	Steps    []GaugeStep `json:"steps"`
}

// GaugeStep is one colored band on the dial.
type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}
