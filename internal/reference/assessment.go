package reference

// Assessment is a qualitative reading of an indicator value.
type Assessment struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type threshold struct {
	bound float64
	label string
	desc  string
}

// thresholds are ordered for first-match scanning. Higher-is-better and
// neutral indicators match on value >= bound; lower-is-better on
// value <= bound. The final entry always matches.
var thresholds = map[string][]threshold{
	"gdp_growth": {
		{5.0, "Strong", "Robust economic expansion"},
		{3.0, "Good", "Healthy economic growth"},
		{1.5, "Moderate", "Sluggish but positive growth"},
		{0.0, "Weak", "Near-stagnation conditions"},
		{negInf, "Contraction", "Economy in recession"},
	},
	"inflation": {
		{2.0, "Low", "Well-controlled price stability"},
		{3.5, "Target", "Near central bank targets"},
		{6.0, "Elevated", "Above-target inflation"},
		{10.0, "High", "Significant inflationary pressure"},
		{posInf, "Critical", "Hyperinflationary risk"},
	},
	"unemployment": {
		{4.0, "Tight", "Strong labor market"},
		{5.5, "Healthy", "Near full employment"},
		{8.0, "Elevated", "Labor market slack"},
		{12.0, "High", "Significant joblessness"},
		{posInf, "Crisis", "Severe unemployment"},
	},
	"interest_rate": {
		{2.0, "Accommodative", "Stimulative policy"},
		{5.0, "Neutral", "Balanced stance"},
		{8.0, "Restrictive", "Tight conditions"},
		{posInf, "Very Tight", "Highly restrictive"},
	},
	"gdp_per_capita": {
		{40000, "High Income", "Advanced economy"},
		{15000, "Upper Middle", "Emerging market"},
		{4000, "Lower Middle", "Developing economy"},
		{negInf, "Low Income", "Least developed"},
	},
	"current_account": {
		{5.0, "Large Surplus", "Strong external position"},
		{2.0, "Surplus", "Positive external balance"},
		{-2.0, "Balanced", "Sustainable position"},
		{-5.0, "Deficit", "External financing needs"},
		{negInf, "Large Deficit", "External vulnerability"},
	},
	"government_debt": {
		{40.0, "Low", "Strong fiscal position"},
		{60.0, "Moderate", "Manageable debt"},
		{90.0, "High", "Elevated debt"},
		{120.0, "Very High", "Sustainability concerns"},
		{posInf, "Critical", "Severe fiscal stress"},
	},
	"fdi_inflows": {
		{5.0, "Excellent", "Highly attractive"},
		{3.0, "Strong", "Good investment climate"},
		{1.5, "Moderate", "Average attractiveness"},
		{negInf, "Weak", "Limited investment"},
	},
	"exchange_rate_change": {
		{10.0, "Strong Appreciation", "Currency strengthening"},
		{3.0, "Appreciation", "Currency gaining"},
		{-3.0, "Stable", "Limited movement"},
		{-10.0, "Depreciation", "Currency losing value"},
		{negInf, "Sharp Depreciation", "Significant weakness"},
	},
	"industrial_production": {
		{6.0, "Boom", "Strong expansion"},
		{3.0, "Growth", "Healthy activity"},
		{1.0, "Moderate", "Slow growth"},
		{0.0, "Stagnant", "Flat output"},
		{negInf, "Contraction", "Industrial decline"},
	},
	"consumer_confidence": {
		{105.0, "Optimistic", "Strong sentiment"},
		{100.0, "Neutral", "Balanced outlook"},
		{95.0, "Cautious", "Consumer uncertainty"},
		{negInf, "Pessimistic", "Weak sentiment"},
	},
	"trade_balance": {
		{8.0, "Large Surplus", "Export-oriented"},
		{3.0, "Surplus", "Positive trade position"},
		{-3.0, "Balanced", "Sustainable position"},
		{-8.0, "Deficit", "Import-dependent"},
		{negInf, "Large Deficit", "Trade imbalance"},
	},
}

const (
	posInf = 1e308
	negInf = -1e308
)

var assessmentDefault = Assessment{Label: "Moderate", Description: "Within normal range"}

// Assess maps an indicator value onto its qualitative band.
func Assess(indicatorCode string, value float64) Assessment {
	bands, ok := thresholds[indicatorCode]
	if !ok {
		return assessmentDefault
	}
	ind := IndicatorByCode(indicatorCode)

	if ind != nil && ind.Polarity == PolarityLowerBetter {
		for _, t := range bands {
			if value <= t.bound {
				return Assessment{Label: t.label, Description: t.desc}
			}
		}
	} else {
		for _, t := range bands {
			if value >= t.bound {
				return Assessment{Label: t.label, Description: t.desc}
			}
		}
	}
	return assessmentDefault
}
