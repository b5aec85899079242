package reference

var indicatorOrder = []string{
	"gdp_growth",
	"inflation",
	"unemployment",
	"interest_rate",
	"gdp_per_capita",
	"current_account",
	"government_debt",
	"fdi_inflows",
	"exchange_rate_change",
	"industrial_production",
	"consumer_confidence",
	"trade_balance",
}

var indicators = map[string]Indicator{
	"gdp_growth": {
		Code:               "gdp_growth",
		Name:               "GDP Growth Rate",
		DisplayName:        "GDP Growth",
		ShortName:          "GDP",
		Unit:               "%",
		Description:        "Annual percentage change in real gross domestic product",
		Icon:               "📈",
		Polarity:           PolarityHigherBetter,
		DecimalPlaces:      2,
		Color:              "#2ecc71",
		FREDSeriesTemplate: "{country}GDPRQPSMEI",
		WorldBankCode:      "NY.GDP.MKTP.KD.ZG",
		OECDDataset:        "QNA",
		MinValue:           -15,
		MaxValue:           20,
	},
	"inflation": {
		Code:               "inflation",
		Name:               "Inflation Rate",
		DisplayName:        "Inflation",
		ShortName:          "CPI",
		Unit:               "%",
		Description:        "Annual percentage change in consumer price index",
		Icon:               "💰",
		Polarity:           PolarityLowerBetter,
		DecimalPlaces:      2,
		Color:              "#e74c3c",
		FREDSeriesTemplate: "{country}CPIALLMINMEI",
		WorldBankCode:      "FP.CPI.TOTL.ZG",
		OECDDataset:        "PRICES_CPI",
		MinValue:           -5,
		MaxValue:           100,
	},
	"unemployment": {
		Code:               "unemployment",
		Name:               "Unemployment Rate",
		DisplayName:        "Unemployment",
		ShortName:          "UE",
		Unit:               "%",
		Description:        "Percentage of labor force without employment",
		Icon:               "👥",
		Polarity:           PolarityLowerBetter,
		DecimalPlaces:      2,
		Color:              "#9b59b6",
		FREDSeriesTemplate: "LMUNRRTT{country}M156S",
		WorldBankCode:      "SL.UEM.TOTL.ZS",
		OECDDataset:        "LFS_SEXAGE_I_R",
		MinValue:           0,
		MaxValue:           35,
	},
	"interest_rate": {
		Code:               "interest_rate",
		Name:               "Policy Interest Rate",
		DisplayName:        "Interest Rate",
		ShortName:          "IR",
		Unit:               "%",
		Description:        "Central bank benchmark policy rate",
		Icon:               "🏦",
		Polarity:           PolarityNeutral,
		DecimalPlaces:      2,
		Color:              "#3498db",
		FREDSeriesTemplate: "INTDSR{country}M193N",
		WorldBankCode:      "FR.INR.RINR",
		OECDDataset:        "MEI_FIN",
		MinValue:           0,
		MaxValue:           50,
	},
	"gdp_per_capita": {
		Code:          "gdp_per_capita",
		Name:          "GDP Per Capita",
		DisplayName:   "GDP Per Capita",
		ShortName:     "GDPPC",
		Unit:          "USD",
		Description:   "Gross domestic product divided by total population",
		Icon:          "💵",
		Polarity:      PolarityHigherBetter,
		DecimalPlaces: 0,
		Color:         "#1abc9c",
		WorldBankCode: "NY.GDP.PCAP.CD",
		MinValue:      200,
		MaxValue:      150000,
	},
	"current_account": {
		Code:          "current_account",
		Name:          "Current Account Balance",
		DisplayName:   "Current Account",
		ShortName:     "CA",
		Unit:          "% of GDP",
		Description:   "Sum of trade balance, net income, and net transfers",
		Icon:          "⚖️",
		Polarity:      PolarityNeutral,
		DecimalPlaces: 2,
		Color:         "#f39c12",
		WorldBankCode: "BN.CAB.XOKA.GD.ZS",
		MinValue:      -30,
		MaxValue:      40,
	},
	"government_debt": {
		Code:          "government_debt",
		Name:          "Government Debt",
		DisplayName:   "Public Debt",
		ShortName:     "Debt",
		Unit:          "% of GDP",
		Description:   "Total government debt as percentage of GDP",
		Icon:          "📊",
		Polarity:      PolarityLowerBetter,
		DecimalPlaces: 1,
		Color:         "#e67e22",
		WorldBankCode: "GC.DOD.TOTL.GD.ZS",
		MinValue:      0,
		MaxValue:      300,
	},
	"fdi_inflows": {
		Code:          "fdi_inflows",
		Name:          "Foreign Direct Investment Inflows",
		DisplayName:   "FDI Inflows",
		ShortName:     "FDI",
		Unit:          "% of GDP",
		Description:   "Net inflows of foreign direct investment",
		Icon:          "🌐",
		Polarity:      PolarityHigherBetter,
		DecimalPlaces: 2,
		Color:         "#27ae60",
		WorldBankCode: "BX.KLT.DINV.WD.GD.ZS",
		MinValue:      -10,
		MaxValue:      30,
	},
	"exchange_rate_change": {
		Code:          "exchange_rate_change",
		Name:          "Exchange Rate Change",
		DisplayName:   "Currency Change",
		ShortName:     "FX",
		Unit:          "%",
		Description:   "Annual percentage change in exchange rate versus USD",
		Icon:          "💱",
		Polarity:      PolarityNeutral,
		DecimalPlaces: 2,
		Color:         "#8e44ad",
		WorldBankCode: "PA.NUS.FCRF",
		MinValue:      -50,
		MaxValue:      50,
	},
	"industrial_production": {
		Code:               "industrial_production",
		Name:               "Industrial Production Growth",
		DisplayName:        "Industrial Production",
		ShortName:          "IP",
		Unit:               "%",
		Description:        "Annual growth rate of industrial output",
		Icon:               "🏭",
		Polarity:           PolarityHigherBetter,
		DecimalPlaces:      2,
		Color:              "#34495e",
		FREDSeriesTemplate: "{country}PRMNTO01GYSAM",
		WorldBankCode:      "NV.IND.TOTL.KD.ZG",
		OECDDataset:        "MEI",
		MinValue:           -30,
		MaxValue:           30,
	},
	"consumer_confidence": {
		Code:          "consumer_confidence",
		Name:          "Consumer Confidence Index",
		DisplayName:   "Consumer Confidence",
		ShortName:     "CCI",
		Unit:          "index",
		Description:   "Survey-based measure of household economic sentiment",
		Icon:          "😊",
		Polarity:      PolarityHigherBetter,
		DecimalPlaces: 1,
		Color:         "#16a085",
		OECDDataset:   "MEI_CLI",
		MinValue:      50,
		MaxValue:      150,
	},
	"trade_balance": {
		Code:          "trade_balance",
		Name:          "Trade Balance",
		DisplayName:   "Trade Balance",
		ShortName:     "TB",
		Unit:          "% of GDP",
		Description:   "Exports minus imports as percentage of GDP",
		Icon:          "🚢",
		Polarity:      PolarityNeutral,
		DecimalPlaces: 2,
		Color:         "#2980b9",
		WorldBankCode: "NE.RSB.GNFS.ZS",
		MinValue:      -40,
		MaxValue:      50,
	},
}
