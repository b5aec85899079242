package reference

// countries is the full catalog keyed by ISO alpha-3 code. The EUU entry is
// an aggregate, not a country; most call sites exclude it via AggregateCode.
var countries = map[string]Country{
	// North America
	"USA": {Code: "USA", Name: "United States", Region: "North America", SubRegion: "Northern America", IncomeLevel: IncomeHigh, Currency: "USD", Flag: "🇺🇸", FREDCode: "US", OECDMember: true},
	"CAN": {Code: "CAN", Name: "Canada", Region: "North America", SubRegion: "Northern America", IncomeLevel: IncomeHigh, Currency: "CAD", Flag: "🇨🇦", FREDCode: "CA", OECDMember: true},
	"MEX": {Code: "MEX", Name: "Mexico", Region: "North America", SubRegion: "Central America", IncomeLevel: IncomeUpperMiddle, Currency: "MXN", Flag: "🇲🇽", FREDCode: "MX", OECDMember: true},

	// South America
	"BRA": {Code: "BRA", Name: "Brazil", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "BRL", Flag: "🇧🇷", FREDCode: "BR"},
	"ARG": {Code: "ARG", Name: "Argentina", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "ARS", Flag: "🇦🇷", FREDCode: "AR"},
	"CHL": {Code: "CHL", Name: "Chile", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeHigh, Currency: "CLP", Flag: "🇨🇱", FREDCode: "CL", OECDMember: true},
	"COL": {Code: "COL", Name: "Colombia", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "COP", Flag: "🇨🇴", FREDCode: "CO", OECDMember: true},
	"PER": {Code: "PER", Name: "Peru", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "PEN", Flag: "🇵🇪", FREDCode: "PE"},
	"VEN": {Code: "VEN", Name: "Venezuela", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "VES", Flag: "🇻🇪", FREDCode: "VE"},
	"ECU": {Code: "ECU", Name: "Ecuador", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "USD", Flag: "🇪🇨", FREDCode: "EC"},
	"BOL": {Code: "BOL", Name: "Bolivia", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeLowerMiddle, Currency: "BOB", Flag: "🇧🇴", FREDCode: "BO"},
	"URY": {Code: "URY", Name: "Uruguay", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeHigh, Currency: "UYU", Flag: "🇺🇾", FREDCode: "UY"},
	"PRY": {Code: "PRY", Name: "Paraguay", Region: "South America", SubRegion: "South America", IncomeLevel: IncomeUpperMiddle, Currency: "PYG", Flag: "🇵🇾", FREDCode: "PY"},

	// Europe - Western
	"GBR": {Code: "GBR", Name: "United Kingdom", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "GBP", Flag: "🇬🇧", FREDCode: "GB", OECDMember: true},
	"DEU": {Code: "DEU", Name: "Germany", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇩🇪", FREDCode: "DE", OECDMember: true},
	"FRA": {Code: "FRA", Name: "France", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇫🇷", FREDCode: "FR", OECDMember: true},
	"NLD": {Code: "NLD", Name: "Netherlands", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇳🇱", FREDCode: "NL", OECDMember: true},
	"BEL": {Code: "BEL", Name: "Belgium", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇧🇪", FREDCode: "BE", OECDMember: true},
	"CHE": {Code: "CHE", Name: "Switzerland", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "CHF", Flag: "🇨🇭", FREDCode: "CH", OECDMember: true},
	"AUT": {Code: "AUT", Name: "Austria", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇦🇹", FREDCode: "AT", OECDMember: true},
	"IRL": {Code: "IRL", Name: "Ireland", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇮🇪", FREDCode: "IE", OECDMember: true},
	"LUX": {Code: "LUX", Name: "Luxembourg", Region: "Europe", SubRegion: "Western Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇱🇺", FREDCode: "LU", OECDMember: true},

	// Europe - Northern
	"SWE": {Code: "SWE", Name: "Sweden", Region: "Europe", SubRegion: "Northern Europe", IncomeLevel: IncomeHigh, Currency: "SEK", Flag: "🇸🇪", FREDCode: "SE", OECDMember: true},
	"NOR": {Code: "NOR", Name: "Norway", Region: "Europe", SubRegion: "Northern Europe", IncomeLevel: IncomeHigh, Currency: "NOK", Flag: "🇳🇴", FREDCode: "NO", OECDMember: true},
	"DNK": {Code: "DNK", Name: "Denmark", Region: "Europe", SubRegion: "Northern Europe", IncomeLevel: IncomeHigh, Currency: "DKK", Flag: "🇩🇰", FREDCode: "DK", OECDMember: true},
	"FIN": {Code: "FIN", Name: "Finland", Region: "Europe", SubRegion: "Northern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇫🇮", FREDCode: "FI", OECDMember: true},
	"ISL": {Code: "ISL", Name: "Iceland", Region: "Europe", SubRegion: "Northern Europe", IncomeLevel: IncomeHigh, Currency: "ISK", Flag: "🇮🇸", FREDCode: "IS", OECDMember: true},

	// Europe - Southern
	"ITA": {Code: "ITA", Name: "Italy", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇮🇹", FREDCode: "IT", OECDMember: true},
	"ESP": {Code: "ESP", Name: "Spain", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇪🇸", FREDCode: "ES", OECDMember: true},
	"PRT": {Code: "PRT", Name: "Portugal", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇵🇹", FREDCode: "PT", OECDMember: true},
	"GRC": {Code: "GRC", Name: "Greece", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇬🇷", FREDCode: "GR", OECDMember: true},
	"SVN": {Code: "SVN", Name: "Slovenia", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇸🇮", FREDCode: "SI", OECDMember: true},
	"HRV": {Code: "HRV", Name: "Croatia", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇭🇷", FREDCode: "HR"},
	"SRB": {Code: "SRB", Name: "Serbia", Region: "Europe", SubRegion: "Southern Europe", IncomeLevel: IncomeUpperMiddle, Currency: "RSD", Flag: "🇷🇸", FREDCode: "RS"},

	// Europe - Eastern
	"POL": {Code: "POL", Name: "Poland", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "PLN", Flag: "🇵🇱", FREDCode: "PL", OECDMember: true},
	"CZE": {Code: "CZE", Name: "Czech Republic", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "CZK", Flag: "🇨🇿", FREDCode: "CZ", OECDMember: true},
	"HUN": {Code: "HUN", Name: "Hungary", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "HUF", Flag: "🇭🇺", FREDCode: "HU", OECDMember: true},
	"ROU": {Code: "ROU", Name: "Romania", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeUpperMiddle, Currency: "RON", Flag: "🇷🇴", FREDCode: "RO"},
	"BGR": {Code: "BGR", Name: "Bulgaria", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeUpperMiddle, Currency: "BGN", Flag: "🇧🇬", FREDCode: "BG"},
	"UKR": {Code: "UKR", Name: "Ukraine", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeLowerMiddle, Currency: "UAH", Flag: "🇺🇦", FREDCode: "UA"},
	"SVK": {Code: "SVK", Name: "Slovakia", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇸🇰", FREDCode: "SK", OECDMember: true},
	"EST": {Code: "EST", Name: "Estonia", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇪🇪", FREDCode: "EE", OECDMember: true},
	"LVA": {Code: "LVA", Name: "Latvia", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇱🇻", FREDCode: "LV", OECDMember: true},
	"LTU": {Code: "LTU", Name: "Lithuania", Region: "Europe", SubRegion: "Eastern Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇱🇹", FREDCode: "LT", OECDMember: true},

	// Russia and CIS
	"RUS": {Code: "RUS", Name: "Russia", Region: "Russia and CIS", SubRegion: "Eastern Europe", IncomeLevel: IncomeUpperMiddle, Currency: "RUB", Flag: "🇷🇺", FREDCode: "RU"},
	"KAZ": {Code: "KAZ", Name: "Kazakhstan", Region: "Russia and CIS", SubRegion: "Central Asia", IncomeLevel: IncomeUpperMiddle, Currency: "KZT", Flag: "🇰🇿", FREDCode: "KZ"},
	"UZB": {Code: "UZB", Name: "Uzbekistan", Region: "Russia and CIS", SubRegion: "Central Asia", IncomeLevel: IncomeLowerMiddle, Currency: "UZS", Flag: "🇺🇿", FREDCode: "UZ"},
	"BLR": {Code: "BLR", Name: "Belarus", Region: "Russia and CIS", SubRegion: "Eastern Europe", IncomeLevel: IncomeUpperMiddle, Currency: "BYN", Flag: "🇧🇾", FREDCode: "BY"},
	"AZE": {Code: "AZE", Name: "Azerbaijan", Region: "Russia and CIS", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "AZN", Flag: "🇦🇿", FREDCode: "AZ"},
	"GEO": {Code: "GEO", Name: "Georgia", Region: "Russia and CIS", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "GEL", Flag: "🇬🇪", FREDCode: "GE"},
	"ARM": {Code: "ARM", Name: "Armenia", Region: "Russia and CIS", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "AMD", Flag: "🇦🇲", FREDCode: "AM"},

	// Asia - East
	"CHN": {Code: "CHN", Name: "China", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeUpperMiddle, Currency: "CNY", Flag: "🇨🇳", FREDCode: "CN"},
	"JPN": {Code: "JPN", Name: "Japan", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeHigh, Currency: "JPY", Flag: "🇯🇵", FREDCode: "JP", OECDMember: true},
	"KOR": {Code: "KOR", Name: "South Korea", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeHigh, Currency: "KRW", Flag: "🇰🇷", FREDCode: "KR", OECDMember: true},
	"TWN": {Code: "TWN", Name: "Taiwan", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeHigh, Currency: "TWD", Flag: "🇹🇼", FREDCode: "TW"},
	"HKG": {Code: "HKG", Name: "Hong Kong", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeHigh, Currency: "HKD", Flag: "🇭🇰", FREDCode: "HK"},
	"MNG": {Code: "MNG", Name: "Mongolia", Region: "Asia", SubRegion: "Eastern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "MNT", Flag: "🇲🇳", FREDCode: "MN"},

	// Asia - South
	"IND": {Code: "IND", Name: "India", Region: "Asia", SubRegion: "Southern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "INR", Flag: "🇮🇳", FREDCode: "IN"},
	"PAK": {Code: "PAK", Name: "Pakistan", Region: "Asia", SubRegion: "Southern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "PKR", Flag: "🇵🇰", FREDCode: "PK"},
	"BGD": {Code: "BGD", Name: "Bangladesh", Region: "Asia", SubRegion: "Southern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "BDT", Flag: "🇧🇩", FREDCode: "BD"},
	"LKA": {Code: "LKA", Name: "Sri Lanka", Region: "Asia", SubRegion: "Southern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "LKR", Flag: "🇱🇰", FREDCode: "LK"},
	"NPL": {Code: "NPL", Name: "Nepal", Region: "Asia", SubRegion: "Southern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "NPR", Flag: "🇳🇵", FREDCode: "NP"},

	// Asia - Southeast
	"IDN": {Code: "IDN", Name: "Indonesia", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeUpperMiddle, Currency: "IDR", Flag: "🇮🇩", FREDCode: "ID"},
	"THA": {Code: "THA", Name: "Thailand", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeUpperMiddle, Currency: "THB", Flag: "🇹🇭", FREDCode: "TH"},
	"VNM": {Code: "VNM", Name: "Vietnam", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "VND", Flag: "🇻🇳", FREDCode: "VN"},
	"MYS": {Code: "MYS", Name: "Malaysia", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeUpperMiddle, Currency: "MYR", Flag: "🇲🇾", FREDCode: "MY"},
	"SGP": {Code: "SGP", Name: "Singapore", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeHigh, Currency: "SGD", Flag: "🇸🇬", FREDCode: "SG"},
	"PHL": {Code: "PHL", Name: "Philippines", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "PHP", Flag: "🇵🇭", FREDCode: "PH"},
	"MMR": {Code: "MMR", Name: "Myanmar", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "MMK", Flag: "🇲🇲", FREDCode: "MM"},
	"KHM": {Code: "KHM", Name: "Cambodia", Region: "Asia", SubRegion: "South-Eastern Asia", IncomeLevel: IncomeLowerMiddle, Currency: "KHR", Flag: "🇰🇭", FREDCode: "KH"},

	// Middle East
	"SAU": {Code: "SAU", Name: "Saudi Arabia", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "SAR", Flag: "🇸🇦", FREDCode: "SA"},
	"ARE": {Code: "ARE", Name: "United Arab Emirates", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "AED", Flag: "🇦🇪", FREDCode: "AE"},
	"ISR": {Code: "ISR", Name: "Israel", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "ILS", Flag: "🇮🇱", FREDCode: "IL", OECDMember: true},
	"TUR": {Code: "TUR", Name: "Turkey", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "TRY", Flag: "🇹🇷", FREDCode: "TR", OECDMember: true},
	"IRN": {Code: "IRN", Name: "Iran", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeLowerMiddle, Currency: "IRR", Flag: "🇮🇷", FREDCode: "IR"},
	"IRQ": {Code: "IRQ", Name: "Iraq", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "IQD", Flag: "🇮🇶", FREDCode: "IQ"},
	"QAT": {Code: "QAT", Name: "Qatar", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "QAR", Flag: "🇶🇦", FREDCode: "QA"},
	"KWT": {Code: "KWT", Name: "Kuwait", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "KWD", Flag: "🇰🇼", FREDCode: "KW"},
	"OMN": {Code: "OMN", Name: "Oman", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "OMR", Flag: "🇴🇲", FREDCode: "OM"},
	"JOR": {Code: "JOR", Name: "Jordan", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "JOD", Flag: "🇯🇴", FREDCode: "JO"},
	"LBN": {Code: "LBN", Name: "Lebanon", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeUpperMiddle, Currency: "LBP", Flag: "🇱🇧", FREDCode: "LB"},
	"BHR": {Code: "BHR", Name: "Bahrain", Region: "Middle East", SubRegion: "Western Asia", IncomeLevel: IncomeHigh, Currency: "BHD", Flag: "🇧🇭", FREDCode: "BH"},

	// Africa - North
	"EGY": {Code: "EGY", Name: "Egypt", Region: "Africa", SubRegion: "Northern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "EGP", Flag: "🇪🇬", FREDCode: "EG"},
	"MAR": {Code: "MAR", Name: "Morocco", Region: "Africa", SubRegion: "Northern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "MAD", Flag: "🇲🇦", FREDCode: "MA"},
	"DZA": {Code: "DZA", Name: "Algeria", Region: "Africa", SubRegion: "Northern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "DZD", Flag: "🇩🇿", FREDCode: "DZ"},
	"TUN": {Code: "TUN", Name: "Tunisia", Region: "Africa", SubRegion: "Northern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "TND", Flag: "🇹🇳", FREDCode: "TN"},
	"LBY": {Code: "LBY", Name: "Libya", Region: "Africa", SubRegion: "Northern Africa", IncomeLevel: IncomeUpperMiddle, Currency: "LYD", Flag: "🇱🇾", FREDCode: "LY"},

	// Africa - Sub-Saharan
	"ZAF": {Code: "ZAF", Name: "South Africa", Region: "Africa", SubRegion: "Southern Africa", IncomeLevel: IncomeUpperMiddle, Currency: "ZAR", Flag: "🇿🇦", FREDCode: "ZA"},
	"NGA": {Code: "NGA", Name: "Nigeria", Region: "Africa", SubRegion: "Western Africa", IncomeLevel: IncomeLowerMiddle, Currency: "NGN", Flag: "🇳🇬", FREDCode: "NG"},
	"KEN": {Code: "KEN", Name: "Kenya", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "KES", Flag: "🇰🇪", FREDCode: "KE"},
	"ETH": {Code: "ETH", Name: "Ethiopia", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLow, Currency: "ETB", Flag: "🇪🇹", FREDCode: "ET"},
	"GHA": {Code: "GHA", Name: "Ghana", Region: "Africa", SubRegion: "Western Africa", IncomeLevel: IncomeLowerMiddle, Currency: "GHS", Flag: "🇬🇭", FREDCode: "GH"},
	"TZA": {Code: "TZA", Name: "Tanzania", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "TZS", Flag: "🇹🇿", FREDCode: "TZ"},
	"UGA": {Code: "UGA", Name: "Uganda", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLow, Currency: "UGX", Flag: "🇺🇬", FREDCode: "UG"},
	"AGO": {Code: "AGO", Name: "Angola", Region: "Africa", SubRegion: "Middle Africa", IncomeLevel: IncomeLowerMiddle, Currency: "AOA", Flag: "🇦🇴", FREDCode: "AO"},
	"SEN": {Code: "SEN", Name: "Senegal", Region: "Africa", SubRegion: "Western Africa", IncomeLevel: IncomeLowerMiddle, Currency: "XOF", Flag: "🇸🇳", FREDCode: "SN"},
	"CIV": {Code: "CIV", Name: "Ivory Coast", Region: "Africa", SubRegion: "Western Africa", IncomeLevel: IncomeLowerMiddle, Currency: "XOF", Flag: "🇨🇮", FREDCode: "CI"},
	"CMR": {Code: "CMR", Name: "Cameroon", Region: "Africa", SubRegion: "Middle Africa", IncomeLevel: IncomeLowerMiddle, Currency: "XAF", Flag: "🇨🇲", FREDCode: "CM"},
	"ZWE": {Code: "ZWE", Name: "Zimbabwe", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLowerMiddle, Currency: "ZWL", Flag: "🇿🇼", FREDCode: "ZW"},
	"RWA": {Code: "RWA", Name: "Rwanda", Region: "Africa", SubRegion: "Eastern Africa", IncomeLevel: IncomeLow, Currency: "RWF", Flag: "🇷🇼", FREDCode: "RW"},

	// Oceania
	"AUS": {Code: "AUS", Name: "Australia", Region: "Oceania", SubRegion: "Oceania", IncomeLevel: IncomeHigh, Currency: "AUD", Flag: "🇦🇺", FREDCode: "AU", OECDMember: true},
	"NZL": {Code: "NZL", Name: "New Zealand", Region: "Oceania", SubRegion: "Oceania", IncomeLevel: IncomeHigh, Currency: "NZD", Flag: "🇳🇿", FREDCode: "NZ", OECDMember: true},

	// Aggregates
	"EUU": {Code: "EUU", Name: "European Union", Region: "Aggregates", SubRegion: "Europe", IncomeLevel: IncomeHigh, Currency: "EUR", Flag: "🇪🇺", FREDCode: "EU"},
}

// regions groups country codes into the fourteen dashboard groupings.
var regions = map[string][]string{
	"North America":       {"USA", "CAN", "MEX"},
	"South America":       {"BRA", "ARG", "CHL", "COL", "PER", "VEN", "ECU", "BOL", "URY", "PRY"},
	"Europe - Western":    {"GBR", "DEU", "FRA", "NLD", "BEL", "CHE", "AUT", "IRL", "LUX"},
	"Europe - Northern":   {"SWE", "NOR", "DNK", "FIN", "ISL"},
	"Europe - Southern":   {"ITA", "ESP", "PRT", "GRC", "SVN", "HRV", "SRB"},
	"Europe - Eastern":    {"POL", "CZE", "HUN", "ROU", "BGR", "UKR", "SVK", "EST", "LVA", "LTU"},
	"Russia and CIS":      {"RUS", "KAZ", "UZB", "BLR", "AZE", "GEO", "ARM"},
	"Asia - East":         {"CHN", "JPN", "KOR", "TWN", "HKG", "MNG"},
	"Asia - South":        {"IND", "PAK", "BGD", "LKA", "NPL"},
	"Asia - Southeast":    {"IDN", "THA", "VNM", "MYS", "SGP", "PHL", "MMR", "KHM"},
	"Middle East":         {"SAU", "ARE", "ISR", "TUR", "IRN", "IRQ", "QAT", "KWT", "OMN", "JOR", "LBN", "BHR"},
	"Africa - North":      {"EGY", "MAR", "DZA", "TUN", "LBY"},
	"Africa - Sub-Saharan": {"ZAF", "NGA", "KEN", "ETH", "GHA", "TZA", "UGA", "AGO", "SEN", "CIV", "CMR", "ZWE", "RWA"},
	"Oceania":             {"AUS", "NZL"},
}

var regionOrder = []string{
	"North America",
	"South America",
	"Europe - Western",
	"Europe - Northern",
	"Europe - Southern",
	"Europe - Eastern",
	"Russia and CIS",
	"Asia - East",
	"Asia - South",
	"Asia - Southeast",
	"Middle East",
	"Africa - North",
	"Africa - Sub-Saharan",
	"Oceania",
}
