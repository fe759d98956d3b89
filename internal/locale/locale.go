// Package locale maps a country selection to a currency code and to
// currency-specific presentation data: symbol, PPP-adjusted goal baselines,
// and annual income brackets. Every lookup is total: unknown inputs resolve
// to the USD presentation instead of failing, since localization is a UX
// enhancement rather than a correctness boundary.
package locale

// DefaultCurrency is the fallback for unknown countries and currencies.
const DefaultCurrency = "USD"

// countryCurrency maps a country selection to its currency code.
var countryCurrency = map[string]string{
	"us":           "USD",
	"canada":       "CAD",
	"uk":           "GBP",
	"germany":      "EUR",
	"france":       "EUR",
	"australia":    "AUD",
	"japan":        "JPY",
	"singapore":    "SGD",
	"india":        "INR",
	"brazil":       "BRL",
	"mexico":       "MXN",
	"south-africa": "ZAR",
	"netherlands":  "EUR",
	"sweden":       "SEK",
	"switzerland":  "CHF",
	"other":        "USD",
}

var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "C$",
	"GBP": "£",
	"EUR": "€",
	"AUD": "A$",
	"JPY": "¥",
	"SGD": "S$",
	"INR": "₹",
	"BRL": "R$",
	"MXN": "MX$",
	"ZAR": "R",
	"SEK": "kr",
	"CHF": "CHF",
}

// GoalBaselines holds the currency-scaled starting and target amounts for
// the default goal set.
type GoalBaselines struct {
	EmergencyCurrent  float64
	EmergencyTarget   float64
	DebtCurrent       float64
	InvestmentCurrent float64
	InvestmentTarget  float64
}

// Presentation bundles everything needed to localize amounts for a currency.
type Presentation struct {
	Currency       string
	Symbol         string
	Baselines      GoalBaselines
	IncomeBrackets []IncomeBracket
}

// PPP-adjusted baselines per currency.
var goalBaselines = map[string]GoalBaselines{
	"USD": {2500, 10000, 3500, 1200, 5000},
	"CAD": {3200, 13000, 4500, 1500, 6500},
	"GBP": {2000, 8000, 2800, 1000, 4000},
	"EUR": {2200, 9000, 3100, 1100, 4500},
	"AUD": {3500, 14000, 5000, 1700, 7000},
	"JPY": {300000, 1200000, 420000, 144000, 600000},
	"SGD": {3200, 13000, 4500, 1500, 6500},
	"INR": {200000, 800000, 280000, 96000, 400000},
}

// ResolveCurrency maps a country selection to its currency code. Unknown
// countries resolve to the default currency.
func ResolveCurrency(country string) string {
	if c, ok := countryCurrency[country]; ok {
		return c
	}
	return DefaultCurrency
}

// Symbol returns the display symbol for a currency code, defaulting to "$".
func Symbol(currency string) string {
	if s, ok := currencySymbols[currency]; ok {
		return s
	}
	return currencySymbols[DefaultCurrency]
}

// Resolve returns the full presentation for a currency code. Currencies
// without their own baseline and bracket tables fall back to the USD tables
// while keeping their own symbol when one is known.
func Resolve(currency string) Presentation {
	symbol := Symbol(currency)
	brackets := incomeBrackets(currency)
	baselines, ok := goalBaselines[currency]
	if !ok {
		currency = DefaultCurrency
		baselines = goalBaselines[DefaultCurrency]
	}
	return Presentation{
		Currency:       currency,
		Symbol:         symbol,
		Baselines:      baselines,
		IncomeBrackets: brackets,
	}
}

// Countries returns the selectable country codes in presentation order.
func Countries() []string {
	return []string{
		"us", "canada", "uk", "germany", "france", "australia", "japan",
		"singapore", "india", "brazil", "mexico", "south-africa",
		"netherlands", "sweden", "switzerland", "other",
	}
}
