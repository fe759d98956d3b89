package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrency(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"us", "USD"},
		{"japan", "JPY"},
		{"uk", "GBP"},
		{"germany", "EUR"},
		{"netherlands", "EUR"},
		{"india", "INR"},
		{"other", "USD"},
		{"atlantis", "USD"},
		{"", "USD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveCurrency(tt.country), "country %q", tt.country)
	}
}

func TestResolve_KnownCurrency(t *testing.T) {
	p := Resolve("JPY")
	assert.Equal(t, "JPY", p.Currency)
	assert.Equal(t, "¥", p.Symbol)
	assert.Equal(t, 300000.0, p.Baselines.EmergencyCurrent)
	assert.Equal(t, 1200000.0, p.Baselines.EmergencyTarget)

	require.Len(t, p.IncomeBrackets, 6)
	assert.Equal(t, "under-3000000", p.IncomeBrackets[0].ID)
	assert.Equal(t, "Under ¥3,000,000", p.IncomeBrackets[0].Label)
	assert.Equal(t, "Over ¥18,000,000", p.IncomeBrackets[5].Label)
	assert.True(t, p.IncomeBrackets[5].OpenEnded)
}

func TestResolve_UnknownFallsBackToUSD(t *testing.T) {
	p := Resolve("XXX")
	usd := Resolve("USD")
	assert.Equal(t, usd, p)
}

// Currencies with a known symbol but no amount tables keep their symbol and
// fall back to the USD amounts, as the onboarding screens do.
func TestResolve_SymbolOnlyCurrency(t *testing.T) {
	p := Resolve("BRL")
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, "R$", p.Symbol)
	assert.Equal(t, Resolve("USD").Baselines, p.Baselines)

	require.Len(t, p.IncomeBrackets, 6)
	for i, b := range p.IncomeBrackets {
		assert.Contains(t, b.Label, "R$", "bracket %d", i)
		assert.NotContains(t, b.Label, " $", "bracket %d reverted to the USD symbol", i)
	}
	assert.Equal(t, "Under R$25,000", p.IncomeBrackets[0].Label)
	assert.Equal(t, "Over R$150,000", p.IncomeBrackets[5].Label)

	assert.Equal(t, "Under MX$25,000", Resolve("MXN").IncomeBrackets[0].Label)
}

func TestIncomeBrackets_OrderedAndContiguous(t *testing.T) {
	for _, currency := range []string{"USD", "CAD", "GBP", "EUR", "AUD", "JPY", "SGD", "INR"} {
		brackets := Resolve(currency).IncomeBrackets
		require.Len(t, brackets, 6, "currency %s", currency)
		for i := 1; i < len(brackets); i++ {
			assert.Equal(t, brackets[i-1].Upper, brackets[i].Lower,
				"%s bracket %d not contiguous", currency, i)
		}
		for i, b := range brackets {
			assert.Equal(t, i == len(brackets)-1, b.OpenEnded, "%s bracket %d", currency, i)
		}
	}
}

func TestIndianComma(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{999, "999"},
		{1000, "1,000"},
		{500000, "5,00,000"},
		{1000000, "10,00,000"},
		{5000000, "50,00,000"},
		{120000000, "12,00,00,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, indianComma(tt.n), "n=%d", tt.n)
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "₹", Symbol("INR"))
	assert.Equal(t, "CHF", Symbol("CHF"))
	assert.Equal(t, "$", Symbol("???"))
}
