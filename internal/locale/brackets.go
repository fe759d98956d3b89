package locale

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// IncomeBracket is one annual income range. The last bracket of every
// currency is open-ended (no upper bound).
type IncomeBracket struct {
	ID        string
	Lower     int64
	Upper     int64
	OpenEnded bool
	Label     string
}

// Bracket cut points per currency, PPP-adjusted. Five cut points produce six
// brackets: one below the first cut, four between cuts, one open-ended above
// the last.
var bracketCuts = map[string][]int64{
	"USD": {25000, 50000, 75000, 100000, 150000},
	"CAD": {30000, 60000, 90000, 120000, 180000},
	"GBP": {20000, 35000, 50000, 75000, 100000},
	"EUR": {22000, 40000, 60000, 80000, 120000},
	"AUD": {35000, 65000, 90000, 120000, 180000},
	"JPY": {3000000, 6000000, 9000000, 12000000, 18000000},
	"SGD": {30000, 60000, 90000, 120000, 180000},
	"INR": {500000, 1000000, 2000000, 3000000, 5000000},
}

// incomeBrackets builds the bracket list for a currency. The symbol follows
// the requested currency; the cut points fall back to USD when the currency
// has no table of its own.
func incomeBrackets(currency string) []IncomeBracket {
	symbol := Symbol(currency)
	cuts, ok := bracketCuts[currency]
	if !ok {
		currency = DefaultCurrency
		cuts = bracketCuts[DefaultCurrency]
	}
	group := func(n int64) string {
		if currency == "INR" {
			return indianComma(n)
		}
		return humanize.Comma(n)
	}

	brackets := make([]IncomeBracket, 0, len(cuts)+1)
	brackets = append(brackets, IncomeBracket{
		ID:    fmt.Sprintf("under-%d", cuts[0]),
		Upper: cuts[0],
		Label: fmt.Sprintf("Under %s%s", symbol, group(cuts[0])),
	})
	for i := 1; i < len(cuts); i++ {
		brackets = append(brackets, IncomeBracket{
			ID:    fmt.Sprintf("%d-%d", cuts[i-1], cuts[i]),
			Lower: cuts[i-1],
			Upper: cuts[i],
			Label: fmt.Sprintf("%s%s - %s%s", symbol, group(cuts[i-1]), symbol, group(cuts[i])),
		})
	}
	last := cuts[len(cuts)-1]
	brackets = append(brackets, IncomeBracket{
		ID:        fmt.Sprintf("over-%d", last),
		Lower:     last,
		OpenEnded: true,
		Label:     fmt.Sprintf("Over %s%s", symbol, group(last)),
	})
	return brackets
}

// indianComma groups digits in the lakh/crore style: the last three digits
// form one group, every two digits after that (5,00,000).
func indianComma(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
