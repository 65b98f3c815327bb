package utils

import "fmt"

// currencyFormats defines per-currency display rules. The amount parameter
// everywhere in this codebase is the smallest currency unit (cents), so
// 15000 renders as $150.00.
var currencyFormats = map[string]struct {
	symbol   string
	decimals bool
	position string // "before" or "after"
}{
	"USD": {symbol: "$", decimals: true, position: "before"},
	"EUR": {symbol: "€", decimals: true, position: "before"},
	"GBP": {symbol: "£", decimals: true, position: "before"},
	"CNY": {symbol: "¥", decimals: true, position: "before"},
	"JPY": {symbol: "¥", decimals: false, position: "before"},
}

// FormatAmount formats an amount in the smallest currency unit for display.
// Unknown currency codes fall back to "<code> <amount>".
func FormatAmount(cents int64, currency string) string {
	format, ok := currencyFormats[currency]
	if !ok {
		return fmt.Sprintf("%s %d.%02d", currency, cents/100, cents%100)
	}

	var value string
	if format.decimals {
		value = fmt.Sprintf("%d.%02d", cents/100, cents%100)
	} else {
		value = fmt.Sprintf("%d", cents/100)
	}

	if format.position == "after" {
		return value + format.symbol
	}
	return format.symbol + value
}
