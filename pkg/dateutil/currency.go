package dateutil

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is the Pakistani Rupee glyph prefixed to every formatted amount.
const CurrencySymbol = "₨"

// en-PK groups digits in threes with a comma, same as English.
var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency formats an amount in Pakistani Rupees, e.g. 1234.5 => ₨1,234.5.
// At most two fraction digits are kept and trailing zeros are dropped. Rounding is
// half away from zero on the shortest decimal form of amount, so 1.005 => ₨1.01.
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return CurrencySymbol + "NaN"
	case math.IsInf(amount, 1):
		return CurrencySymbol + "∞"
	case math.IsInf(amount, -1):
		return CurrencySymbol + "-∞"
	}

	sign := ""
	if math.Signbit(amount) {
		sign = "-"
		amount = -amount
	}

	formatted := currencyPrinter.Sprintf("%.2f", roundCents(amount))
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	}

	return CurrencySymbol + sign + formatted
}

// roundCents rounds a non-negative amount to two decimals, deciding on the digits
// of its shortest decimal representation rather than its binary value.
func roundCents(amount float64) float64 {
	digits := strconv.FormatFloat(amount, 'f', -1, 64)
	whole, fraction, ok := strings.Cut(digits, ".")
	if !ok || len(fraction) <= 2 {
		return amount
	}

	truncated, err := strconv.ParseFloat(whole+"."+fraction[:2], 64)
	if err != nil {
		return amount
	}
	if fraction[2] >= '5' {
		truncated += 0.01
	}
	return truncated
}
