// Package pricing renders money amounts for display.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPrice formats amount as US dollars, e.g. "$1,299.99".
func FormatPrice(amount decimal.Decimal) string {
	return FormatPriceIn(amount, DefaultCurrency)
}

// FormatPriceIn formats amount in the currency identified by an ISO 4217 code using
// en-US conventions. Unrecognised codes fall back to "<CODE> 1,234.50".
func FormatPriceIn(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", strings.ToUpper(code), digits(amount, 2))
	}

	scale, _ := currency.Standard.Rounding(unit)
	symbol := printer.Sprint(currency.Symbol(unit))

	rounded := amount.Round(int32(scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + digits(rounded, scale)
}

// digits renders amount with scale fraction digits and comma-grouped thousands.
// The digits come from the decimal itself so large amounts keep every digit.
func digits(amount decimal.Decimal, scale int) string {
	fixed := amount.StringFixed(int32(scale))
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
