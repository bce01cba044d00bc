package presenter

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"pay-dashboard-api/internal/model"
)

var symbols = map[string]string{
	"KRW": "₩",
	"USD": "US$",
	"EUR": "€",
	"JPY": "JP¥",
	"CNY": "CN¥",
	"GBP": "£",
}

// FormatCurrency renders amount with the currency's symbol, digit grouping and minor
// unit scale. An empty code means KRW; an unknown code is used as its own prefix.
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = model.DefaultCurrency
	}

	scale := 2
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}

	rounded := amount.Round(int32(scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(symbolFor(code))
	b.WriteString(groupDigits(rounded.Truncate(0).String()))
	if scale > 0 {
		fixed := rounded.StringFixed(int32(scale))
		b.WriteString(fixed[strings.IndexByte(fixed, '.'):])
	}
	return b.String()
}

// groupDigits puts a comma between every three digits of a non-negative integer string.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func symbolFor(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}
