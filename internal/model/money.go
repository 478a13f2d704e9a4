package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/cashflow-journal/internal/common"
)

func init() {
	// Snapshots store amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseAmount parses a user-supplied amount. It accepts an optional leading
// "$" and thousands separators, rejects negatives, and allows at most two
// fractional digits.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, common.Validationf("amount cannot be empty")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, common.Validationf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, common.Validationf("amount cannot be negative")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, common.Validationf("amount %s has more than two decimal places", s)
	}
	return d.Round(2), nil
}

// FormatUSD renders an amount as US currency, for example -$1,234.50.
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%s$%s.%s", sign, b.String(), frac)
}
