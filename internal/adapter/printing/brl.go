package printing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a value the way the shop's printed documents show money:
// "R$ 1234,56", decimal comma, two places, no thousands separator.
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + strings.Replace(v.StringFixed(2), ".", ",", 1)
}
