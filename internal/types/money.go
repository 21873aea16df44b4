package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalTolerance is the fixed tolerance below which a balance is treated
// as zero. Amounts within one cent of each other are considered equal so
// that float-entered payments never leave phantom residues on the ledger.
var DecimalTolerance = decimal.NewFromFloat(0.01)

// ApproxZero reports whether value is zero within DecimalTolerance.
func ApproxZero(value decimal.Decimal) bool {
	return value.Abs().LessThanOrEqual(DecimalTolerance)
}

// ApproxEqual reports whether a and b are equal within DecimalTolerance.
func ApproxEqual(a, b decimal.Decimal) bool {
	return ApproxZero(a.Sub(b))
}

// FormatAmount renders an amount the way the POS displays it, e.g. "$35.00".
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("$%s", amount.StringFixed(2))
}
