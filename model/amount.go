// file: model/amount.go

package model

import "github.com/shopspring/decimal"

// AmountScale is the number of fractional digits the ledger stores.
// It matches the NUMERIC(20,4) columns in the schema.
const AmountScale = 4

// AmountIntegerDigits is how many digits NUMERIC(20,4) leaves before the
// decimal point.
const AmountIntegerDigits = 20 - AmountScale

// MaxAmount is the exclusive upper bound on any amount or balance.
var MaxAmount = decimal.New(1, AmountIntegerDigits)

// HasValidScale reports whether d can be stored without rounding.
// Only the coefficient's own digits are ever materialized, so a huge
// exponent cannot blow up the check.
func HasValidScale(d decimal.Decimal) bool {
	if d.IsZero() || d.Exponent() >= -AmountScale {
		return true
	}
	if int64(d.Exponent()) < -int64(AmountScale)-int64(d.NumDigits()) {
		return false
	}
	return d.Equal(d.Truncate(AmountScale))
}

// WithinRange reports whether |d| < MaxAmount, judged from the digit count
// and exponent without expanding d.
func WithinRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	return int64(d.NumDigits())+int64(d.Exponent()) <= AmountIntegerDigits
}

// IsStorable reports whether d fits a NUMERIC(20,4) column exactly.
func IsStorable(d decimal.Decimal) bool {
	return WithinRange(d) && HasValidScale(d)
}
