package ext

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/ib-77/ropkit/pkg/validate"
)

// DecimalPlaces returns the number of digits after the decimal point,
// trailing zeros included ("1.50" has two).
func DecimalPlaces(value decimal.Decimal) int {
	if exp := value.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

// ToTickSize returns the smallest step for the given number of decimal
// places: ToTickSize(3) is 0.001.
func ToTickSize(decimalPlaces int) decimal.Decimal {
	validate.Must(validate.IntNotOutOfRange(decimalPlaces, "decimalPlaces", 0, math.MaxInt32, validate.Inclusive))

	return decimal.New(1, -int32(decimalPlaces))
}
