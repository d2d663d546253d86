package validate

import (
	"cmp"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// RangeEndPoints selects which bounds of a range are part of it.
type RangeEndPoints int

const (
	Inclusive      RangeEndPoints = iota // [lower, upper]
	LowerExclusive                       // (lower, upper]
	UpperExclusive                       // [lower, upper)
	Exclusive                            // (lower, upper)
)

func (r RangeEndPoints) String() string {
	switch r {
	case Inclusive:
		return "Inclusive"
	case LowerExclusive:
		return "LowerExclusive"
	case UpperExclusive:
		return "UpperExclusive"
	case Exclusive:
		return "Exclusive"
	}
	return fmt.Sprintf("RangeEndPoints(%d)", int(r))
}

func (r RangeEndPoints) valid() bool {
	return r >= Inclusive && r <= Exclusive
}

func (r RangeEndPoints) notation(lower, upper any) string {
	open, closing := "[", "]"
	if r == LowerExclusive || r == Exclusive {
		open = "("
	}
	if r == UpperExclusive || r == Exclusive {
		closing = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", open, lower, upper, closing)
}

// within takes the comparison of the value against each bound (-1, 0, +1).
func (r RangeEndPoints) within(toLower, toUpper int) bool {
	switch r {
	case Inclusive:
		return toLower >= 0 && toUpper <= 0
	case LowerExclusive:
		return toLower > 0 && toUpper <= 0
	case UpperExclusive:
		return toLower >= 0 && toUpper < 0
	case Exclusive:
		return toLower > 0 && toUpper < 0
	}
	return false
}

// InRange reports whether value lies within the range. NaN is never in range.
func InRange[T constraints.Ordered](value, lower, upper T, endPoints RangeEndPoints) bool {
	if value != value {
		return false
	}
	return endPoints.within(cmp.Compare(value, lower), cmp.Compare(value, upper))
}

func IntNotOutOfRange[T constraints.Integer](value T, param string, lower, upper T,
	endPoints RangeEndPoints) error {

	if !endPoints.valid() {
		return invalidEndPoints(endPoints, param)
	}
	if !InRange(value, lower, upper, endPoints) {
		return outOfRange(param, endPoints.notation(lower, upper), value)
	}
	return nil
}

// FloatNotOutOfRange rejects NaN and infinities before comparing against the bounds.
func FloatNotOutOfRange[T constraints.Float](value T, param string, lower, upper T,
	endPoints RangeEndPoints) error {

	if !endPoints.valid() {
		return invalidEndPoints(endPoints, param)
	}
	if isInvalidNumber(value) {
		return NewError(ErrOutOfRange, param, "The %s value is an invalid number", param)
	}
	if !InRange(value, lower, upper, endPoints) {
		return outOfRange(param, endPoints.notation(lower, upper), value)
	}
	return nil
}

func DecimalNotOutOfRange(value decimal.Decimal, param string, lower, upper decimal.Decimal,
	endPoints RangeEndPoints) error {

	if !endPoints.valid() {
		return invalidEndPoints(endPoints, param)
	}
	if !endPoints.within(value.Cmp(lower), value.Cmp(upper)) {
		return outOfRange(param, endPoints.notation(lower, upper), value)
	}
	return nil
}

// NotInvalidNumber passes if value is neither NaN nor an infinity.
func NotInvalidNumber[T constraints.Float](value T, param string) error {
	if isInvalidNumber(value) {
		return NewError(ErrOutOfRange, param, "The %s is an invalid number", param)
	}
	return nil
}

func isInvalidNumber[T constraints.Float](value T) bool {
	f := float64(value)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

func outOfRange(param, notation string, value any) error {
	return NewError(ErrOutOfRange, param,
		"The %s is not within the specified range %s. Value = %v", param, notation, value)
}

func invalidEndPoints(endPoints RangeEndPoints, param string) error {
	return NewError(ErrInvalidArgument, param, "The %s range end points %s are not defined", param, endPoints)
}
