package ext

import (
	"math"

	"github.com/samber/lo"

	"github.com/ib-77/ropkit/pkg/validate"
)

func IsCountZero[T any](collection []T) bool {
	return len(collection) == 0
}

// LastIndex returns the index of the last element, or -1 for an empty collection.
func LastIndex[T any](collection []T) int {
	return len(collection) - 1
}

// GetByReverseIndex returns the element index positions from the end, or the
// zero value when there is none. index must not be negative.
func GetByReverseIndex[T any](collection []T, index int) T {
	validate.Must(validate.IntNotOutOfRange(index, "index", 0, math.MaxInt, validate.Inclusive))

	return elementAtOrZero(collection, LastIndex(collection)-index)
}

// GetByShiftedReverseIndex is GetByReverseIndex with index moved back by shift.
func GetByShiftedReverseIndex[T any](collection []T, index, shift int) T {
	validate.Must(validate.IntNotOutOfRange(index, "index", 0, math.MaxInt, validate.Inclusive))
	validate.Must(validate.IntNotOutOfRange(shift, "shift", 0, math.MaxInt, validate.Inclusive))

	return elementAtOrZero(collection, LastIndex(collection)-index-shift)
}

func ForEach[T any](collection []T, action func(T)) {
	validate.Must(validate.NotNil(action, "action"))

	lo.ForEach(collection, func(item T, _ int) {
		action(item)
	})
}

// lo.Nth counts negative positions from the end, which must not apply here.
func elementAtOrZero[T any](collection []T, position int) T {
	if position < 0 {
		var zero T
		return zero
	}
	v, err := lo.Nth(collection, position)
	if err != nil {
		var zero T
		return zero
	}
	return v
}
