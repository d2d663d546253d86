//go:build debug

package debug

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropkit/pkg/validate"
)

func TestAssertionsPanicInDebugBuilds(t *testing.T) {
	t.Parallel()

	assert.True(t, Enabled)

	assert.Panics(t, func() { True(false, "predicate") })
	assert.Panics(t, func() { TrueIf(true, false, "predicate") })
	assert.Panics(t, func() { NotNil(nil, "arg") })
	assert.Panics(t, func() { NotBlank(" ", "name") })
	assert.Panics(t, func() { CollectionNotEmpty([]int{}, "items") })
	assert.Panics(t, func() { CollectionEmpty([]int{1}, "items") })
	assert.Panics(t, func() { CollectionContains(3, "item", []int{1, 2}) })
	assert.Panics(t, func() { CollectionDoesNotContain(1, "item", []int{1, 2}) })
	assert.Panics(t, func() { DictionaryContainsKey("k", "key", map[string]int{}) })
	assert.Panics(t, func() { DictionaryDoesNotContainKey("k", "key", map[string]int{"k": 1}) })
	assert.Panics(t, func() { EqualTo(1, "value", 2) })
	assert.Panics(t, func() { NotEqualTo(1, "value", 1) })
	assert.Panics(t, func() { IntNotOutOfRange(0, "value", 0, 3, validate.LowerExclusive) })
	assert.Panics(t, func() { FloatNotOutOfRange(math.NaN(), "value", 0, 3, validate.Inclusive) })
	assert.Panics(t, func() {
		DecimalNotOutOfRange(decimal.NewFromInt(5), "value", decimal.Zero, decimal.NewFromInt(3), validate.Inclusive)
	})
	assert.Panics(t, func() { NotInvalidNumber(math.Inf(-1), "value") })
}

func TestAssertionsPassInDebugBuilds(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		True(true, "predicate")
		NotBlank("x", "name")
		IntNotOutOfRange(2, "value", 0, 3, validate.Inclusive)
		FloatNotOutOfRange(2.5, "value", 0, 3, validate.Exclusive)
	})
}
