//go:build !debug

package debug

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/ropkit/pkg/validate"
)

const Enabled = false

func True(bool, string) {}

func TrueIf(bool, bool, string) {}

func NotNil(any, string) {}

func NotBlank(string, string) {}

func CollectionNotEmpty[T any]([]T, string) {}

func CollectionEmpty[T any]([]T, string) {}

func CollectionContains[T comparable](T, string, []T) {}

func CollectionDoesNotContain[T comparable](T, string, []T) {}

func DictionaryContainsKey[K comparable, V any](K, string, map[K]V) {}

func DictionaryDoesNotContainKey[K comparable, V any](K, string, map[K]V) {}

func EqualTo[T any](T, string, T) {}

func NotEqualTo[T any](T, string, T) {}

func IntNotOutOfRange[T constraints.Integer](T, string, T, T, validate.RangeEndPoints) {}

func FloatNotOutOfRange[T constraints.Float](T, string, T, T, validate.RangeEndPoints) {}

func DecimalNotOutOfRange(decimal.Decimal, string, decimal.Decimal, decimal.Decimal, validate.RangeEndPoints) {
}

func NotInvalidNumber[T constraints.Float](T, string) {}
