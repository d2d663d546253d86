//go:build debug

package debug

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/ib-77/ropkit/pkg/validate"
)

const Enabled = true

func True(predicate bool, param string) {
	validate.Must(validate.True(predicate, param))
}

func TrueIf(condition, predicate bool, param string) {
	validate.Must(validate.TrueIf(condition, predicate, param))
}

func NotNil(argument any, param string) {
	validate.Must(validate.NotNil(argument, param))
}

func NotBlank(argument string, param string) {
	validate.Must(validate.NotBlank(argument, param))
}

func CollectionNotEmpty[T any](collection []T, param string) {
	validate.Must(validate.CollectionNotEmpty(collection, param))
}

func CollectionEmpty[T any](collection []T, param string) {
	validate.Must(validate.CollectionEmpty(collection, param))
}

func CollectionContains[T comparable](element T, param string, collection []T) {
	validate.Must(validate.CollectionContains(element, param, collection))
}

func CollectionDoesNotContain[T comparable](element T, param string, collection []T) {
	validate.Must(validate.CollectionDoesNotContain(element, param, collection))
}

func DictionaryContainsKey[K comparable, V any](key K, param string, dictionary map[K]V) {
	validate.Must(validate.DictionaryContainsKey(key, param, dictionary))
}

func DictionaryDoesNotContainKey[K comparable, V any](key K, param string, dictionary map[K]V) {
	validate.Must(validate.DictionaryDoesNotContainKey(key, param, dictionary))
}

func EqualTo[T any](value T, param string, expected T) {
	validate.Must(validate.EqualTo(value, param, expected))
}

func NotEqualTo[T any](value T, param string, other T) {
	validate.Must(validate.NotEqualTo(value, param, other))
}

func IntNotOutOfRange[T constraints.Integer](value T, param string, lower, upper T,
	endPoints validate.RangeEndPoints) {
	validate.Must(validate.IntNotOutOfRange(value, param, lower, upper, endPoints))
}

func FloatNotOutOfRange[T constraints.Float](value T, param string, lower, upper T,
	endPoints validate.RangeEndPoints) {
	validate.Must(validate.FloatNotOutOfRange(value, param, lower, upper, endPoints))
}

func DecimalNotOutOfRange(value decimal.Decimal, param string, lower, upper decimal.Decimal,
	endPoints validate.RangeEndPoints) {
	validate.Must(validate.DecimalNotOutOfRange(value, param, lower, upper, endPoints))
}

func NotInvalidNumber[T constraints.Float](value T, param string) {
	validate.Must(validate.NotInvalidNumber(value, param))
}
