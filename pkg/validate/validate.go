package validate

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ib-77/ropkit/internal/equality"
)

// True passes if predicate is true.
func True(predicate bool, param string) error {
	if !predicate {
		return NewError(ErrInvalidArgument, param, "The predicate based on %s is false", param)
	}
	return nil
}

// TrueIf passes if condition is false, or both condition and predicate are true.
func TrueIf(condition, predicate bool, param string) error {
	if condition && !predicate {
		return NewError(ErrInvalidArgument, param, "The conditional predicate based on %s is false", param)
	}
	return nil
}

// NotNil passes if argument is not nil (see IsNil).
func NotNil(argument any, param string) error {
	if IsNil(argument) {
		return NewError(ErrInvalidArgument, param, "The %s argument is nil", param)
	}
	return nil
}

// NotBlank passes if argument contains something other than white space.
func NotBlank(argument string, param string) error {
	if strings.TrimSpace(argument) == "" {
		return NewError(ErrInvalidArgument, param, "The %s string argument is empty or white space", param)
	}
	return nil
}

func CollectionNotEmpty[T any](collection []T, param string) error {
	if collection == nil {
		return NewError(ErrInvalidArgument, param, "The %s collection is nil", param)
	}
	if len(collection) == 0 {
		return NewError(ErrInvalidArgument, param, "The %s collection is empty", param)
	}
	return nil
}

// CollectionEmpty passes if collection has no elements. A nil slice is empty.
func CollectionEmpty[T any](collection []T, param string) error {
	if len(collection) != 0 {
		return NewError(ErrInvalidArgument, param, "The %s collection is not empty", param)
	}
	return nil
}

func CollectionContains[T comparable](element T, param string, collection []T) error {
	if !lo.Contains(collection, element) {
		return NewError(ErrInvalidArgument, param, "The collection does not contain the %s element", param)
	}
	return nil
}

func CollectionDoesNotContain[T comparable](element T, param string, collection []T) error {
	if lo.Contains(collection, element) {
		return NewError(ErrInvalidArgument, param, "The collection already contains the %s element", param)
	}
	return nil
}

func DictionaryContainsKey[K comparable, V any](key K, param string, dictionary map[K]V) error {
	if _, ok := dictionary[key]; !ok {
		return NewError(ErrInvalidArgument, param, "The dictionary does not contain the %s key", param)
	}
	return nil
}

func DictionaryDoesNotContainKey[K comparable, V any](key K, param string, dictionary map[K]V) error {
	if _, ok := dictionary[key]; ok {
		return NewError(ErrInvalidArgument, param, "The dictionary already contains the %s key", param)
	}
	return nil
}

// EqualTo passes if value is structurally equal to expected.
func EqualTo[T any](value T, param string, expected T) error {
	if !equality.Equal(value, expected) {
		return NewError(ErrInvalidArgument, param, "The %s should be equal to %v. Value = %v", param, expected, value)
	}
	return nil
}

// NotEqualTo passes if value is not structurally equal to other.
func NotEqualTo[T any](value T, param string, other T) error {
	if equality.Equal(value, other) {
		return NewError(ErrInvalidArgument, param, "The %s should not be equal to %v. Value = %v", param, other, value)
	}
	return nil
}
