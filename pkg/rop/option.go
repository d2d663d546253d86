package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/internal/equality"
	"github.com/ib-77/ropkit/pkg/validate"
)

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	value    T
	hasValue bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Some wraps value, which must not be nil.
func Some[T any](value T) Option[T] {
	validate.Must(validate.NotNil(value, "value"))

	return Option[T]{value: value, hasValue: true}
}

// From returns None for a nil value and Some otherwise.
func From[T any](value T) Option[T] {
	if validate.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, hasValue: true}
}

func (o Option[T]) HasValue() bool {
	return o.hasValue
}

func (o Option[T]) HasNoValue() bool {
	return !o.hasValue
}

func (o Option[T]) Value() T {
	if !o.hasValue {
		panic(validate.NewError(validate.ErrInvalidState, "value", "There is no value for none"))
	}
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if !o.hasValue {
		return defaultValue
	}
	return o.value
}

// Where returns o if it has a value accepted by predicate, otherwise None.
func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	validate.Must(validate.NotNil(predicate, "predicate"))

	if o.hasValue && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Execute(action func(T)) {
	validate.Must(validate.NotNil(action, "action"))

	if o.hasValue {
		action(o.value)
	}
}

// Equal reports whether both options are None, or both hold structurally
// equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	if !o.hasValue {
		return true
	}
	return equality.Equal(o.value, other.value)
}

// EqualValue compares the wrapped value with value. None never equals a value.
func (o Option[T]) EqualValue(value T) bool {
	return o.hasValue && equality.Equal(o.value, value)
}

func (o Option[T]) String() string {
	if !o.hasValue {
		return noneMessage
	}
	return fmt.Sprint(o.value)
}
