package rop

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ib-77/ropkit/pkg/validate"
	"github.com/ib-77/ropkit/pkg/validate/debug"
)

const uninitializedMessage = "Query is not initialized"

// Query is the outcome of an operation returning a T. Construct it with
// Success or Failure; a success never holds a nil value. The zero value is a
// failure with the message "Query is not initialized".
type Query[T any] struct {
	value   T
	ok      bool
	message string
}

func Success[T any](value T) Query[T] {
	validate.Must(validate.NotNil(value, "value"))

	return Query[T]{value: value, ok: true}
}

func SuccessWithMessage[T any](value T, message string) Query[T] {
	validate.Must(validate.NotNil(value, "value"))
	validate.Must(validate.NotBlank(message, "message"))

	return Query[T]{value: value, ok: true, message: message}
}

func Failure[T any](errMsg string) Query[T] {
	validate.Must(validate.NotBlank(errMsg, "errMsg"))

	return Query[T]{message: errMsg}
}

func (q Query[T]) IsSuccess() bool {
	return q.ok
}

func (q Query[T]) IsFailure() bool {
	return !q.ok
}

func (q Query[T]) Value() T {
	if !q.ok {
		panic(validate.NewError(validate.ErrInvalidState, "value", "There is no value for failure"))
	}
	debug.NotNil(q.value, "value")

	return q.value
}

func (q Query[T]) Get() (T, bool) {
	if !q.ok {
		var zero T
		return zero, false
	}
	return q.value, true
}

func (q Query[T]) ErrMsg() string {
	if q.ok {
		panic(validate.NewError(validate.ErrInvalidState, "errMsg", "There is no error message for success"))
	}
	return q.errMsg()
}

func (q Query[T]) Err() error {
	if q.ok {
		return nil
	}
	return errors.New(q.errMsg())
}

func (q Query[T]) Message() string {
	if !q.ok {
		return fmt.Sprintf("Query Failure (%s).", q.errMsg())
	}
	if q.message == "" {
		return noneMessage
	}
	return q.message
}

func (q Query[T]) String() string {
	if !q.ok {
		return q.Message()
	}
	return fmt.Sprint(q.value)
}

// Command narrows q, keeping a failure message verbatim.
func (q Query[T]) Command() Command {
	if !q.ok {
		return Command{failure: true, message: q.errMsg()}
	}
	return Ok()
}

func (q Query[T]) errMsg() string {
	if q.message == "" {
		return uninitializedMessage
	}
	return q.message
}

// OnSuccess runs action with the value if q is a success.
func (q Query[T]) OnSuccess(action func(T)) Query[T] {
	validate.Must(validate.NotNil(action, "action"))

	if q.IsSuccess() {
		action(q.value)
	}
	return q
}

// Then returns fn(value) if q is a success, otherwise q.
func (q Query[T]) Then(fn func(T) Query[T]) Query[T] {
	validate.Must(validate.NotNil(fn, "fn"))

	if q.IsFailure() {
		return q
	}
	return fn(q.value)
}

func (q Query[T]) OnFailure(action func()) Query[T] {
	validate.Must(validate.NotNil(action, "action"))

	if q.IsFailure() {
		action()
	}
	return q
}

func (q Query[T]) OnFailureMsg(action func(errMsg string)) Query[T] {
	validate.Must(validate.NotNil(action, "action"))

	if q.IsFailure() {
		action(q.errMsg())
	}
	return q
}

// Ensure keeps an existing failure, otherwise fails with errMsg when
// predicate rejects the value.
func (q Query[T]) Ensure(predicate func(T) bool, errMsg string) Query[T] {
	validate.Must(validate.NotNil(predicate, "predicate"))
	validate.Must(validate.NotBlank(errMsg, "errMsg"))

	if q.IsFailure() {
		return q
	}
	if !predicate(q.value) {
		return Failure[T](errMsg)
	}
	return q
}
