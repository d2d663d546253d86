package solo

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validate"
)

func Validate[T any](value T, validator func(in T) (valid bool, errMsg string)) rop.Query[T] {
	return AndValidate(rop.Success(value), validator)
}

func AndValidate[T any](input rop.Query[T], validator func(in T) (valid bool, errMsg string)) rop.Query[T] {
	validate.Must(validate.NotNil(validator, "validator"))

	if input.IsSuccess() {
		if valid, errMsg := validator(input.Value()); !valid {
			return rop.Failure[T](errMsg)
		}
	}
	return input
}

// ValidateAll runs every validator against the value of input and joins the
// messages of the failed ones with rop.DefaultSeparator. With breakOnError it
// stops at the first failure.
func ValidateAll[T any](input rop.Query[T], breakOnError bool,
	validators ...func(in T) (valid bool, errMsg string)) rop.Query[T] {

	for i, v := range validators {
		validate.Must(validate.NotNil(v, fmt.Sprintf("validators[%d]", i)))
	}

	if input.IsFailure() || len(validators) == 0 {
		return input
	}

	value := input.Value()
	failures := make([]rop.Outcome, 0, len(validators))
	for _, v := range validators {
		if valid, errMsg := v(value); !valid {
			failures = append(failures, rop.Failure[T](errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(failures) == 0 {
		return input
	}
	return rop.Failure[T](rop.Combine(failures...).ErrMsg())
}

// Switch returns onSuccess(value) for a success, otherwise the failure retyped.
func Switch[T, K any](input rop.Query[T], onSuccess func(r T) rop.Query[K]) rop.Query[K] {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return rop.Failure[K](input.ErrMsg())
	}
	return onSuccess(input.Value())
}

// SwitchIgnoring returns onSuccess() for a success, discarding its value,
// otherwise the failure retyped.
func SwitchIgnoring[T, K any](input rop.Query[T], onSuccess func() rop.Query[K]) rop.Query[K] {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return rop.Failure[K](input.ErrMsg())
	}
	return onSuccess()
}

// Map wraps onSuccess(value) as a new success, otherwise retypes the failure.
func Map[T, K any](input rop.Query[T], onSuccess func(r T) K) rop.Query[K] {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return rop.Failure[K](input.ErrMsg())
	}
	return rop.Success(onSuccess(input.Value()))
}

func OnBoth[T, K any](input rop.Query[T], fn func(r rop.Query[T]) K) K {
	validate.Must(validate.NotNil(fn, "fn"))

	return fn(input)
}

// Finally collapses input into a K using the handler matching its state.
func Finally[T, K any](input rop.Query[T],
	onSuccess func(r T) K,
	onFailure func(errMsg string) K) K {

	validate.Must(validate.NotNil(onSuccess, "onSuccess"))
	validate.Must(validate.NotNil(onFailure, "onFailure"))

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.ErrMsg())
}

// NilResultMessage is the failure message of Try when execute returns a nil
// value with a nil error.
const NilResultMessage = "execute returned a nil value without an error"

// Try calls execute and turns a returned error into a failure with its message.
// A nil value returned with a nil error becomes a failure with NilResultMessage.
func Try[T any](execute func() (T, error)) rop.Query[T] {
	validate.Must(validate.NotNil(execute, "execute"))

	out, err := execute()
	if err != nil {
		return rop.Failure[T](err.Error())
	}
	if validate.IsNil(out) {
		return rop.Failure[T](NilResultMessage)
	}
	return rop.Success(out)
}

// AndTry calls execute with the value of a successful input.
func AndTry[T, K any](input rop.Query[T], execute func(r T) (K, error)) rop.Query[K] {
	validate.Must(validate.NotNil(execute, "execute"))

	if input.IsFailure() {
		return rop.Failure[K](input.ErrMsg())
	}
	return Try(func() (K, error) { return execute(input.Value()) })
}
