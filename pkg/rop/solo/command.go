package solo

import (
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validate"
)

// ToCommand returns onSuccess(value) for a success, otherwise the failure as a Command.
func ToCommand[T any](input rop.Query[T], onSuccess func(r T) rop.Command) rop.Command {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return input.Command()
	}
	return onSuccess(input.Value())
}

// FromCommand wraps onSuccess() as a success when input succeeded.
func FromCommand[T any](input rop.Command, onSuccess func() T) rop.Query[T] {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return rop.Failure[T](input.ErrMsg())
	}
	return rop.Success(onSuccess())
}

func SwitchFromCommand[T any](input rop.Command, onSuccess func() rop.Query[T]) rop.Query[T] {
	validate.Must(validate.NotNil(onSuccess, "onSuccess"))

	if input.IsFailure() {
		return rop.Failure[T](input.ErrMsg())
	}
	return onSuccess()
}

func OnBothCommand[K any](input rop.Command, fn func(r rop.Command) K) K {
	validate.Must(validate.NotNil(fn, "fn"))

	return fn(input)
}

// TryCommand calls execute and turns a returned error into a failure.
func TryCommand(execute func() error) rop.Command {
	validate.Must(validate.NotNil(execute, "execute"))

	return rop.FromError(execute())
}
