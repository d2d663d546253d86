package solo

import (
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validate"
)

// ToQuery turns a Some into a success and None into a failure with errMsg.
func ToQuery[T any](input rop.Option[T], errMsg string) rop.Query[T] {
	validate.Must(validate.NotBlank(errMsg, "errMsg"))

	if v, ok := input.Get(); ok {
		return rop.Success(v)
	}
	return rop.Failure[T](errMsg)
}

// MapOption applies selector to the value; a nil result becomes None.
func MapOption[T, K any](input rop.Option[T], selector func(r T) K) rop.Option[K] {
	validate.Must(validate.NotNil(selector, "selector"))

	if v, ok := input.Get(); ok {
		return rop.From(selector(v))
	}
	return rop.None[K]()
}

func BindOption[T, K any](input rop.Option[T], selector func(r T) rop.Option[K]) rop.Option[K] {
	validate.Must(validate.NotNil(selector, "selector"))

	if v, ok := input.Get(); ok {
		return selector(v)
	}
	return rop.None[K]()
}

// UnwrapWith returns selector(value), or defaultValue for None.
func UnwrapWith[T, K any](input rop.Option[T], selector func(r T) K, defaultValue K) K {
	validate.Must(validate.NotNil(selector, "selector"))

	if v, ok := input.Get(); ok {
		return selector(v)
	}
	return defaultValue
}
