package validate

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("argument out of range")
	ErrInvalidState    = errors.New("invalid state")
)

const failedPrefix = "Validation Failed"

// Error describes a failed check.
type Error struct {
	Kind   error
	Param  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s).", failedPrefix, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds a *Error of the given kind with a stack trace attached.
func NewError(kind error, param string, format string, args ...any) error {
	return errors.WithStack(&Error{
		Kind:   kind,
		Param:  param,
		Reason: fmt.Sprintf(format, args...),
	})
}

// Must panics with err when it is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
