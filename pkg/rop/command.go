package rop

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/ib-77/ropkit/pkg/validate"
)

// DefaultSeparator joins failure messages in Combine.
const DefaultSeparator = "; "

const noneMessage = "None"

// Command is the outcome of an operation that returns no value. The zero
// value is a success.
type Command struct {
	failure bool
	// custom success message, or the failure message
	message string
}

var okCommand = Command{}

func Ok() Command {
	return okCommand
}

func OkWithMessage(message string) Command {
	validate.Must(validate.NotBlank(message, "message"))

	return Command{message: message}
}

func Fail(errMsg string) Command {
	validate.Must(validate.NotBlank(errMsg, "errMsg"))

	return Command{failure: true, message: errMsg}
}

// FirstFailureOrSuccess returns the first failure of results, or success when
// there is none (including when results is empty).
func FirstFailureOrSuccess(results ...Outcome) Command {
	mustNotContainNil(results)

	for _, r := range results {
		if r.IsFailure() {
			return Fail(r.ErrMsg())
		}
	}
	return Ok()
}

// Combine joins the messages of every failure in results with DefaultSeparator.
func Combine(results ...Outcome) Command {
	return CombineWith(DefaultSeparator, results...)
}

// CombineWith joins the messages of every failure in results with separator,
// keeping their order. It returns success if no result failed.
func CombineWith(separator string, results ...Outcome) Command {
	mustNotContainNil(results)

	messages := FailureMessages(results...)
	if len(messages) == 0 {
		return Ok()
	}
	return Fail(strings.Join(messages, separator))
}

func (c Command) IsSuccess() bool {
	return !c.failure
}

func (c Command) IsFailure() bool {
	return c.failure
}

func (c Command) ErrMsg() string {
	if !c.failure {
		panic(validate.NewError(validate.ErrInvalidState, "errMsg", "There is no error message for success"))
	}
	return c.message
}

// Err returns nil on success, otherwise an error carrying the failure message.
func (c Command) Err() error {
	if !c.failure {
		return nil
	}
	return errors.New(c.message)
}

func (c Command) Message() string {
	if c.failure {
		return fmt.Sprintf("Command Failure (%s).", c.message)
	}
	if c.message == "" {
		return noneMessage
	}
	return c.message
}

func (c Command) String() string {
	return c.Message()
}

// OnSuccess runs action if c is a success.
func (c Command) OnSuccess(action func()) Command {
	validate.Must(validate.NotNil(action, "action"))

	if c.IsSuccess() {
		action()
	}
	return c
}

// Then returns fn() if c is a success, otherwise c.
func (c Command) Then(fn func() Command) Command {
	validate.Must(validate.NotNil(fn, "fn"))

	if c.IsFailure() {
		return c
	}
	return fn()
}

func (c Command) OnFailure(action func()) Command {
	validate.Must(validate.NotNil(action, "action"))

	if c.IsFailure() {
		action()
	}
	return c
}

func (c Command) OnFailureMsg(action func(errMsg string)) Command {
	validate.Must(validate.NotNil(action, "action"))

	if c.IsFailure() {
		action(c.message)
	}
	return c
}

// Ensure keeps an existing failure, otherwise fails with errMsg when
// predicate returns false.
func (c Command) Ensure(predicate func() bool, errMsg string) Command {
	validate.Must(validate.NotNil(predicate, "predicate"))
	validate.Must(validate.NotBlank(errMsg, "errMsg"))

	if c.IsFailure() {
		return c
	}
	if !predicate() {
		return Fail(errMsg)
	}
	return c
}
