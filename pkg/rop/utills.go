package rop

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/ib-77/ropkit/pkg/validate"
)

// FromError returns Ok for a nil err and a failure carrying err's message otherwise.
func FromError(err error) Command {
	if validate.IsNil(err) {
		return Ok()
	}
	return Fail(err.Error())
}

// FailureMessages returns the messages of the failed results in order.
func FailureMessages(results ...Outcome) []string {
	failed := lo.Filter(results, func(r Outcome, _ int) bool {
		return r.IsFailure()
	})
	return lo.Map(failed, func(r Outcome, _ int) string {
		return r.ErrMsg()
	})
}

func mustNotContainNil(results []Outcome) {
	for i, r := range results {
		validate.Must(validate.NotNil(r, fmt.Sprintf("results[%d]", i)))
	}
}
