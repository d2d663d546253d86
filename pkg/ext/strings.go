package ext

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/ib-77/ropkit/pkg/validate"
)

func RemoveAllWhitespace(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

// ToEnum returns the member of values whose String() equals s. Blank input
// gives the zero value; an unknown name is an ErrInvalidArgument.
func ToEnum[T fmt.Stringer](s string, values ...T) (T, error) {
	if strings.TrimSpace(s) == "" {
		var zero T
		return zero, nil
	}

	v, ok := lo.Find(values, func(item T) bool {
		return item.String() == s
	})
	if !ok {
		return v, validate.NewError(validate.ErrInvalidArgument, "s", "The value %q is not a defined %T", s, v)
	}
	return v, nil
}
