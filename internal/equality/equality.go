// Package equality holds the structural comparison shared by Option and the
// EqualTo/NotEqualTo checks.
package equality

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp descend into unexported fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are structurally equal. A type's own
// Equal(T) bool method takes precedence over field-wise comparison.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}
