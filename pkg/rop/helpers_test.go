package rop

import (
	"errors"
	"testing"
)

func requirePanicsWith(t *testing.T, kind error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic matching %v", kind)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, kind) {
			t.Fatalf("expected panic matching %v, got %v", kind, r)
		}
	}()

	fn()
}
