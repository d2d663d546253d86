package solo

import (
	"errors"
	"testing"

	"github.com/ib-77/ropkit/pkg/rop"
)

func TestToCommand(t *testing.T) {
	t.Parallel()

	save := func(v int) rop.Command {
		if v > 10 {
			return rop.Fail("too big")
		}
		return rop.Ok()
	}

	if res := ToCommand(rop.Success(3), save); !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res)
	}
	if res := ToCommand(rop.Success(30), save); res.ErrMsg() != "too big" {
		t.Fatalf("expected 'too big', got %v", res)
	}
	if res := ToCommand(rop.Failure[int]("missing"), save); res.ErrMsg() != "missing" {
		t.Fatalf("expected 'missing', got %v", res)
	}
}

func TestFromCommand(t *testing.T) {
	t.Parallel()

	if res := FromCommand(rop.Ok(), func() string { return "done" }); res.Value() != "done" {
		t.Fatalf("expected 'done', got %v", res)
	}

	called := false
	res := FromCommand(rop.Fail("bad"), func() string {
		called = true
		return "done"
	})
	if called || res.ErrMsg() != "bad" {
		t.Fatalf("expected 'bad' without call; called=%v res=%v", called, res)
	}
}

func TestSwitchFromCommand(t *testing.T) {
	t.Parallel()

	if res := SwitchFromCommand(rop.Ok(), func() rop.Query[int] { return rop.Failure[int]("lookup") }); res.ErrMsg() != "lookup" {
		t.Fatalf("expected 'lookup', got %v", res)
	}
	if res := SwitchFromCommand(rop.Fail("bad"), func() rop.Query[int] { return rop.Success(1) }); res.ErrMsg() != "bad" {
		t.Fatalf("expected 'bad', got %v", res)
	}
}

func TestOnBothCommand(t *testing.T) {
	t.Parallel()

	if got := OnBothCommand(rop.Fail("x"), rop.Command.Message); got != "Command Failure (x)." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTryCommand(t *testing.T) {
	t.Parallel()

	if res := TryCommand(func() error { return nil }); !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res)
	}
	if res := TryCommand(func() error { return errors.New("io") }); res.ErrMsg() != "io" {
		t.Fatalf("expected 'io', got %v", res)
	}
}
