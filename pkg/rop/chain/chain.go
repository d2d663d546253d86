package chain

import (
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/solo"
)

// Chain wraps a rop.Query to enable fluent chaining
type Chain[T any] struct {
	result rop.Query[T]
}

// Start creates a new chain from a rop.Query
func Start[T any](result rop.Query[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Query
func (c *Chain[T]) Result() rop.Query[T] {
	return c.result
}

// Command returns the underlying result without its value
func (c *Chain[T]) Command() rop.Command {
	return c.result.Command()
}

// Then chains a function that returns rop.Query[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Query[U]) *Chain[U] {
	return &Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.AndTry(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

func (c *Chain[T]) Ensure(predicate func(T) bool, errMsg string) *Chain[T] {
	return &Chain[T]{result: c.result.Ensure(predicate, errMsg)}
}

// Validate runs every validator and collects all their failures
func (c *Chain[T]) Validate(validators ...func(in T) (valid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{result: solo.ValidateAll(c.result, false, validators...)}
}

// Tee performs a side effect on success without changing the result
func (c *Chain[T]) Tee(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: c.result.OnSuccess(onSuccess)}
}

func (c *Chain[T]) OnFailure(onFailure func(errMsg string)) *Chain[T] {
	return &Chain[T]{result: c.result.OnFailureMsg(onFailure)}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(errMsg string) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
