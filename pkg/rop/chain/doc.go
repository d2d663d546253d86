// Package chain provides a fluent wrapper around Query[T] for building
// railway chains on top of the solo combinators.
//
// Key operations:
// - Start/FromValue: begin a chain from a Query[T] or value
// - Then: switch to a new Query[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/Validate: turn a success into a failure when a check rejects it
// - Tee/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
