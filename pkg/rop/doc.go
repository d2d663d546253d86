// Package rop contains the value types of the library: Command, Query[T] and
// Option[T].
//
// Command is the outcome of an operation with no return value, Query[T] the
// outcome of an operation returning a T, and Option[T] a value that may be
// absent. All three are immutable and safe to share between goroutines.
//
// Domain failures are values: build them with Fail/Failure and handle them
// through the combinators (OnSuccess, OnFailure, Ensure, and the generic
// functions in package solo). Misuse is a programmer error and panics with an
// error matching validate.ErrInvalidArgument or validate.ErrInvalidState:
// a blank failure message, a nil success value, reading Value of a failure or
// ErrMsg of a success. The Get and Err accessors never panic.
//
// Highlights:
// - Ok/OkWithMessage/Fail: construct Command
// - Success/SuccessWithMessage/Failure: construct Query[T]
// - Some/None/From: construct Option[T]
// - FirstFailureOrSuccess/Combine/CombineWith: fold several outcomes
// - Query.Command: narrow a Query[T] to a Command
package rop
