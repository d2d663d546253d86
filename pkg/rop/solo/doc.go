// Package solo contains the generic combinators over Command, Query[T] and
// Option[T]. Combinators that keep the type live as methods in package rop;
// the ones here change it, which Go methods cannot do.
//
// Highlights:
// - Map/Switch: move from Query[T] to Query[K]
// - ToCommand/FromCommand/SwitchFromCommand: cross between Query and Command
// - OnBoth/OnBothCommand/Finally: collapse an outcome into a plain value
// - Validate/AndValidate/ValidateAll: apply validators producing failures
// - Try/TryCommand: call (T, error) or error functions and convert the error
// - ToQuery/MapOption/BindOption/UnwrapWith: Option helpers
//
// A failure entering any combinator leaves it with its message unchanged and
// without the supplied function being called.
package solo
