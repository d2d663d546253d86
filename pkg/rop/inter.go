package rop

// Outcome is implemented by Command and every Query[T].
type Outcome interface {
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// ErrMsg returns the failure message, panics on success
	ErrMsg() string
	// Message returns the formatted outcome message
	Message() string
}

// WithValue extends Outcome with access to a success value.
type WithValue[T any] interface {
	Outcome
	// Value returns the success value, panics on failure
	Value() T
	// Get returns the success value and true, or the zero value and false
	Get() (T, bool)
}
