package service

import "fmt"

// Result carries either a success value or a typed *Error, never both and
// never neither. It is the uniform return contract of all service
// operations, keeping expected business failures (duplicate email,
// not-found, bad pagination) out of the panic/exception path.
type Result[T any] struct {
	value   T
	err     *Error
	success bool
}

// Success creates a Result holding a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure creates a Result holding a typed error.
// Passing a nil error is a programming defect and panics immediately
// rather than producing an empty-both Result.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		panic("service: Failure called with nil error")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// Value returns the success value. On a failure Result it returns the
// zero value; callers should check IsSuccess or Err first.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the typed error, or nil on success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Match folds the Result by applying exactly one of the two transforms.
// An empty variant (failure without an error) indicates a construction
// bug, never a legitimate business outcome, and aborts loudly.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(*Error) R) R {
	if r.success {
		return onSuccess(r.value)
	}
	if r.err == nil {
		panic(fmt.Sprintf("service: Result[%T] has neither value nor error", r.value))
	}
	return onFailure(r.err)
}
