package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dispatch core. Callers classify failures with
// errors.Is; the HTTP layer maps each sentinel to a status code. Wrap
// with context at the point of failure:
//
//	fmt.Errorf("booking %s: %w", id, apperrors.ErrConflict)
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a state-machine guard or unique constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput means a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreFailure means the persistence layer failed for an opaque reason.
	// The cause stays wrapped for logs; response bodies never carry it.
	ErrStoreFailure = errors.New("store failure")
)

// NotFound wraps ErrNotFound with a formatted message
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Conflict wraps ErrConflict with a formatted message
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// InvalidInput wraps ErrInvalidInput with a formatted message
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// IsConflict reports whether err wraps ErrConflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound reports whether err wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreFailure wraps an underlying persistence error. The cause is
// preserved in the chain for logging but the sentinel is what callers
// should branch on.
func StoreFailure(op string, cause error) error {
	return fmt.Errorf("%s: %v: %w", op, cause, ErrStoreFailure)
}
