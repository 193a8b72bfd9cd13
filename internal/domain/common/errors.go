// internal/domain/common/errors.go
package common

import "errors"

var (
	// ErrInvalidID means an externally supplied identifier is not in the
	// canonical hyphenated form. Returned before any storage access.
	ErrInvalidID = errors.New("invalid id")

	// ErrUnauthorized means the caller identity does not match the cart's
	// recorded owner.
	ErrUnauthorized = errors.New("unauthorized")
)

// StorageError wraps an underlying persistence failure. It is always
// surfaced to the caller and never retried.
type StorageError struct {
	Op  string // e.g. "carts.get"
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// WrapStorage wraps err as a StorageError unless it is nil or already one.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
