package database

import "errors"

// StoreError marks a transaction or transport failure against the record
// store, as opposed to a business rejection. Callers may safely retry the
// failed operation: submission preconditions are re-validated on each attempt.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for operation op.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err is (or wraps) a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
