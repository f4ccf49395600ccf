package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance record not found")
)
