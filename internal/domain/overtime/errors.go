package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime record not found")
)
