package attendance

import "errors"

// Attendance domain errors
var (
	// ErrDayLocked rejects a submission for a site-day that has already been
	// submitted. The condition is permanent, not retryable.
	ErrDayLocked = errors.New("attendance for this site and date has already been submitted")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
