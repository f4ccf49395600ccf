package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance ledger.
type AttendanceService interface {
	// SubmitAttendance writes a full day's attendance for one site and locks
	// the site-day, atomically. A locked site-day rejects every later
	// submission for the same key.
	SubmitAttendance(ctx context.Context, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)

	// GetLockStatus reports the submission state for a site-day. A site-day
	// that was never submitted reports unlocked with no food flag.
	GetLockStatus(ctx context.Context, siteID string, date string) (LockStatusResponse, error)

	// GetAttendance lists attendance rows for a date, optionally one site's.
	GetAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
