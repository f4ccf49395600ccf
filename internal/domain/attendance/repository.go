package attendance

import (
	"context"

	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

// AttendanceRepository defines data access for attendance rows.
type AttendanceRepository interface {
	// Upsert inserts the row or, when a row for (labourer_id, date) already
	// exists, overwrites its status, site and supervisor.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// ListByDate returns all rows for a date, optionally restricted to one site.
	ListByDate(ctx context.Context, date string, siteID *string) ([]Attendance, error)

	// ListForPayroll returns one labourer's rows inside a period, oldest
	// first, each carrying the food-provided flag of its site-day row.
	ListForPayroll(ctx context.Context, labourerID string, p period.Period, siteID *string) ([]Attendance, error)
}

// SiteDayRepository defines data access for the per-site-day lock state.
type SiteDayRepository interface {
	// Lock writes the locked site-day row. The insert itself is the
	// serialization point between racing submissions: when the row already
	// exists locked, Lock returns ErrDayLocked and writes nothing.
	Lock(ctx context.Context, day SiteDay) (SiteDay, error)

	// Get returns nil (not an error) when no row exists for the key.
	Get(ctx context.Context, siteID string, date string) (*SiteDay, error)
}
