package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
)

type siteDayRepository struct {
	db *database.DB
}

func NewSiteDayRepository(db *database.DB) attendance.SiteDayRepository {
	return &siteDayRepository{db: db}
}

// Lock implements attendance.SiteDayRepository. The conditional upsert is
// the serialization point for the whole submission: once a (site_id, date)
// row is locked the WHERE clause stops matching, no row comes back, and
// every later submission fails with ErrDayLocked.
func (r *siteDayRepository) Lock(ctx context.Context, day attendance.SiteDay) (attendance.SiteDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO site_days (id, site_id, date, is_locked, food_provided, submitted_by, submitted_at)
		VALUES ($1, $2, $3::date, TRUE, $4, $5, NOW())
		ON CONFLICT (site_id, date) DO UPDATE
		SET is_locked = TRUE,
			food_provided = EXCLUDED.food_provided,
			submitted_by = EXCLUDED.submitted_by,
			submitted_at = NOW()
		WHERE site_days.is_locked = FALSE
		RETURNING id, site_id, date::text, is_locked, food_provided, submitted_by, submitted_at
	`

	var locked attendance.SiteDay
	err := q.QueryRow(ctx, query,
		uuid.New().String(), day.SiteID, day.Date, day.FoodProvided, day.SubmittedBy,
	).Scan(
		&locked.ID, &locked.SiteID, &locked.Date, &locked.IsLocked,
		&locked.FoodProvided, &locked.SubmittedBy, &locked.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.SiteDay{}, attendance.ErrDayLocked
		}
		return attendance.SiteDay{}, database.NewStoreError("lock site day", err)
	}

	return locked, nil
}

// Get implements attendance.SiteDayRepository. A missing row comes back as
// (nil, nil): the day simply has no submission yet.
func (r *siteDayRepository) Get(ctx context.Context, siteID, date string) (*attendance.SiteDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, date::text, is_locked, food_provided, submitted_by, submitted_at
		FROM site_days
		WHERE site_id = $1 AND date = $2::date
	`

	var day attendance.SiteDay
	err := q.QueryRow(ctx, query, siteID, date).Scan(
		&day.ID, &day.SiteID, &day.Date, &day.IsLocked,
		&day.FoodProvided, &day.SubmittedBy, &day.SubmittedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, database.NewStoreError("get site day", err)
	}

	return &day, nil
}
