package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository. A resubmission for the
// same (labourer_id, date) overwrites the earlier row in place.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, labourer_id, site_id, supervisor_id, date, status)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		ON CONFLICT (labourer_id, date) DO UPDATE
		SET site_id = EXCLUDED.site_id,
			supervisor_id = EXCLUDED.supervisor_id,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, labourer_id, site_id, supervisor_id, date::text, status, created_at, updated_at
	`

	var saved attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.New().String(), att.LabourerID, att.SiteID, att.SupervisorID, att.Date, att.Status,
	).Scan(
		&saved.ID, &saved.LabourerID, &saved.SiteID, &saved.SupervisorID,
		&saved.Date, &saved.Status, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, database.NewStoreError("upsert attendance", err)
	}

	return saved, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string, siteID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.labourer_id, a.site_id, a.supervisor_id, a.date::text, a.status,
			   a.created_at, a.updated_at, l.name
		FROM attendances a
		JOIN labourers l ON l.id = a.labourer_id
		WHERE a.date = $1::date
		  AND ($2::uuid IS NULL OR a.site_id = $2::uuid)
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, date, siteID)
	if err != nil {
		return nil, database.NewStoreError("list attendances by date", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.LabourerID, &att.SiteID, &att.SupervisorID, &att.Date, &att.Status,
			&att.CreatedAt, &att.UpdatedAt, &att.LabourerName,
		); err != nil {
			return nil, fmt.Errorf("scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list attendances by date", err)
	}

	return result, nil
}

// ListForPayroll implements attendance.AttendanceRepository. The join to
// site_days carries each day's food flag so the aggregator never has to
// re-fetch it per row.
func (r *attendanceRepository) ListForPayroll(ctx context.Context, labourerID string, p period.Period, siteID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.labourer_id, a.site_id, a.supervisor_id, a.date::text, a.status,
			   a.created_at, a.updated_at, sd.food_provided
		FROM attendances a
		LEFT JOIN site_days sd ON sd.site_id = a.site_id AND sd.date = a.date
		WHERE a.labourer_id = $1
		  AND ($2::date IS NULL OR a.date >= $2::date)
		  AND a.date <= $3::date
		  AND ($4::uuid IS NULL OR a.site_id = $4::uuid)
		ORDER BY a.date
	`

	var start *string
	if p.Start != "" {
		start = &p.Start
	}

	rows, err := q.Query(ctx, query, labourerID, start, p.End, siteID)
	if err != nil {
		return nil, database.NewStoreError("list attendances for payroll", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.LabourerID, &att.SiteID, &att.SupervisorID, &att.Date, &att.Status,
			&att.CreatedAt, &att.UpdatedAt, &att.DayFoodProvided,
		); err != nil {
			return nil, fmt.Errorf("scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list attendances for payroll", err)
	}

	return result, nil
}
