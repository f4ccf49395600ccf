package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// Upsert implements overtime.OvertimeRepository.
func (r *overtimeRepository) Upsert(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtimes (id, labourer_id, site_id, date, hours, amount, notes)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7)
		ON CONFLICT (labourer_id, date) DO UPDATE
		SET site_id = EXCLUDED.site_id,
			hours = EXCLUDED.hours,
			amount = EXCLUDED.amount,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, labourer_id, site_id, date::text, hours, amount, notes, created_at, updated_at
	`

	var saved overtime.Overtime
	err := q.QueryRow(ctx, query,
		uuid.New().String(), ot.LabourerID, ot.SiteID, ot.Date, ot.Hours, ot.Amount, ot.Notes,
	).Scan(
		&saved.ID, &saved.LabourerID, &saved.SiteID, &saved.Date,
		&saved.Hours, &saved.Amount, &saved.Notes, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return overtime.Overtime{}, database.NewStoreError("upsert overtime", err)
	}

	return saved, nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, p period.Period, labourerID *string, siteID *string) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.labourer_id, o.site_id, o.date::text, o.hours, o.amount, o.notes,
			   o.created_at, o.updated_at, l.name
		FROM overtimes o
		JOIN labourers l ON l.id = o.labourer_id
		WHERE ($1::date IS NULL OR o.date >= $1::date)
		  AND o.date <= $2::date
		  AND ($3::uuid IS NULL OR o.labourer_id = $3::uuid)
		  AND ($4::uuid IS NULL OR o.site_id = $4::uuid)
		ORDER BY o.date, l.name
	`

	var start *string
	if p.Start != "" {
		start = &p.Start
	}

	rows, err := q.Query(ctx, query, start, p.End, labourerID, siteID)
	if err != nil {
		return nil, database.NewStoreError("list overtimes", err)
	}
	defer rows.Close()

	var result []overtime.Overtime
	for rows.Next() {
		var ot overtime.Overtime
		if err := rows.Scan(
			&ot.ID, &ot.LabourerID, &ot.SiteID, &ot.Date, &ot.Hours, &ot.Amount, &ot.Notes,
			&ot.CreatedAt, &ot.UpdatedAt, &ot.LabourerName,
		); err != nil {
			return nil, fmt.Errorf("scan overtime row: %w", err)
		}
		result = append(result, ot)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list overtimes", err)
	}

	return result, nil
}

// SumAmount implements overtime.OvertimeRepository.
func (r *overtimeRepository) SumAmount(ctx context.Context, labourerID string, p period.Period, siteID *string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM overtimes
		WHERE labourer_id = $1
		  AND ($2::date IS NULL OR date >= $2::date)
		  AND date <= $3::date
		  AND ($4::uuid IS NULL OR site_id = $4::uuid)
	`

	var start *string
	if p.Start != "" {
		start = &p.Start
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, labourerID, start, p.End, siteID).Scan(&total); err != nil {
		return decimal.Zero, database.NewStoreError("sum overtime amounts", err)
	}

	return total, nil
}
