package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, labourer_id, date, amount, notes)
		VALUES ($1, $2, $3::date, $4, $5)
		RETURNING id, labourer_id, date::text, amount, notes, created_at
	`

	var saved advance.Advance
	err := q.QueryRow(ctx, query,
		uuid.New().String(), adv.LabourerID, adv.Date, adv.Amount, adv.Notes,
	).Scan(&saved.ID, &saved.LabourerID, &saved.Date, &saved.Amount, &saved.Notes, &saved.CreatedAt)
	if err != nil {
		return advance.Advance{}, database.NewStoreError("create advance", err)
	}

	return saved, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepository) List(ctx context.Context, p period.Period, labourerID *string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.labourer_id, a.date::text, a.amount, a.notes, a.created_at, l.name
		FROM advances a
		JOIN labourers l ON l.id = a.labourer_id
		WHERE ($1::date IS NULL OR a.date >= $1::date)
		  AND a.date <= $2::date
		  AND ($3::uuid IS NULL OR a.labourer_id = $3::uuid)
		ORDER BY a.date, a.created_at
	`

	var start *string
	if p.Start != "" {
		start = &p.Start
	}

	rows, err := q.Query(ctx, query, start, p.End, labourerID)
	if err != nil {
		return nil, database.NewStoreError("list advances", err)
	}
	defer rows.Close()

	var result []advance.Advance
	for rows.Next() {
		var adv advance.Advance
		if err := rows.Scan(
			&adv.ID, &adv.LabourerID, &adv.Date, &adv.Amount, &adv.Notes,
			&adv.CreatedAt, &adv.LabourerName,
		); err != nil {
			return nil, fmt.Errorf("scan advance row: %w", err)
		}
		result = append(result, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list advances", err)
	}

	return result, nil
}

// SumAmount implements advance.AdvanceRepository. Advances deduct from the
// labourer regardless of where the money was handed over, so there is no
// site filter here on purpose.
func (r *advanceRepository) SumAmount(ctx context.Context, labourerID string, p period.Period) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advances
		WHERE labourer_id = $1
		  AND ($2::date IS NULL OR date >= $2::date)
		  AND date <= $3::date
	`

	var start *string
	if p.Start != "" {
		start = &p.Start
	}

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, labourerID, start, p.End).Scan(&total); err != nil {
		return decimal.Zero, database.NewStoreError("sum advance amounts", err)
	}

	return total, nil
}
