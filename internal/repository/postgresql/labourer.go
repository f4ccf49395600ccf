package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
)

type labourerRepository struct {
	db *database.DB
}

func NewLabourerRepository(db *database.DB) labourer.LabourerRepository {
	return &labourerRepository{db: db}
}

// Create implements labourer.LabourerRepository.
func (r *labourerRepository) Create(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO labourers (id, name, phone, rate, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, rate, is_active, created_at, updated_at
	`

	var saved labourer.Labourer
	err := q.QueryRow(ctx, query,
		uuid.New().String(), lab.Name, lab.Phone, lab.Rate, lab.IsActive,
	).Scan(&saved.ID, &saved.Name, &saved.Phone, &saved.Rate, &saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return labourer.Labourer{}, database.NewStoreError("create labourer", err)
	}

	return saved, nil
}

// GetByID implements labourer.LabourerRepository.
func (r *labourerRepository) GetByID(ctx context.Context, id string) (labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, rate, is_active, created_at, updated_at
		FROM labourers
		WHERE id = $1
	`

	var lab labourer.Labourer
	err := q.QueryRow(ctx, query, id).Scan(
		&lab.ID, &lab.Name, &lab.Phone, &lab.Rate, &lab.IsActive, &lab.CreatedAt, &lab.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return labourer.Labourer{}, labourer.ErrLabourerNotFound
		}
		return labourer.Labourer{}, database.NewStoreError("get labourer", err)
	}

	return lab, nil
}

// List implements labourer.LabourerRepository.
func (r *labourerRepository) List(ctx context.Context, activeOnly bool) ([]labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, rate, is_active, created_at, updated_at
		FROM labourers
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, database.NewStoreError("list labourers", err)
	}
	defer rows.Close()

	var result []labourer.Labourer
	for rows.Next() {
		var lab labourer.Labourer
		if err := rows.Scan(
			&lab.ID, &lab.Name, &lab.Phone, &lab.Rate, &lab.IsActive, &lab.CreatedAt, &lab.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan labourer row: %w", err)
		}
		result = append(result, lab)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list labourers", err)
	}

	return result, nil
}

// Update implements labourer.LabourerRepository.
func (r *labourerRepository) Update(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE labourers
		SET name = $2, phone = $3, rate = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, phone, rate, is_active, created_at, updated_at
	`

	var saved labourer.Labourer
	err := q.QueryRow(ctx, query, lab.ID, lab.Name, lab.Phone, lab.Rate, lab.IsActive).Scan(
		&saved.ID, &saved.Name, &saved.Phone, &saved.Rate, &saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return labourer.Labourer{}, labourer.ErrLabourerNotFound
		}
		return labourer.Labourer{}, database.NewStoreError("update labourer", err)
	}

	return saved, nil
}
