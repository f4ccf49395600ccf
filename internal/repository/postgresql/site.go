package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

// Create implements site.SiteRepository.
func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (id, name, location, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, location, is_active, created_at, updated_at
	`

	var saved site.Site
	err := q.QueryRow(ctx, query, uuid.New().String(), s.Name, s.Location, s.IsActive).Scan(
		&saved.ID, &saved.Name, &saved.Location, &saved.IsActive, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return site.Site{}, site.ErrSiteNameExists
		}
		return site.Site{}, database.NewStoreError("create site", err)
	}

	return saved, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM sites
		WHERE id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Location, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, database.NewStoreError("get site", err)
	}

	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepository) List(ctx context.Context, activeOnly bool) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM sites
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, database.NewStoreError("list sites", err)
	}
	defer rows.Close()

	var result []site.Site
	for rows.Next() {
		var s site.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan site row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, database.NewStoreError("list sites", err)
	}

	return result, nil
}
