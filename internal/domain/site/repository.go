package site

import "context"

// SiteRepository defines data access for the site registry.
type SiteRepository interface {
	Create(ctx context.Context, site Site) (Site, error)

	GetByID(ctx context.Context, id string) (Site, error)

	List(ctx context.Context, activeOnly bool) ([]Site, error)
}
