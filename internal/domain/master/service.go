package master

import (
	"context"

	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
)

// MasterService manages the labourer and site registries.
type MasterService interface {
	CreateLabourer(ctx context.Context, req labourer.CreateLabourerRequest) (labourer.LabourerResponse, error)
	GetLabourer(ctx context.Context, id string) (labourer.LabourerResponse, error)
	ListLabourers(ctx context.Context, activeOnly bool) ([]labourer.LabourerResponse, error)
	UpdateLabourer(ctx context.Context, req labourer.UpdateLabourerRequest) (labourer.LabourerResponse, error)

	CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error)
	GetSite(ctx context.Context, id string) (site.SiteResponse, error)
	ListSites(ctx context.Context, activeOnly bool) ([]site.SiteResponse, error)
}
