package master

import (
	"context"

	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/master"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
)

// MasterServiceImpl manages the labourer and site registries the ledgers
// hang off. Registrations are soft: labourers deactivate rather than
// delete, because their history must stay aggregatable.
type MasterServiceImpl struct {
	labourerRepo labourer.LabourerRepository
	siteRepo     site.SiteRepository
}

func NewMasterService(labourerRepo labourer.LabourerRepository, siteRepo site.SiteRepository) master.MasterService {
	return &MasterServiceImpl{labourerRepo: labourerRepo, siteRepo: siteRepo}
}

func (s *MasterServiceImpl) CreateLabourer(ctx context.Context, req labourer.CreateLabourerRequest) (labourer.LabourerResponse, error) {
	if err := req.Validate(); err != nil {
		return labourer.LabourerResponse{}, err
	}

	saved, err := s.labourerRepo.Create(ctx, labourer.Labourer{
		Name:     req.Name,
		Phone:    req.Phone,
		Rate:     req.Rate,
		IsActive: true,
	})
	if err != nil {
		return labourer.LabourerResponse{}, err
	}

	return toLabourerResponse(saved), nil
}

func (s *MasterServiceImpl) GetLabourer(ctx context.Context, id string) (labourer.LabourerResponse, error) {
	lab, err := s.labourerRepo.GetByID(ctx, id)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}
	return toLabourerResponse(lab), nil
}

func (s *MasterServiceImpl) ListLabourers(ctx context.Context, activeOnly bool) ([]labourer.LabourerResponse, error) {
	labourers, err := s.labourerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]labourer.LabourerResponse, 0, len(labourers))
	for _, lab := range labourers {
		responses = append(responses, toLabourerResponse(lab))
	}
	return responses, nil
}

// UpdateLabourer applies the provided fields only; absent fields keep
// their stored values.
func (s *MasterServiceImpl) UpdateLabourer(ctx context.Context, req labourer.UpdateLabourerRequest) (labourer.LabourerResponse, error) {
	if err := req.Validate(); err != nil {
		return labourer.LabourerResponse{}, err
	}

	lab, err := s.labourerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}

	if req.Name != nil {
		lab.Name = *req.Name
	}
	if req.Phone != nil {
		lab.Phone = req.Phone
	}
	if req.Rate != nil {
		lab.Rate = req.Rate
	}
	if req.IsActive != nil {
		lab.IsActive = *req.IsActive
	}

	saved, err := s.labourerRepo.Update(ctx, lab)
	if err != nil {
		return labourer.LabourerResponse{}, err
	}

	return toLabourerResponse(saved), nil
}

func (s *MasterServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	saved, err := s.siteRepo.Create(ctx, site.Site{
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
	})
	if err != nil {
		return site.SiteResponse{}, err
	}

	return toSiteResponse(saved), nil
}

func (s *MasterServiceImpl) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	st, err := s.siteRepo.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return toSiteResponse(st), nil
}

func (s *MasterServiceImpl) ListSites(ctx context.Context, activeOnly bool) ([]site.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, toSiteResponse(st))
	}
	return responses, nil
}

func toLabourerResponse(lab labourer.Labourer) labourer.LabourerResponse {
	return labourer.LabourerResponse{
		ID:       lab.ID,
		Name:     lab.Name,
		Phone:    lab.Phone,
		Rate:     lab.Rate,
		IsActive: lab.IsActive,
	}
}

func toSiteResponse(st site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:       st.ID,
		Name:     st.Name,
		Location: st.Location,
		IsActive: st.IsActive,
	}
}
