package labourer

import "context"

// LabourerRepository defines data access for the labourer registry.
type LabourerRepository interface {
	Create(ctx context.Context, labourer Labourer) (Labourer, error)

	GetByID(ctx context.Context, id string) (Labourer, error)

	// List returns labourers, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]Labourer, error)

	// Update overwrites name, phone, rate and active flag.
	Update(ctx context.Context, labourer Labourer) (Labourer, error)
}
