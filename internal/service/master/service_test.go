package master

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
	"github.com/sitewage/sitewage-backend-go/internal/repository/memory"
)

func TestLabourerLifecycle(t *testing.T) {
	store := memory.NewStore()
	svc := NewMasterService(store.Labourers(), store.Sites())
	ctx := context.Background()

	rate := decimal.NewFromInt(500)
	created, err := svc.CreateLabourer(ctx, labourer.CreateLabourerRequest{
		Name: "Ramesh", Rate: &rate,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	// Partial update: only the provided fields change.
	newRate := decimal.NewFromInt(550)
	updated, err := svc.UpdateLabourer(ctx, labourer.UpdateLabourerRequest{
		ID: created.ID, Rate: &newRate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ramesh", updated.Name)
	assert.True(t, updated.Rate.Equal(newRate))

	// Deactivation hides the labourer from the active list but keeps the
	// record fetchable.
	inactive := false
	_, err = svc.UpdateLabourer(ctx, labourer.UpdateLabourerRequest{
		ID: created.ID, IsActive: &inactive,
	})
	require.NoError(t, err)

	active, err := svc.ListLabourers(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := svc.GetLabourer(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateLabourer_NotFound(t *testing.T) {
	store := memory.NewStore()
	svc := NewMasterService(store.Labourers(), store.Sites())

	name := "Nobody"
	_, err := svc.UpdateLabourer(context.Background(), labourer.UpdateLabourerRequest{
		ID: "missing", Name: &name,
	})
	assert.ErrorIs(t, err, labourer.ErrLabourerNotFound)
}

func TestCreateSite_DuplicateName(t *testing.T) {
	store := memory.NewStore()
	svc := NewMasterService(store.Labourers(), store.Sites())
	ctx := context.Background()

	_, err := svc.CreateSite(ctx, site.CreateSiteRequest{Name: "Riverside Tower"})
	require.NoError(t, err)

	_, err = svc.CreateSite(ctx, site.CreateSiteRequest{Name: "Riverside Tower"})
	assert.ErrorIs(t, err, site.ErrSiteNameExists)
}
