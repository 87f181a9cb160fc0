package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

type fakeResourceStore struct {
	resources map[int64]*models.Resource
	nextID    int64
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{resources: make(map[int64]*models.Resource)}
}

func (f *fakeResourceStore) Create(_ context.Context, resource *models.Resource) (int64, error) {
	f.nextID++
	resource.ID = f.nextID
	f.resources[resource.ID] = resource
	return resource.ID, nil
}

func (f *fakeResourceStore) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return resource, nil
}

func (f *fakeResourceStore) List(_ context.Context) ([]*models.Resource, error) {
	var out []*models.Resource
	for _, resource := range f.resources {
		out = append(out, resource)
	}
	return out, nil
}

func (f *fakeResourceStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.resources[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.resources, id)
	return nil
}

func TestResourceCreate(t *testing.T) {
	t.Run("assigns the caller as creator and defaults the type", func(t *testing.T) {
		store := newFakeResourceStore()
		service := NewResourceService(store, zerolog.Nop())

		resource, err := service.Create(context.Background(), 7, &dto.CreateResourceRequest{Title: "Go by Example"})
		require.NoError(t, err)

		assert.Equal(t, int64(7), resource.CreatorID)
		assert.Equal(t, models.ResourceTypeBlog, resource.Type)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		service := NewResourceService(newFakeResourceStore(), zerolog.Nop())

		_, err := service.Create(context.Background(), 7, &dto.CreateResourceRequest{Title: "x", Type: "podcast"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestResourceDelete(t *testing.T) {
	store := newFakeResourceStore()
	service := NewResourceService(store, zerolog.Nop())

	resource, err := service.Create(context.Background(), 7, &dto.CreateResourceRequest{Title: "x", Type: "tool"})
	require.NoError(t, err)

	t.Run("only the creator may delete", func(t *testing.T) {
		err := service.Delete(context.Background(), 8, resource.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Contains(t, store.resources, resource.ID)
	})

	t.Run("creator deletes", func(t *testing.T) {
		require.NoError(t, service.Delete(context.Background(), 7, resource.ID))
		assert.Empty(t, store.resources)
	})

	t.Run("missing resource", func(t *testing.T) {
		err := service.Delete(context.Background(), 7, 999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
