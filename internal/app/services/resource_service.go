package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/app/models/dto"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

// resourceStore is the subset of resource persistence this service depends on.
type resourceStore interface {
	Create(ctx context.Context, resource *models.Resource) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	List(ctx context.Context) ([]*models.Resource, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceService defines the interface for resource board operations
type ResourceService interface {
	Create(ctx context.Context, creatorID int64, req *dto.CreateResourceRequest) (*models.Resource, error)
	List(ctx context.Context) ([]*models.Resource, error)
	Delete(ctx context.Context, callerID, resourceID int64) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceStore resourceStore
	logger        zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceStore resourceStore, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceStore: resourceStore,
		logger:        logger,
	}
}

// Create publishes a new resource board entry owned by the caller.
// The type defaults to blog when absent.
func (s *resourceServiceImpl) Create(ctx context.Context, creatorID int64, req *dto.CreateResourceRequest) (*models.Resource, error) {
	resourceType := models.ResourceType(req.Type)
	if resourceType == "" {
		resourceType = models.ResourceTypeBlog
	}
	if !models.ValidResourceType(resourceType) {
		return nil, apperrors.NewValidationError("unknown resource type")
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Type:        resourceType,
		ImageURL:    req.ImageURL,
		CreatorID:   creatorID,
	}
	if _, err := s.resourceStore.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("resourceID", resource.ID).
		Int64("creatorID", creatorID).
		Msg("Resource published")

	return resource, nil
}

// List retrieves all resources, newest first
func (s *resourceServiceImpl) List(ctx context.Context) ([]*models.Resource, error) {
	resources, err := s.resourceStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []*models.Resource{}
	}
	return resources, nil
}

// Delete removes a resource. Only its creator may delete it.
func (s *resourceServiceImpl) Delete(ctx context.Context, callerID, resourceID int64) error {
	resource, err := s.resourceStore.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.CreatorID != callerID {
		return apperrors.NewForbiddenError("only the creator can delete this resource")
	}

	if err := s.resourceStore.Delete(ctx, resourceID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("resourceID", resourceID).
		Int64("callerID", callerID).
		Msg("Resource deleted")

	return nil
}
