package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunrv/mentorhub/internal/app/models"
	"github.com/arjunrv/mentorhub/internal/pkg/apperrors"
)

// ResourceRepository handles database operations for resource board entries
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a new resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) (int64, error) {
	query := `
		INSERT INTO resources (title, description, link, type, image_url, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		resource.Title, resource.Description, resource.Link,
		resource.Type, resource.ImageURL, resource.CreatorID,
	).Scan(&resource.ID, &resource.CreatedAt, &resource.UpdatedAt)

	if err != nil {
		return 0, fmt.Errorf("error creating resource: %w", err)
	}

	return resource.ID, nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `
		SELECT id, title, description, link, type, image_url, creator_id, created_at, updated_at
		FROM resources
		WHERE id = $1
	`

	resource := &models.Resource{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resource.ID, &resource.Title, &resource.Description, &resource.Link,
		&resource.Type, &resource.ImageURL, &resource.CreatorID,
		&resource.CreatedAt, &resource.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return resource, nil
}

// List retrieves all resources, newest first
func (r *ResourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	query := `
		SELECT id, title, description, link, type, image_url, creator_id, created_at, updated_at
		FROM resources
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		resource := &models.Resource{}
		err := rows.Scan(
			&resource.ID, &resource.Title, &resource.Description, &resource.Link,
			&resource.Type, &resource.ImageURL, &resource.CreatorID,
			&resource.CreatedAt, &resource.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resources: %w", err)
	}

	return resources, nil
}

// Delete removes a resource by ID
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
