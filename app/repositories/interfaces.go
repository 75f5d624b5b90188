package repositories

import (
	"context"

	"blogapi/app/models"
)

// PostRepository defines the interface for post data access.
//
// Posts are kept in insertion order. Update and UpdateFirst run the mutation
// and the write as a single atomic step; readers never see a half-applied change.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, id string, mutate func(*models.Post) error) (*models.Post, error)
	// UpdateFirst mutates the first post, in store order, for which match returns true.
	UpdateFirst(ctx context.Context, match func(*models.Post) bool, mutate func(*models.Post) error) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}
