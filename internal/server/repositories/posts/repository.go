package posts

import (
	"context"

	"blogcms/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// GetByID returns the bare post record; author and comments are
	// resolved by the service layer.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// List returns posts newest first. A non-positive limit means no cap.
	List(ctx context.Context, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}
