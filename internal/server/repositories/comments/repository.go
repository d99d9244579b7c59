package comments

import (
	"context"

	"blogcms/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByPost returns a post's comments newest first, with the
	// commenter reference resolved.
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	// ListAll returns every comment whose parent post still exists,
	// newest first, with the commenter reference resolved.
	ListAll(ctx context.Context) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
