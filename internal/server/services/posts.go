package services

import (
	"context"
	"database/sql"
	"errors"

	"blogcms/internal/common"
	"blogcms/internal/dbx"
	"blogcms/internal/logging"
	"blogcms/internal/server/blob"
	"blogcms/internal/server/models"
	"blogcms/internal/server/repositories/repomanager"
)

// recentPostLimit caps the public landing-page listing.
const recentPostLimit = 6

type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	logger      logging.Logger
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store, logger logging.Logger) *PostService {
	return &PostService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger.With("service", "posts"),
	}
}

// Create persists a new post with an empty comment list. Role checks
// happen in the transport middleware, not here.
func (s *PostService) Create(ctx context.Context, authorID, title, description, image string) (*models.Post, error) {

	if title == "" || description == "" {
		return nil, common.ErrorValidation
	}

	post := &models.Post{
		Title:       title,
		Description: description,
		Image:       image,
		AuthorID:    authorID,
	}

	return s.repomanager.Posts(s.db).Create(ctx, post)
}

// UpdatePostParams are partial changes: empty fields keep the stored value.
type UpdatePostParams struct {
	Title       string
	Description string
	Image       string
}

// Update replaces only the supplied fields. When a new image arrives the
// superseded blob is deleted best-effort after the record is saved.
func (s *PostService) Update(ctx context.Context, postID string, p UpdatePostParams) (*models.Post, error) {

	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if p.Title != "" {
		post.Title = p.Title
	}
	if p.Description != "" {
		post.Description = p.Description
	}

	supersededImage := ""
	if p.Image != "" {
		supersededImage = post.Image
		post.Image = p.Image
	}

	post, err = repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	if supersededImage != "" {
		s.deleteBlob(ctx, supersededImage)
	}

	return post, nil
}

// Delete cascades: the post's comments and the post itself are removed
// in one transaction, children first, then the image blob is deleted
// best-effort. A blob failure is logged and never undoes the deletion.
func (s *PostService) Delete(ctx context.Context, postID string) error {

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, postID)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Comments(tx).DeleteByPost(ctx, postID); err != nil {
			return err
		}
		return s.repomanager.Posts(tx).Delete(ctx, postID)
	})
	if err != nil {
		return err
	}

	if post.Image != "" {
		s.deleteBlob(ctx, post.Image)
	}

	return nil
}

// ListRecent returns the newest posts for the public landing view.
func (s *PostService) ListRecent(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).List(ctx, recentPostLimit)
}

// ListAll returns every post, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).List(ctx, 0)
}

// Get returns a post with its author and comments resolved, comments
// newest first. A missing author (deleted account) leaves Author nil:
// the reference is weak.
func (s *PostService) Get(ctx context.Context, postID string) (*models.Post, error) {

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != "" {
		author, err := s.repomanager.Users(s.db).GetByID(ctx, post.AuthorID)
		switch {
		case err == nil:
			post.Author = author.Ref()
		case errors.Is(err, common.ErrorNotFound):
			// stale weak reference, leave Author nil
		default:
			return nil, err
		}
	}

	comments, err := s.repomanager.Comments(s.db).ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Comments = comments

	return post, nil
}

func (s *PostService) deleteBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "blob deletion failed", "key", key, "error", err)
	}
}
