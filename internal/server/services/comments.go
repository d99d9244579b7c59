package services

import (
	"context"
	"database/sql"

	"blogcms/internal/common"
	"blogcms/internal/dbx"
	"blogcms/internal/logging"
	"blogcms/internal/server/models"
	"blogcms/internal/server/repositories/repomanager"
)

type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CommentService {
	return &CommentService{
		db:          db,
		repomanager: m,
		logger:      logger.With("service", "comments"),
	}
}

// Add creates a comment on an existing post. The existence check and the
// insert share one transaction, so a comment can never be created
// against a post that was deleted concurrently.
func (s *CommentService) Add(ctx context.Context, userID, postID, body string) (*models.Comment, error) {

	if body == "" || postID == "" {
		return nil, common.ErrorValidation
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Posts(tx).GetByID(ctx, postID); err != nil {
			return err
		}
		_, err := s.repomanager.Comments(tx).Create(ctx, comment)
		return err
	})
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err == nil {
		comment.User = user.Ref()
	}

	return comment, nil
}

// Delete removes a comment by id. The caller's admin role is enforced by
// the transport middleware; any admin may delete any comment. The parent
// post's comment list is derived from the comments table, so the row
// delete is the whole cascade.
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	return s.repomanager.Comments(s.db).Delete(ctx, commentID)
}
