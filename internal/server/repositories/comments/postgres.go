package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogcms/internal/common"
	"blogcms/internal/dbx"
	"blogcms/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	query :=
		`INSERT INTO comments (post_id, user_id, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.PostID, comment.UserID, comment.Body).
		Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query :=
		`SELECT id, post_id, user_id, body, created_at
		 FROM comments
		 WHERE id = $1
		 `

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&comment.ID, &comment.PostID,
		&comment.UserID, &comment.Body, &comment.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	query :=
		`SELECT c.id, c.post_id, c.user_id, c.body, c.created_at,
		        u.id, u.full_name, COALESCE(u.profile_image, '')
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.post_id = $1
		 ORDER BY c.created_at DESC
		 `

	return r.queryResolved(ctx, query, postID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	query :=
		`SELECT c.id, c.post_id, c.user_id, c.body, c.created_at,
		        u.id, u.full_name, COALESCE(u.profile_image, '')
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 JOIN posts p ON p.id = c.post_id
		 ORDER BY c.created_at DESC
		 `

	return r.queryResolved(ctx, query)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM comments WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	query := `DELETE FROM comments WHERE post_id = $1`

	res, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM comments WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) queryResolved(ctx context.Context, query string, args ...any) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		comment := &models.Comment{User: &models.UserRef{}}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID,
			&comment.Body, &comment.CreatedAt,
			&comment.User.ID, &comment.User.FullName, &comment.User.ProfileImage); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
