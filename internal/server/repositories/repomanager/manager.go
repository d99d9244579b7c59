package repomanager

import (
	"context"
	"database/sql"

	"blogcms/internal/dbx"
	"blogcms/internal/server/repositories/comments"
	"blogcms/internal/server/repositories/posts"
	"blogcms/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Comments(db dbx.DBTX) comments.Repository
}
