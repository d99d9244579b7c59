package services

import (
	"context"
	"database/sql"
	"io"

	"blogcms/internal/dbx"
	"blogcms/internal/logging"
	"blogcms/internal/server/models"
	"blogcms/internal/server/repositories/comments"
	"blogcms/internal/server/repositories/posts"
	"blogcms/internal/server/repositories/users"
)

// nopLogger satisfies logging.Logger without output.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// callRecorder collects the order of repository and blob operations so
// tests can assert cascade sequencing.
type callRecorder struct {
	calls []string
}

func (r *callRecorder) record(name string) {
	r.calls = append(r.calls, name)
}

type fakeUserRepo struct {
	rec *callRecorder

	CreateFunc     func(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	ListFunc       func(ctx context.Context) ([]*models.User, error)
	UpdateFunc     func(ctx context.Context, user *models.User) (*models.User, error)
	UpdateRoleFunc func(ctx context.Context, id string, role string) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.rec.record("users.Create")
	return f.CreateFunc(ctx, user)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.rec.record("users.GetByEmail")
	return f.GetByEmailFunc(ctx, email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.rec.record("users.GetByID")
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	f.rec.record("users.List")
	return f.ListFunc(ctx)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	f.rec.record("users.Update")
	return f.UpdateFunc(ctx, user)
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role string) error {
	f.rec.record("users.UpdateRole")
	return f.UpdateRoleFunc(ctx, id, role)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.rec.record("users.Delete")
	return f.DeleteFunc(ctx, id)
}

type fakePostRepo struct {
	rec *callRecorder

	CreateFunc  func(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByIDFunc func(ctx context.Context, id string) (*models.Post, error)
	ListFunc    func(ctx context.Context, limit int) ([]*models.Post, error)
	UpdateFunc  func(ctx context.Context, post *models.Post) (*models.Post, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	f.rec.record("posts.Create")
	return f.CreateFunc(ctx, post)
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	f.rec.record("posts.GetByID")
	return f.GetByIDFunc(ctx, id)
}

func (f *fakePostRepo) List(ctx context.Context, limit int) ([]*models.Post, error) {
	f.rec.record("posts.List")
	return f.ListFunc(ctx, limit)
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) (*models.Post, error) {
	f.rec.record("posts.Update")
	return f.UpdateFunc(ctx, post)
}

func (f *fakePostRepo) Delete(ctx context.Context, id string) error {
	f.rec.record("posts.Delete")
	return f.DeleteFunc(ctx, id)
}

type fakeCommentRepo struct {
	rec *callRecorder

	CreateFunc       func(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByIDFunc      func(ctx context.Context, id string) (*models.Comment, error)
	ListByPostFunc   func(ctx context.Context, postID string) ([]*models.Comment, error)
	ListAllFunc      func(ctx context.Context) ([]*models.Comment, error)
	DeleteFunc       func(ctx context.Context, id string) error
	DeleteByPostFunc func(ctx context.Context, postID string) (int64, error)
	DeleteByUserFunc func(ctx context.Context, userID string) (int64, error)
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	f.rec.record("comments.Create")
	return f.CreateFunc(ctx, comment)
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	f.rec.record("comments.GetByID")
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	f.rec.record("comments.ListByPost")
	return f.ListByPostFunc(ctx, postID)
}

func (f *fakeCommentRepo) ListAll(ctx context.Context) ([]*models.Comment, error) {
	f.rec.record("comments.ListAll")
	return f.ListAllFunc(ctx)
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	f.rec.record("comments.Delete")
	return f.DeleteFunc(ctx, id)
}

func (f *fakeCommentRepo) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	f.rec.record("comments.DeleteByPost")
	return f.DeleteByPostFunc(ctx, postID)
}

func (f *fakeCommentRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	f.rec.record("comments.DeleteByUser")
	return f.DeleteByUserFunc(ctx, userID)
}

// fakeRepoManager hands back the same fakes for any handle, so the
// service transaction plumbing is exercised without caring which DBTX
// it runs on.
type fakeRepoManager struct {
	users    *fakeUserRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
}

func newFakeRepoManager() (*fakeRepoManager, *callRecorder) {
	rec := &callRecorder{}
	return &fakeRepoManager{
		users:    &fakeUserRepo{rec: rec},
		posts:    &fakePostRepo{rec: rec},
		comments: &fakeCommentRepo{rec: rec},
	}, rec
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Posts(dbx.DBTX) posts.Repository              { return m.posts }
func (m *fakeRepoManager) Comments(dbx.DBTX) comments.Repository        { return m.comments }

// fakeBlobStore records deletions and can simulate failures.
type fakeBlobStore struct {
	rec       *callRecorder
	deleted   []string
	deleteErr error
}

func (f *fakeBlobStore) Save(ctx context.Context, key string, contentType string, body io.Reader) error {
	return nil
}

func (f *fakeBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return nil, "", nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	if f.rec != nil {
		f.rec.record("blobs.Delete")
	}
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}
