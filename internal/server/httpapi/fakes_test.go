package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogcms/internal/common"
	"blogcms/internal/logging"
	"blogcms/internal/server/auth"
	"blogcms/internal/server/config"
	"blogcms/internal/server/models"
	"blogcms/internal/server/services"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeUserService struct {
	RegisterFunc      func(ctx context.Context, fullName, email, password, profileImage string) (*models.User, error)
	LoginFunc         func(ctx context.Context, email, password string) (*models.User, string, error)
	GetByIDFunc       func(ctx context.Context, id string) (*models.User, error)
	ListFunc          func(ctx context.Context) ([]*models.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, p services.UpdateProfileParams) (*models.User, string, error)
	DeleteFunc        func(ctx context.Context, userID string) error
}

func (f *fakeUserService) Register(ctx context.Context, fullName, email, password, profileImage string) (*models.User, error) {
	return f.RegisterFunc(ctx, fullName, email, password, profileImage)
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return f.LoginFunc(ctx, email, password)
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeUserService) List(ctx context.Context) ([]*models.User, error) {
	return f.ListFunc(ctx)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID string, p services.UpdateProfileParams) (*models.User, string, error) {
	return f.UpdateProfileFunc(ctx, userID, p)
}

func (f *fakeUserService) Delete(ctx context.Context, userID string) error {
	return f.DeleteFunc(ctx, userID)
}

type fakePostService struct {
	CreateFunc     func(ctx context.Context, authorID, title, description, image string) (*models.Post, error)
	UpdateFunc     func(ctx context.Context, postID string, p services.UpdatePostParams) (*models.Post, error)
	DeleteFunc     func(ctx context.Context, postID string) error
	ListRecentFunc func(ctx context.Context) ([]*models.Post, error)
	ListAllFunc    func(ctx context.Context) ([]*models.Post, error)
	GetFunc        func(ctx context.Context, postID string) (*models.Post, error)
}

func (f *fakePostService) Create(ctx context.Context, authorID, title, description, image string) (*models.Post, error) {
	return f.CreateFunc(ctx, authorID, title, description, image)
}

func (f *fakePostService) Update(ctx context.Context, postID string, p services.UpdatePostParams) (*models.Post, error) {
	return f.UpdateFunc(ctx, postID, p)
}

func (f *fakePostService) Delete(ctx context.Context, postID string) error {
	return f.DeleteFunc(ctx, postID)
}

func (f *fakePostService) ListRecent(ctx context.Context) ([]*models.Post, error) {
	return f.ListRecentFunc(ctx)
}

func (f *fakePostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	return f.ListAllFunc(ctx)
}

func (f *fakePostService) Get(ctx context.Context, postID string) (*models.Post, error) {
	return f.GetFunc(ctx, postID)
}

type fakeCommentService struct {
	AddFunc    func(ctx context.Context, userID, postID, body string) (*models.Comment, error)
	DeleteFunc func(ctx context.Context, commentID string) error
}

func (f *fakeCommentService) Add(ctx context.Context, userID, postID, body string) (*models.Comment, error) {
	return f.AddFunc(ctx, userID, postID, body)
}

func (f *fakeCommentService) Delete(ctx context.Context, commentID string) error {
	return f.DeleteFunc(ctx, commentID)
}

type fakeDashboardService struct {
	OverviewFunc func(ctx context.Context) (*services.Overview, error)
}

func (f *fakeDashboardService) Overview(ctx context.Context) (*services.Overview, error) {
	return f.OverviewFunc(ctx)
}

type fakeBlobStore struct {
	SaveFunc   func(ctx context.Context, key string, contentType string, body io.Reader) error
	OpenFunc   func(ctx context.Context, key string) (io.ReadCloser, string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (f *fakeBlobStore) Save(ctx context.Context, key string, contentType string, body io.Reader) error {
	if f.SaveFunc == nil {
		return nil
	}
	return f.SaveFunc(ctx, key, contentType, body)
}

func (f *fakeBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return f.OpenFunc(ctx, key)
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	if f.DeleteFunc == nil {
		return nil
	}
	return f.DeleteFunc(ctx, key)
}

type testEnv struct {
	server    *Server
	router    http.Handler
	users     *fakeUserService
	posts     *fakePostService
	comments  *fakeCommentService
	dashboard *fakeDashboardService
	blobs     *fakeBlobStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{SecretKey: testSecret, AllowedOrigin: "http://localhost:5173"}
	env := &testEnv{
		users:     &fakeUserService{},
		posts:     &fakePostService{},
		comments:  &fakeCommentService{},
		dashboard: &fakeDashboardService{},
		blobs:     &fakeBlobStore{},
	}
	env.server = NewServer(cfg, nopLogger{}, env.users, env.posts, env.comments, env.dashboard, env.blobs)
	env.router = env.server.Router()
	return env
}

// authAs wires the user store to resolve the given account and returns
// a valid bearer token for it.
func (e *testEnv) authAs(t *testing.T, user *models.User) string {
	t.Helper()

	e.users.GetByIDFunc = func(ctx context.Context, id string) (*models.User, error) {
		if id == user.ID {
			return user, nil
		}
		return nil, common.ErrorNotFound
	}

	token, err := auth.GenerateToken(user.ID, user.Role, []byte(testSecret))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}
