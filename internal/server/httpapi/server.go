// Package httpapi exposes the blog backend as the JSON API the web
// frontend already speaks. Paths, methods and response shapes are fixed
// for compatibility.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"blogcms/internal/logging"
	"blogcms/internal/server/blob"
	"blogcms/internal/server/config"
	"blogcms/internal/server/models"
	"blogcms/internal/server/services"
)

// UserService is the slice of the users service the HTTP layer needs.
type UserService interface {
	Register(ctx context.Context, fullName, email, password, profileImage string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateProfile(ctx context.Context, userID string, p services.UpdateProfileParams) (*models.User, string, error)
	Delete(ctx context.Context, userID string) error
}

type PostService interface {
	Create(ctx context.Context, authorID, title, description, image string) (*models.Post, error)
	Update(ctx context.Context, postID string, p services.UpdatePostParams) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
	ListRecent(ctx context.Context) ([]*models.Post, error)
	ListAll(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, postID string) (*models.Post, error)
}

type CommentService interface {
	Add(ctx context.Context, userID, postID, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type DashboardService interface {
	Overview(ctx context.Context) (*services.Overview, error)
}

type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	users     UserService
	posts     PostService
	comments  CommentService
	dashboard DashboardService
	blobs     blob.Store
	jwtSecret []byte
}

func NewServer(cfg *config.Config, logger logging.Logger,
	users UserService, posts PostService, comments CommentService,
	dashboard DashboardService, blobs blob.Store) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger.With("component", "httpapi"),
		users:     users,
		posts:     posts,
		comments:  comments,
		dashboard: dashboard,
		blobs:     blobs,
		jwtSecret: []byte(cfg.SecretKey),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello from the backend!"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.With(s.authMiddleware).Get("/check", s.handleCheck)
		r.With(s.authMiddleware).Post("/updateprofile", s.handleUpdateProfile)
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/getpost", s.handleRecentPosts)
		r.Get("/getpost/{id}", s.handleGetPost)
		r.With(s.authMiddleware, s.requireAdmin).Post("/create", s.handleCreatePost)
		r.With(s.authMiddleware, s.requireAdmin).Patch("/update/{id}", s.handleUpdatePost)
		r.With(s.authMiddleware, s.requireAdmin).Delete("/posts/{id}", s.handleDeletePost)
	})

	r.Route("/comment", func(r chi.Router) {
		r.With(s.authMiddleware).Post("/addcomment", s.handleAddComment)
		r.With(s.authMiddleware, s.requireAdmin).Post("/deletecomment", s.handleDeleteComment)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware, s.requireAdmin)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/users", s.handleListUsers)
		r.Get("/allposts", s.handleAllPosts)
		r.Delete("/deleteUser/{id}", s.handleDeleteUser)
	})

	// The original exposed the same handlers under /dashboard as well.
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(s.authMiddleware, s.requireAdmin)
		r.Get("/", s.handleDashboard)
		r.Get("/users", s.handleListUsers)
		r.Get("/allposts", s.handleAllPosts)
		r.Delete("/deleteUser/{id}", s.handleDeleteUser)
	})

	r.Route("/public", func(r chi.Router) {
		r.Get("/getpost/{id}", s.handleGetPost)
		r.Get("/images/*", s.handleImage)
	})

	return r
}
