package services

import (
	"context"
	"database/sql"

	"blogcms/internal/server/models"
	"blogcms/internal/server/repositories/repomanager"
)

type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Overview is the admin dashboard aggregate: every user, every post, and
// every comment whose parent post still exists.
type Overview struct {
	Users    []*models.User    `json:"users"`
	Posts    []*models.Post    `json:"posts"`
	Comments []*models.Comment `json:"comments"`
}

func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {

	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.repomanager.Posts(s.db).List(ctx, 0)
	if err != nil {
		return nil, err
	}

	comments, err := s.repomanager.Comments(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{Users: users, Posts: posts, Comments: comments}, nil
}
