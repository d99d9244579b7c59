// Package services implements the business rules of the blog backend on
// top of the repositories, the blob store and the token primitives.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogcms/internal/common"
	"blogcms/internal/dbx"
	"blogcms/internal/logging"
	"blogcms/internal/server/auth"
	"blogcms/internal/server/blob"
	"blogcms/internal/server/config"
	"blogcms/internal/server/models"
	"blogcms/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	logger      logging.Logger
	jwtSecret   []byte
	adminEmail  string
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store, logger logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger.With("service", "users"),
		jwtSecret:   []byte(cfg.SecretKey),
		adminEmail:  cfg.AdminEmail,
	}
}

// Register creates an account with the default user role. The plaintext
// password is hashed immediately and never stored or logged.
func (s *UserService) Register(ctx context.Context, fullName, email, password, profileImage string) (*models.User, error) {

	if fullName == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         common.RoleUser,
		ProfileImage: profileImage,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login authenticates by email and password and issues a token. Unknown
// email and wrong password are indistinguishable to the caller. A user
// logging in with the configured admin email is promoted to the admin
// role persistently before the token is issued.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	if email == s.adminEmail && user.Role != common.RoleAdmin {
		if err := repo.UpdateRole(ctx, user.ID, common.RoleAdmin); err != nil {
			return nil, "", common.ErrorInternal
		}
		user.Role = common.RoleAdmin
		s.logger.Info(ctx, "promoted bootstrap admin", "user_id", user.ID)
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// GetByID resolves a user record, typically from verified token claims.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// List returns all registered users, newest first.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

// UpdateProfileParams are the optional self-service profile changes.
// Empty fields are left untouched.
type UpdateProfileParams struct {
	FullName     string
	OldPassword  string
	NewPassword  string
	ProfileImage string
}

// UpdateProfile applies name/image changes and, when requested, a
// password change gated on the old password. A fresh token is issued so
// the client keeps a 7-day session window. A replaced profile image is
// deleted from the blob store best-effort after the record is saved.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (*models.User, string, error) {

	if p.NewPassword != "" && p.OldPassword == "" {
		return nil, "", common.ErrOldPasswordRequired
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if p.OldPassword != "" {
		if !auth.CheckPassword(user.PasswordHash, p.OldPassword) {
			return nil, "", common.ErrOldPasswordIncorrect
		}
		if p.NewPassword != "" {
			hash, err := auth.HashPassword(p.NewPassword)
			if err != nil {
				return nil, "", fmt.Errorf("error hashing password: %w", err)
			}
			user.PasswordHash = hash
		}
	}

	if p.FullName != "" {
		user.FullName = p.FullName
	}

	supersededImage := ""
	if p.ProfileImage != "" {
		supersededImage = user.ProfileImage
		user.ProfileImage = p.ProfileImage
	}

	user, err = repo.Update(ctx, user)
	if err != nil {
		return nil, "", err
	}

	if supersededImage != "" {
		s.deleteBlob(ctx, supersededImage)
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Delete permanently removes a user together with their comments.
// Admin accounts are never deletable. The record deletes run in one
// transaction; the profile image is removed best-effort afterwards.
func (s *UserService) Delete(ctx context.Context, userID string) error {

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == common.RoleAdmin {
		return common.ErrAdminProtected
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Comments(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, userID)
	})
	if err != nil {
		return err
	}

	if user.ProfileImage != "" {
		s.deleteBlob(ctx, user.ProfileImage)
	}

	return nil
}

// deleteBlob removes a superseded or orphaned blob. Failures are logged
// and swallowed: the owning record change must never be rolled back
// because object storage hiccuped.
func (s *UserService) deleteBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "blob deletion failed", "key", key, "error", err)
	}
}
