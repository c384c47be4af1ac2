// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential validation, token
// issuance, and profile maintenance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"diary/internal/common"
	"diary/internal/dbx"
	"diary/internal/server/auth"
	"diary/internal/server/config"
	"diary/internal/server/models"
	"diary/internal/server/repositories/repomanager"
)

// AuthResult bundles a freshly minted access token with the authenticated user.
type AuthResult struct {
	AccessToken string
	User        *models.User
}

// UserService provides authentication-related operations:
// - Register: create users after a uniqueness check
// - Login: verify credentials and mint an access token
// - Get/Update/Delete: profile maintenance for the authenticated user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with the given email and password. A taken
// email yields common.ErrEmailTaken. The uniqueness check is read-before-
// write; concurrent registrations racing through the window are caught by
// the database unique constraint, which the repository maps to the same error.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, internalError("check email", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, internalError("hash password", err)
	}

	user := &models.User{Email: email, PasswordHash: hash}
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, internalError("create user", err)
	}
	return u, nil
}

// Login verifies the email/password pair and, on success, returns an access
// token plus the user. A missing user and a wrong password both collapse to
// common.ErrUnauthorized so callers cannot tell which one it was.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, internalError("get user", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, internalError("sign token", err)
	}

	return &AuthResult{AccessToken: token, User: user}, nil
}

// Get returns the user record for the given id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, internalError("get user", err)
	}
	return user, nil
}

// Update applies an optional-field profile update: only present fields
// overwrite stored values, and a new password is re-hashed before storage.
// The read-modify-write sequence runs in one transaction so concurrent
// updates cannot interleave between the read and the write.
func (s *UserService) Update(ctx context.Context, id int64, upd *models.UserUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if upd.Email != nil {
			user.Email = *upd.Email
		}
		if upd.Password != nil {
			hash, err := auth.HashPassword(*upd.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, internalError("update user", err)
	}
	return updated, nil
}

// Delete removes the user's account. Owned diaries go with it via the
// schema's ON DELETE CASCADE.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Users(s.db)

	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return internalError("delete user", err)
	}
	return nil
}

// internalError keeps the cause in the chain for the server-side log line
// while callers keep matching on common.ErrInternal.
func internalError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrInternal, err)
}
