// Package services holds the backend's business logic. Handlers decode and
// encode JSON; everything else happens here.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/server/auth"
	"github.com/dmitrijs2005/alertaverde/internal/server/models"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/alertaverde/internal/validatex"
)

// UserService registers users, checks credentials and resolves the profile
// behind a token.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	passwords   *auth.PasswordService
	tokens      *auth.TokenService
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, p *auth.PasswordService, t *auth.TokenService) *UserService {
	return &UserService{db: db, repomanager: m, passwords: p, tokens: t}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userView(u *models.User) UserView {
	v := UserView{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.DefaultCity != "" {
		v.Preferences = &Preferences{DefaultCity: u.DefaultCity}
	}
	return v
}

// Register creates a user. A taken e-mail yields a Conflict error.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*UserView, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.DefaultCity = strings.TrimSpace(req.DefaultCity)
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		DefaultCity:  req.DefaultCity,
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil, common.Conflict("E-mail already registered")
	}
	if err != nil {
		return nil, err
	}

	v := userView(u)
	return &v, nil
}

// Login verifies the credentials and issues a token. Unknown e-mail and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, req.Email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := s.passwords.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, common.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &LoginResult{Token: token, User: userView(u)}, nil
}

// Me returns the profile of userID. A user deleted after the token was
// issued is reported as unauthorized.
func (s *UserService) Me(ctx context.Context, userID string) (*UserView, error) {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.Unauthorized("User not found")
	}
	if err != nil {
		return nil, err
	}
	v := userView(u)
	return &v, nil
}

// Authenticate resolves a bearer token to a user ID.
func (s *UserService) Authenticate(token string) (string, error) {
	return s.tokens.Validate(token)
}
