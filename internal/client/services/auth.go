// Package services contains the CLI's application services. They sit between
// the REPL commands and the backend client, session store and weather
// provider.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/alertaverde/internal/client/client"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/validatex"
)

var (
	ErrNoSession      = errors.New("no stored session")
	ErrSessionExpired = errors.New("session expired")
)

// SessionStore is the slice of session.Store the auth service needs.
type SessionStore interface {
	Save(ctx context.Context, token string, user *models.User) error
	Token(ctx context.Context) (string, bool, error)
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Restore returns the cached profile together with an error wrapping
// client.ErrUnavailable when the backend cannot be reached; callers treat
// that as a logged-in, offline session.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionStore
}

func NewAuthService(c client.Client, session SessionStore) AuthService {
	return &authService{client: c, session: session}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := validatex.Struct(req); err != nil {
		return err
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login authenticates and persists the token and profile. The password
// buffer is wiped before returning.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := a.session.Save(ctx, resp.Token, &resp.User); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &resp.User, nil
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	_, ok, err := a.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}

	user, err := a.client.Me(ctx)
	switch {
	case err == nil:
		if err := a.session.SetUser(ctx, user); err != nil {
			return nil, fmt.Errorf("save profile: %w", err)
		}
		return user, nil

	case errors.Is(err, client.ErrUnauthorized):
		if err := a.session.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, ErrSessionExpired

	case errors.Is(err, client.ErrUnavailable):
		cached, cerr := a.session.User(ctx)
		if cerr != nil || cached == nil {
			return nil, err
		}
		return cached, err

	default:
		return nil, fmt.Errorf("restore session: %w", err)
	}
}

// Logout forgets the session locally. The backend is not contacted.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
