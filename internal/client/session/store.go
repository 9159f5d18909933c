// Package session persists the authenticated user's token and profile in the
// CLI's SQLite session table, so a restart can restore the logged-in state.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/repositories/kv"
	"github.com/dmitrijs2005/alertaverde/internal/dbx"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Store reads and writes the session. It satisfies client.TokenSource.
// Nothing here validates or expires the token; the backend decides.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// Save writes token and profile together.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, string(profile))
	})
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo(s.db).Set(ctx, tokenKey, token)
}

// Token returns the stored token; ok is false when there is none.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	v, ok, err := s.repo(s.db).Get(ctx, tokenKey)
	if err != nil || !ok || v == "" {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.repo(s.db).Set(ctx, userKey, string(profile))
}

// User returns the cached profile, or nil when none is stored.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	v, ok, err := s.repo(s.db).Get(ctx, userKey)
	if err != nil || !ok {
		return nil, err
	}

	var u models.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &u, nil
}

// Clear removes token and profile. It needs no network.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, tokenKey, userKey)
}
