// Package server wires storage, services and the HTTP API together and runs
// the backend until its context is cancelled.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/logging"
	"github.com/dmitrijs2005/alertaverde/internal/server/auth"
	"github.com/dmitrijs2005/alertaverde/internal/server/config"
	"github.com/dmitrijs2005/alertaverde/internal/server/httpapi"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/alertaverde/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// openPostgres is a seam for tests.
var openPostgres = repomanager.OpenPostgres

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN == config.MemoryDSN || c.DatabaseDSN == "" {
		rm = repomanager.NewInMemoryRepositoryManager()
		logger.Warn(ctx, "using in-memory storage, data is lost on restart")
	} else {
		var err error
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = common.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("generating secret: %w", err)
		}
		logger.Warn(ctx, "no JWT secret configured, generated a random one")
	}

	us := services.NewUserService(db, rm,
		auth.NewPasswordService(c.BcryptCost),
		auth.NewTokenService(secret, c.TokenValidityDuration))
	cs := services.NewCropService(db, rm)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		handler: httpapi.NewRouter(us, cs, logger, c.AllowedOrigin),
	}, nil
}

// Handler exposes the router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run serves HTTP on the configured address until ctx is cancelled, then
// shuts down gracefully and closes the database.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.EndpointAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return app.Serve(ctx, ln)
}

func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if app.db != nil {
			_ = app.db.Close()
		}
	}()

	srv := &http.Server{
		Handler:      app.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "server starting", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	app.logger.Info(shutdownCtx, "server stopped")
	return nil
}
