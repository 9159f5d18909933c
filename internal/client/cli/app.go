package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/client/client"
	"github.com/dmitrijs2005/alertaverde/internal/client/config"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/notify"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/client/session"
	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
	"github.com/dmitrijs2005/alertaverde/internal/filex"
	"github.com/dmitrijs2005/alertaverde/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// notifier is the part of notify.Notifier the commands use.
type notifier interface {
	Show(message string, severity notify.Severity)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	auth     services.AuthService
	crops    services.CropService
	weather  services.WeatherService
	notifier notifier
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	closers  []func()

	mu   sync.RWMutex
	mode Mode
	user *models.User
}

// NewApp opens the session database and builds the services from c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dsn, err := filex.EnsureParentDir(c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("session db path: %w", err)
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(db)
	api := client.NewHTTPClient(c.BackendURL, c.RequestTimeout, store)

	provider := weather.NewOpenWeather(weather.ProviderConfig{
		BaseURL: c.WeatherBaseURL,
		APIKey:  c.WeatherAPIKey,
		Lang:    c.WeatherLang,
		Units:   c.WeatherUnits,
	})

	n := notify.New(os.Stdout, notify.WithDelay(c.NotificationDelay), notify.WithLifetime(c.NotificationTTL))

	a := &App{
		config:   c,
		log:      log,
		auth:     services.NewAuthService(api, store),
		crops:    services.NewCropService(api),
		weather:  services.NewWeatherService(provider, weather.NewCache(c.CacheTTL), log),
		notifier: n,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
		mode:     ModeOnline,
	}
	a.closers = []func(){n.Close, func() { closeDB(db) }}

	return a, nil
}

func closeDB(db *sql.DB) {
	_ = db.Close()
}

// Close releases the database and stops pending notifications.
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if !changed {
		return
	}
	a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	if mode == ModeOnline {
		a.notifier.Show("Connection restored.", notify.Info)
	} else {
		a.notifier.Show("Server unavailable. Working offline.", notify.Warning)
	}
}

func (a *App) currentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

func (a *App) status() string {
	s := ""
	if u := a.currentUser(); u != nil {
		s = u.Name + " "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}

// Run restores any stored session, starts the connectivity watcher and
// blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to Alerta Verde (type 'help' for commands)")

	a.Restore(ctx)

	if a.config.OnlineCheckInterval > 0 {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	} else {
		a.disableWatcher()
	}

	runREPL(ctx, a, a.status, a.reader)
}

// disableWatcher marks connectivity as unknown. It is silent, unlike
// setMode, since nothing changed on the network.
func (a *App) disableWatcher() {
	a.mu.Lock()
	a.mode = ModeDisabled
	a.mu.Unlock()
	a.log.Info(context.Background(), "online status watcher disabled")
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
