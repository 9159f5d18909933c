package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/client/config"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/notify"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
	"github.com/dmitrijs2005/alertaverde/internal/logging"
)

type shown struct {
	msg string
	sev notify.Severity
}

type recNotifier struct {
	mu   sync.Mutex
	list []shown
}

func (r *recNotifier) Show(msg string, sev notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, shown{msg, sev})
}

func (r *recNotifier) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.list))
	for _, s := range r.list {
		out = append(out, s.msg)
	}
	return out
}

type fakeAuth struct {
	regReq models.RegisterRequest
	regErr error

	loginEmail string
	loginPass  string
	loginUser  *models.User
	loginErr   error

	restoreUser *models.User
	restoreErr  error

	logoutCalled bool
	pingErr      error
	pings        int
	mu           sync.Mutex
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) error {
	f.regReq = req
	return f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email string, pw []byte) (*models.User, error) {
	f.loginEmail, f.loginPass = email, string(pw)
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Restore(context.Context) (*models.User, error) { return f.restoreUser, f.restoreErr }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

type fakeCrops struct {
	list      []models.Crop
	err       error
	listCalls int
	created   []models.CropRequest
	deleted   []string
}

func (f *fakeCrops) List(context.Context) ([]models.Crop, error) {
	f.listCalls++
	return f.list, f.err
}

func (f *fakeCrops) Create(_ context.Context, req models.CropRequest) ([]models.Crop, error) {
	f.created = append(f.created, req)
	if f.err != nil {
		return nil, f.err
	}
	f.list = append(f.list, models.Crop{ID: "c1", Name: req.Name, Type: req.Type, PlantingDate: req.PlantingDate, Area: req.Area})
	return f.list, nil
}

func (f *fakeCrops) Delete(_ context.Context, id string) ([]models.Crop, error) {
	f.deleted = append(f.deleted, id)
	return f.list, f.err
}

type fakeWeather struct {
	cities  []string
	res     *services.WeatherResult
	err     error
	cleared int
}

func (f *fakeWeather) Load(_ context.Context, city string) (*services.WeatherResult, error) {
	f.cities = append(f.cities, city)
	if f.err != nil {
		return nil, f.err
	}
	if f.res != nil {
		return f.res, nil
	}
	return &services.WeatherResult{City: city, Snapshot: sampleSnapshot(city)}, nil
}

func (f *fakeWeather) ClearCache() { f.cleared++ }

func sampleSnapshot(city string) weather.Snapshot {
	cur := &weather.Current{Name: city, Weather: []weather.Condition{{Main: "Clear", Description: "clear sky"}}}
	cur.Main.Temp = 30
	cur.Main.Humidity = 50
	cur.Sys.Country = "BR"

	f := &weather.Forecast{List: []weather.ForecastEntry{
		{Dt: 1717243200, Weather: []weather.Condition{{Main: "Rain", Description: "light rain"}}},
	}}
	return weather.Snapshot{Current: cur, Forecast: f, Timestamp: time.Unix(1717243200, 0)}
}

type testApp struct {
	*App
	authF    *fakeAuth
	cropsF   *fakeCrops
	weatherF *fakeWeather
	notes    *recNotifier
	buf      *bytes.Buffer
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	cfg := &config.Config{}
	cfg.LoadDefaults()

	ta := &testApp{
		authF:    &fakeAuth{},
		cropsF:   &fakeCrops{},
		weatherF: &fakeWeather{},
		notes:    &recNotifier{},
		buf:      &bytes.Buffer{},
	}
	ta.App = &App{
		config:   cfg,
		log:      logging.Discard(),
		auth:     ta.authF,
		crops:    ta.cropsF,
		weather:  ta.weatherF,
		notifier: ta.notes,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      ta.buf,
		now:      func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) },
		mode:     ModeOnline,
	}
	return ta
}

// stubPasswords makes getPassword return the given values in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		pw := []byte(pws[i])
		i++
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}
