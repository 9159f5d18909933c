package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	RegisterErr error
	LastRegister models.RegisterRequest

	LoginRet      *models.LoginResponse
	LoginErr      error
	LastLoginUser string
	LastLoginPass string

	MeRet *models.User
	MeErr error

	Crops      []models.Crop
	ListErr    error
	ListCalls  int
	CreateErr  error
	LastCreate models.CropRequest
	DeleteErr  error
	Deleted    []string

	PingErr error
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.LastLoginUser = email
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) { return f.MeRet, f.MeErr }

func (f *fakeClient) ListCrops(ctx context.Context) ([]models.Crop, error) {
	f.ListCalls++
	return f.Crops, f.ListErr
}

func (f *fakeClient) CreateCrop(ctx context.Context, req models.CropRequest) (*models.Crop, error) {
	f.LastCreate = req
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	c := models.Crop{ID: "new", Name: req.Name, Type: req.Type, PlantingDate: req.PlantingDate, Area: req.Area}
	f.Crops = append(f.Crops, c)
	return &c, nil
}

func (f *fakeClient) DeleteCrop(ctx context.Context, id string) error {
	f.Deleted = append(f.Deleted, id)
	return f.DeleteErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

// memSession is an in-memory SessionStore.
type memSession struct {
	token  string
	user   *models.User
	saves  int
	clears int
}

func (m *memSession) Save(ctx context.Context, token string, user *models.User) error {
	m.saves++
	m.token, m.user = token, user
	return nil
}

func (m *memSession) Token(ctx context.Context) (string, bool, error) {
	return m.token, m.token != "", nil
}

func (m *memSession) User(ctx context.Context) (*models.User, error) { return m.user, nil }

func (m *memSession) SetUser(ctx context.Context, user *models.User) error {
	m.user = user
	return nil
}

func (m *memSession) Clear(ctx context.Context) error {
	m.clears++
	m.token, m.user = "", nil
	return nil
}

// fakeProvider counts calls and tracks how many are in flight at once.
type fakeProvider struct {
	mu          sync.Mutex
	CurrentErr  error
	ForecastErr error
	Temp        float64

	currentCalls  atomic.Int32
	forecastCalls atomic.Int32
	inFlight      atomic.Int32
	maxInFlight   atomic.Int32
	gate          chan struct{}
}

func (p *fakeProvider) enter() {
	n := p.inFlight.Add(1)
	for {
		m := p.maxInFlight.Load()
		if n <= m || p.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	if p.gate != nil {
		<-p.gate
	}
}

func (p *fakeProvider) leave() { p.inFlight.Add(-1) }

func (p *fakeProvider) Current(ctx context.Context, city string) (*weather.Current, error) {
	p.currentCalls.Add(1)
	p.enter()
	defer p.leave()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.CurrentErr != nil {
		return nil, p.CurrentErr
	}
	c := &weather.Current{Name: city}
	c.Main.Temp = p.Temp
	return c, nil
}

func (p *fakeProvider) Forecast(ctx context.Context, city string) (*weather.Forecast, error) {
	p.forecastCalls.Add(1)
	p.enter()
	defer p.leave()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ForecastErr != nil {
		return nil, p.ForecastErr
	}
	f := &weather.Forecast{}
	f.City.Name = city
	return f, nil
}
