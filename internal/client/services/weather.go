package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/alertaverde/internal/client/weather"
	"github.com/dmitrijs2005/alertaverde/internal/logging"
)

var ErrEmptyCity = errors.New("city is required")

// WeatherResult is what the CLI renders. When Stale is set the snapshot
// came from an expired cache entry and Err holds the fetch failure.
type WeatherResult struct {
	City      string
	Snapshot  weather.Snapshot
	FromCache bool
	Stale     bool
	Err       error
}

type WeatherService interface {
	Load(ctx context.Context, city string) (*WeatherResult, error)
	ClearCache()
}

type weatherService struct {
	provider weather.Provider
	cache    *weather.Cache
	log      logging.Logger
}

func NewWeatherService(p weather.Provider, cache *weather.Cache, log logging.Logger) WeatherService {
	return &weatherService{provider: p, cache: cache, log: log}
}

// Load returns a fresh cached snapshot, or fetches current conditions and
// the forecast concurrently. Both must succeed. When fetching fails a
// previously cached snapshot of any age is returned as stale; otherwise
// the fetch error is returned.
func (s *weatherService) Load(ctx context.Context, city string) (*WeatherResult, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	if snap, ok := s.cache.Get(city); ok {
		s.log.Debug(ctx, "weather cache hit", "city", city)
		return &WeatherResult{City: city, Snapshot: snap, FromCache: true}, nil
	}

	snap, err := s.fetch(ctx, city)
	if err == nil {
		return &WeatherResult{City: city, Snapshot: s.cache.Set(city, snap)}, nil
	}

	s.log.Warn(ctx, "weather fetch failed", "city", city, "error", err)

	if last, ok := s.cache.Last(city); ok {
		return &WeatherResult{City: city, Snapshot: last, FromCache: true, Stale: true, Err: err}, nil
	}
	return nil, err
}

func (s *weatherService) fetch(ctx context.Context, city string) (weather.Snapshot, error) {
	var (
		current  *weather.Current
		forecast *weather.Forecast
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.provider.Current(gctx, city)
		if err != nil {
			return fmt.Errorf("current weather: %w", err)
		}
		current = c
		return nil
	})
	g.Go(func() error {
		f, err := s.provider.Forecast(gctx, city)
		if err != nil {
			return fmt.Errorf("forecast: %w", err)
		}
		forecast = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return weather.Snapshot{}, err
	}
	return weather.Snapshot{Current: current, Forecast: forecast}, nil
}

func (s *weatherService) ClearCache() {
	s.cache.Clear()
}
