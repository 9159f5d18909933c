package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const (
	currentPath  = "/weather"
	forecastPath = "/forecast"
)

// Provider is the upstream the weather service reads from.
type Provider interface {
	Current(ctx context.Context, city string) (*Current, error)
	Forecast(ctx context.Context, city string) (*Forecast, error)
}

type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Lang    string
	Units   string
	Client  *http.Client
	// BreakerTimeout is how long the breaker stays open before letting
	// requests through again. Zero means 30s.
	BreakerTimeout time.Duration
}

// halfOpenRequests lets a Current and a Forecast call through together while
// the breaker is half-open; a search always issues both.
const halfOpenRequests = 2

// OpenWeather calls the OpenWeatherMap 2.5 API. Requests are not retried;
// repeated transport or 5xx failures open the circuit breaker, and while it
// is open calls fail fast with ErrNetwork.
type OpenWeather struct {
	baseURL string
	apiKey  string
	lang    string
	units   string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

var _ Provider = (*OpenWeather)(nil)

func NewOpenWeather(cfg ProviderConfig) *OpenWeather {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}

	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: halfOpenRequests,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
		IsSuccessful: isBreakerSuccess,
	})

	return &OpenWeather{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		lang:    cfg.Lang,
		units:   cfg.Units,
		client:  client,
		circuit: cb,
	}
}

func (p *OpenWeather) Current(ctx context.Context, city string) (*Current, error) {
	var out Current
	if err := p.get(ctx, currentPath, city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *OpenWeather) Forecast(ctx context.Context, city string) (*Forecast, error) {
	var out Forecast
	if err := p.get(ctx, forecastPath, city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *OpenWeather) endpoint(path, city string) string {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", p.apiKey)
	if p.units != "" {
		values.Set("units", p.units)
	}
	if p.lang != "" {
		values.Set("lang", p.lang)
	}
	return p.baseURL + path + "?" + values.Encode()
}

var errServerError = errors.New("server error")

// isBreakerSuccess keeps caller cancellation from counting against the
// upstream: a request aborted because its sibling failed says nothing about
// the provider's health.
func isBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func (p *OpenWeather) get(ctx context.Context, path, city string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint(path, city), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	// Only transport failures and 5xx count against the breaker; a 404 for
	// a mistyped city is a valid answer.
	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, err := p.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return fmt.Errorf("%w: %v", ErrNetwork, err)
		case errors.Is(err, errServerError) && path == forecastPath:
			return fmt.Errorf("%w: %w: %v", ErrForecastFailed, ErrUpstream, err)
		case errors.Is(err, errServerError):
			return fmt.Errorf("%w: %v", ErrUpstream, err)
		default:
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return fmt.Errorf("%w: unexpected result type from circuit breaker", ErrUpstream)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrCityNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidAPIKey
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		detail := strings.TrimSpace(string(body))
		if path == forecastPath {
			return fmt.Errorf("%w: %w: status %d: %s", ErrForecastFailed, ErrUpstream, resp.StatusCode, detail)
		}
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, path, err)
	}
	return nil
}
