package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/client/models"
)

// Response is the normalized outcome of a backend call.
// Data is nil for 204 replies.
type Response struct {
	OK     bool
	Status int
	Data   json.RawMessage
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL (e.g. http://host:8080/api).
// A zero timeout leaves requests unbounded; tokens may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Request sends body (JSON-encoded when non-nil) to endpoint and normalizes
// the reply. Any reply other than 204 must be valid JSON.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, ok, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	out := &Response{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
	}
	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: status %d: body is not JSON", ErrInvalidResponse, resp.StatusCode)
	}
	out.Data = data

	return out, nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// call performs the request and decodes a successful body into dst.
func (c *HTTPClient) call(ctx context.Context, method, endpoint string, body, dst any) error {
	resp, err := c.Request(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if !resp.OK {
		apiErr := &APIError{Status: resp.Status}
		var env envelope
		if json.Unmarshal(resp.Data, &env) == nil {
			apiErr.Message = env.Message
		}
		return apiErr
	}
	if dst == nil || resp.Data == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.call(ctx, http.MethodPost, "/register", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.call(ctx, http.MethodPost, "/login", models.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login reply without token", ErrInvalidResponse)
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.call(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) ListCrops(ctx context.Context) ([]models.Crop, error) {
	var out struct {
		Crops []models.Crop `json:"crops"`
	}
	if err := c.call(ctx, http.MethodGet, "/crops", nil, &out); err != nil {
		return nil, err
	}
	return out.Crops, nil
}

func (c *HTTPClient) CreateCrop(ctx context.Context, req models.CropRequest) (*models.Crop, error) {
	var out struct {
		Crop models.Crop `json:"crop"`
	}
	if err := c.call(ctx, http.MethodPost, "/crops", req, &out); err != nil {
		return nil, err
	}
	return &out.Crop, nil
}

func (c *HTTPClient) DeleteCrop(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/crops/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/health", nil, nil)
}
