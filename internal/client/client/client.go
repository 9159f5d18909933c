package client

import (
	"context"

	"github.com/dmitrijs2005/alertaverde/internal/client/models"
)

// Client is the backend contract the services depend on.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	ListCrops(ctx context.Context) ([]models.Crop, error)
	CreateCrop(ctx context.Context, req models.CropRequest) (*models.Crop, error)
	DeleteCrop(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token to attach, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool, error)
}
