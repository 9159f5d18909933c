package users

import (
	"context"

	"github.com/dmitrijs2005/alertaverde/internal/server/models"
)

// Repository stores user accounts. Lookups of unknown users return
// common.ErrorNotFound; a duplicate e-mail returns common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
