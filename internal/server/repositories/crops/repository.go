// Package crops stores planting records. Every operation is scoped to the
// owning user; a crop owned by someone else behaves as if it did not exist.
package crops

import (
	"context"

	"github.com/dmitrijs2005/alertaverde/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, crop *models.Crop) (*models.Crop, error)
	ListByUser(ctx context.Context, userID string) ([]models.Crop, error)
	Delete(ctx context.Context, userID, id string) error
}
