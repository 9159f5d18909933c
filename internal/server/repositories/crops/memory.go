package crops

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]models.Crop
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]models.Crop), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, crop *models.Crop) (*models.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[crop.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	crop.CreatedAt = r.now()
	r.items[crop.ID] = *crop
	return crop, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]models.Crop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Crop, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlantingDate.Equal(out[j].PlantingDate) {
			return out[i].PlantingDate.After(out[j].PlantingDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok || c.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
