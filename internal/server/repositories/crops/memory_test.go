package crops

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/server/models"
)

func TestMemoryRepository_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, c := range []models.Crop{
		{ID: "a", UserID: "u1", Name: "old", PlantingDate: d},
		{ID: "b", UserID: "u1", Name: "new", PlantingDate: d.AddDate(0, 0, 10)},
		{ID: "c", UserID: "u2", Name: "other", PlantingDate: d},
	} {
		_, err := r.Create(ctx, &c)
		require.NoError(t, err)
	}

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Name)

	assert.ErrorIs(t, r.Delete(ctx, "u1", "c"), common.ErrorNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "u1", "zzz"), common.ErrorNotFound)
	require.NoError(t, r.Delete(ctx, "u1", "a"))

	list, err = r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := r.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestMemoryRepository_DuplicateID(t *testing.T) {
	r := NewMemoryRepository()
	_, err := r.Create(context.Background(), &models.Crop{ID: "a"})
	require.NoError(t, err)

	_, err = r.Create(context.Background(), &models.Crop{ID: "a"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}
