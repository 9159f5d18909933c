package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/alertaverde/internal/client/client"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/common"
)

func TestCrops_EmptyState(t *testing.T) {
	a := newTestApp(t, "")

	require.NoError(t, a.Crops(context.Background()))
	assert.Contains(t, a.buf.String(), "No crops registered.")
}

func TestCrops_RendersDaysSincePlanting(t *testing.T) {
	a := newTestApp(t, "")
	a.cropsF.list = []models.Crop{{ID: "1", Name: "Milho", Type: "Corn", PlantingDate: "2024-06-01", Area: 2.5}}

	require.NoError(t, a.Crops(context.Background()))
	out := a.buf.String()
	assert.Contains(t, out, "Milho")
	assert.Contains(t, out, "2.50 ha")
	assert.Contains(t, out, "9\n")
}

func TestCrops_ErrorNotified(t *testing.T) {
	a := newTestApp(t, "")
	a.cropsF.err = client.ErrUnavailable

	require.Error(t, a.Crops(context.Background()))
	assert.Contains(t, a.notes.messages(), "Error connecting to the server.")
}

func TestAddCrop(t *testing.T) {
	a := newTestApp(t, "Milho\nCorn\n\n1,5\n")

	require.NoError(t, a.AddCrop(context.Background()))
	require.Len(t, a.cropsF.created, 1)

	got := a.cropsF.created[0]
	assert.Equal(t, "2024-06-10", got.PlantingDate)
	assert.Equal(t, 1.5, got.Area)
	assert.Contains(t, a.notes.messages(), "Crop added successfully!")
	assert.Contains(t, a.buf.String(), "Milho")
}

func TestAddCrop_BadArea(t *testing.T) {
	a := newTestApp(t, "Milho\nCorn\n2024-01-01\n-3\n")

	require.ErrorIs(t, a.AddCrop(context.Background()), common.ErrorValidation)
	assert.Empty(t, a.cropsF.created)
}

func TestAddCrop_ValidationMessage(t *testing.T) {
	a := newTestApp(t, "Milho\nCorn\n2024-01-01\n2\n")
	a.cropsF.err = common.Validation("plantingDate", "plantingDate must be a date in YYYY-MM-DD format")

	require.Error(t, a.AddCrop(context.Background()))
	assert.Contains(t, a.notes.messages(), "plantingDate must be a date in YYYY-MM-DD format")
}

func TestDeleteCrop_DeclineSendsNothing(t *testing.T) {
	a := newTestApp(t, "n\n")

	err := a.DeleteCrop(context.Background(), "abc")
	require.ErrorIs(t, err, errCancelled)
	assert.Empty(t, a.cropsF.deleted)
}

func TestDeleteCrop_ConfirmSendsOnce(t *testing.T) {
	a := newTestApp(t, "y\n")

	require.NoError(t, a.DeleteCrop(context.Background(), "abc"))
	assert.Equal(t, []string{"abc"}, a.cropsF.deleted)
	assert.Contains(t, a.notes.messages(), "Crop removed!")
}

func TestDeleteCrop_PromptsForID(t *testing.T) {
	a := newTestApp(t, "xyz\nyes\n")

	require.NoError(t, a.DeleteCrop(context.Background(), ""))
	assert.Equal(t, []string{"xyz"}, a.cropsF.deleted)
}

func TestParseArea(t *testing.T) {
	v, err := parseArea(" 2,75 ")
	require.NoError(t, err)
	assert.Equal(t, 2.75, v)

	_, err = parseArea("abc")
	assert.Error(t, err)
	_, err = parseArea("0")
	assert.Error(t, err)
}

func TestCropMutations_ReloadFailureStillReportsSuccess(t *testing.T) {
	reloadErr := fmt.Errorf("%w: %w", services.ErrReloadFailed, errors.New("list boom"))

	t.Run("add", func(t *testing.T) {
		a := newTestApp(t, "Milho\nCorn\n2024-01-01\n2\n")
		a.cropsF.err = reloadErr

		require.NoError(t, a.AddCrop(context.Background()))
		assert.Len(t, a.cropsF.created, 1)
		assert.Equal(t, []string{"Crop added successfully!", "Error loading crops."}, a.notes.messages())
	})

	t.Run("delete", func(t *testing.T) {
		a := newTestApp(t, "y\n")
		a.cropsF.err = reloadErr

		require.NoError(t, a.DeleteCrop(context.Background(), "abc"))
		assert.Equal(t, []string{"abc"}, a.cropsF.deleted)
		assert.Equal(t, []string{"Crop removed!", "Error loading crops."}, a.notes.messages())
	})
}
