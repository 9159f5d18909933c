package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/client/notify"
	"github.com/dmitrijs2005/alertaverde/internal/client/services"
	"github.com/dmitrijs2005/alertaverde/internal/common"
)

var errCancelled = errors.New("cancelled")

func (a *App) Crops(ctx context.Context) error {
	crops, err := a.crops.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list crops", "error", err)
		a.notifier.Show(errorMessage(err, "Error loading crops."), notify.Error)
		return err
	}
	renderCrops(a.out, crops, a.now())
	return nil
}

// AddCrop prompts for the crop fields. An empty planting date means today.
func (a *App) AddCrop(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Crop name", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Crop type (e.g. Corn, Beans)", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Planting date YYYY-MM-DD (empty for today)", a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = a.now().Format(models.DateLayout)
	}
	rawArea, err := getSimpleText(a.reader, "Area in hectares", a.out)
	if err != nil {
		return err
	}

	area, err := parseArea(rawArea)
	if err != nil {
		a.notifier.Show("Area must be a positive number.", notify.Error)
		return err
	}

	req := models.CropRequest{
		Name:         Sanitize(name),
		Type:         Sanitize(kind),
		PlantingDate: date,
		Area:         area,
	}

	crops, err := a.crops.Create(ctx, req)
	if err != nil && !errors.Is(err, services.ErrReloadFailed) {
		a.log.Warn(ctx, "create crop", "error", err)
		a.notifier.Show(errorMessage(err, "Error adding crop."), notify.Error)
		return err
	}

	a.notifier.Show("Crop added successfully!", notify.Success)
	a.showReloaded(ctx, crops, err)
	return nil
}

// DeleteCrop asks for confirmation before removing a crop. Declining sends
// nothing to the backend.
func (a *App) DeleteCrop(ctx context.Context, id string) error {
	if id == "" {
		var err error
		if id, err = getSimpleText(a.reader, "Crop ID", a.out); err != nil {
			return err
		}
	}

	ok, err := getConfirmation(a.reader, "Are you sure you want to delete this crop?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return errCancelled
	}

	crops, err := a.crops.Delete(ctx, id)
	if err != nil && !errors.Is(err, services.ErrReloadFailed) {
		a.log.Warn(ctx, "delete crop", "id", id, "error", err)
		a.notifier.Show(errorMessage(err, "Error removing crop."), notify.Error)
		return err
	}

	a.notifier.Show("Crop removed!", notify.Success)
	a.showReloaded(ctx, crops, err)
	return nil
}

// showReloaded renders the list fetched after a mutation, or reports that
// the fetch failed. Either way the mutation itself succeeded.
func (a *App) showReloaded(ctx context.Context, crops []models.Crop, reloadErr error) {
	if reloadErr != nil {
		a.log.Error(ctx, "list crops", "error", reloadErr)
		a.notifier.Show("Error loading crops.", notify.Error)
		return
	}
	renderCrops(a.out, crops, a.now())
}

// parseArea accepts a decimal comma as well as a point.
func parseArea(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, common.Validation("area", "area must be a positive number")
	}
	return v, nil
}
