package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/alertaverde/internal/client/client"
	"github.com/dmitrijs2005/alertaverde/internal/client/models"
	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/validatex"
)

// ErrReloadFailed means a create or delete went through but the list could
// not be fetched afterwards. The mutation must not be retried.
var ErrReloadFailed = errors.New("crops saved but list reload failed")

// CropService manages the logged-in user's crops. Every mutation is
// followed by a full reload of the list, which is returned to the caller.
// A failed reload yields an error wrapping ErrReloadFailed.
type CropService interface {
	List(ctx context.Context) ([]models.Crop, error)
	Create(ctx context.Context, req models.CropRequest) ([]models.Crop, error)
	Delete(ctx context.Context, id string) ([]models.Crop, error)
}

type cropService struct {
	client client.Client
}

func NewCropService(c client.Client) CropService {
	return &cropService{client: c}
}

func (s *cropService) List(ctx context.Context) ([]models.Crop, error) {
	crops, err := s.client.ListCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	return crops, nil
}

func (s *cropService) Create(ctx context.Context, req models.CropRequest) ([]models.Crop, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.PlantingDate = strings.TrimSpace(req.PlantingDate)

	if err := validatex.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.client.CreateCrop(ctx, req); err != nil {
		return nil, fmt.Errorf("create crop: %w", err)
	}
	return s.reload(ctx)
}

func (s *cropService) Delete(ctx context.Context, id string) ([]models.Crop, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, common.Validation("id", "crop id is required")
	}
	if err := s.client.DeleteCrop(ctx, id); err != nil {
		return nil, fmt.Errorf("delete crop: %w", err)
	}
	return s.reload(ctx)
}

func (s *cropService) reload(ctx context.Context) ([]models.Crop, error) {
	crops, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return crops, nil
}
