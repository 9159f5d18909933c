package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/server/models"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/alertaverde/internal/validatex"
)

const dateLayout = "2006-01-02"

// CropService manages the crops of a single authenticated user per call.
type CropService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCropService(db *sql.DB, m repomanager.RepositoryManager) *CropService {
	return &CropService{db: db, repomanager: m}
}

func cropView(c models.Crop) CropView {
	return CropView{
		ID:           c.ID,
		Name:         c.Name,
		Type:         c.Type,
		PlantingDate: c.PlantingDate.Format(dateLayout),
		Area:         c.Area,
	}
}

func (s *CropService) List(ctx context.Context, userID string) ([]CropView, error) {
	list, err := s.repomanager.Crops(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]CropView, 0, len(list))
	for _, c := range list {
		out = append(out, cropView(c))
	}
	return out, nil
}

func (s *CropService) Create(ctx context.Context, userID string, req CropRequest) (*CropView, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	req.PlantingDate = strings.TrimSpace(req.PlantingDate)
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	planted, err := time.Parse(dateLayout, req.PlantingDate)
	if err != nil {
		return nil, common.Validation("plantingDate", "plantingDate must be a date in YYYY-MM-DD format")
	}

	c, err := s.repomanager.Crops(s.db).Create(ctx, &models.Crop{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Type:         req.Type,
		PlantingDate: planted,
		Area:         req.Area,
	})
	if err != nil {
		return nil, err
	}
	v := cropView(*c)
	return &v, nil
}

// Delete removes a crop owned by userID. Unknown IDs, malformed IDs and other
// users' crops all yield NotFound.
func (s *CropService) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.NotFound("crop", id)
	}
	err := s.repomanager.Crops(s.db).Delete(ctx, userID, id)
	if errors.Is(err, common.ErrorNotFound) {
		return common.NotFound("crop", id)
	}
	return err
}
