package crops

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/alertaverde/internal/common"
	"github.com/dmitrijs2005/alertaverde/internal/dbx"
	"github.com/dmitrijs2005/alertaverde/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, crop *models.Crop) (*models.Crop, error) {
	query :=
		`INSERT INTO crops (id, user_id, name, type, planting_date, area)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		crop.ID, crop.UserID, crop.Name, crop.Type, crop.PlantingDate, crop.Area).Scan(&crop.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return crop, nil
}

// ListByUser returns the user's crops, most recently planted first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Crop, error) {
	query :=
		`SELECT id, user_id, name, type, planting_date, area, created_at FROM crops
		 WHERE user_id = $1
		 ORDER BY planting_date DESC, created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Crop, 0)
	for rows.Next() {
		var c models.Crop
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.PlantingDate, &c.Area, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query :=
		`DELETE FROM crops
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
