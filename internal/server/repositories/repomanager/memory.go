package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/alertaverde/internal/dbx"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/crops"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out the same process-local stores
// whatever handle it is given; there is no schema to migrate. Data is lost
// on restart.
type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
	crops *crops.MemoryRepository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		crops: crops.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Crops(dbx.DBTX) crops.Repository {
	return m.crops
}
