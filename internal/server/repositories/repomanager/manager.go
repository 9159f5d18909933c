// Package repomanager vends repositories bound to a database handle or
// transaction, and runs schema migrations for the backing store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/alertaverde/internal/dbx"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/crops"
	"github.com/dmitrijs2005/alertaverde/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Crops(db dbx.DBTX) crops.Repository
}
