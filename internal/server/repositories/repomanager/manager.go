package repomanager

import (
	"context"
	"database/sql"

	"github.com/okarpov/datafreezer/internal/dbx"
	"github.com/okarpov/datafreezer/internal/server/repositories/actions"
	"github.com/okarpov/datafreezer/internal/server/repositories/files"
	"github.com/okarpov/datafreezer/internal/server/repositories/sessions"
	"github.com/okarpov/datafreezer/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repositories inside one transaction by handing
// each the same *sql.Tx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Files(db dbx.DBTX) files.Repository
	Actions(db dbx.DBTX) actions.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
