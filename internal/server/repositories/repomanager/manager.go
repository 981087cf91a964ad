package repomanager

import (
	"context"
	"database/sql"

	"github.com/striderapp/tokenkeeper/internal/dbx"
	"github.com/striderapp/tokenkeeper/internal/server/repositories/refreshtokens"
	"github.com/striderapp/tokenkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a live handle (either
// the shared pool or an open transaction) and exposes a schema
// migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
