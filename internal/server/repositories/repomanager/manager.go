// Package repomanager wires repository constructors to a concrete database
// backend and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"diary/internal/dbx"
	"diary/internal/server/repositories/diaries"
	"diary/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against *sql.DB or an open transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Diaries(db dbx.DBTX) diaries.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
