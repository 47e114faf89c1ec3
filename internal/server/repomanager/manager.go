// Package repomanager opens the contacts store named by a DSN and runs its
// schema migrations.
//
// Supported DSNs:
//
//	memory                     in-process map, lost on exit
//	sqlite:<path>              SQLite file via modernc.org/sqlite
//	sqlite::memory:            private in-memory SQLite database
//	postgres://... | postgresql://...
//	                           PostgreSQL via pgx
package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/server/contacts"
)

var ErrUnsupportedDSN = errors.New("unsupported store DSN")

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Contacts() contacts.Repository
	Close() error
}

// New picks the manager for dsn, opens it and brings the schema up to date.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch {
	case dsn == "" || dsn == "memory":
		m = NewInMemoryRepositoryManager()
	case strings.HasPrefix(dsn, "sqlite:"):
		m, err = NewSQLiteRepositoryManager(strings.TrimPrefix(dsn, "sqlite:"))
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		m, err = NewPostgresRepositoryManager(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return m, nil
}
