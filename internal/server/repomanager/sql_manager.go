package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contactbook/internal/server/contacts"
	"github.com/dmitrijs2005/contactbook/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager serves contacts from a database/sql connection pool.
type SQLRepositoryManager struct {
	db           *sql.DB
	gooseDialect string
	contacts     contacts.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens dsn with the pgx driver.
func NewPostgresRepositoryManager(dsn string) (*SQLRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return newSQLRepositoryManager(db, contacts.DialectPostgres, "pgx"), nil
}

// NewSQLiteRepositoryManager opens the SQLite database at path. A single
// connection is used so ":memory:" keeps one database and writers never
// contend for the file lock.
func NewSQLiteRepositoryManager(path string) (*SQLRepositoryManager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)
	return newSQLRepositoryManager(db, contacts.DialectSQLite, "sqlite3"), nil
}

func newSQLRepositoryManager(db *sql.DB, d contacts.Dialect, gooseDialect string) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:           db,
		gooseDialect: gooseDialect,
		contacts:     contacts.NewSQLRepository(db, d),
	}
}

func (m *SQLRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLRepositoryManager) Contacts() contacts.Repository {
	return m.contacts
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
