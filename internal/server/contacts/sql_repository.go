package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
)

// Dialect selects the bind-parameter syntax of the SQL repository.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectSQLite
)

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLRepository stores contacts in the contacts table. created_at is kept as
// unix nanoseconds so ordering is identical on every dialect.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) List(ctx context.Context) ([]Contact, error) {
	query :=
		`SELECT id, name, surname, phone_number, email, created_at
		 FROM contacts
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []Contact{}
	for rows.Next() {
		var (
			c       Contact
			created int64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.PhoneNumber, &c.Email, &created); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) Create(ctx context.Context, c *Contact) (*Contact, error) {
	query := r.dialect.rebind(
		`INSERT INTO contacts (id, name, surname, phone_number, email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Surname, c.PhoneNumber, c.Email, c.CreatedAt.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	out := *c
	return &out, nil
}

// Update rewrites the editable columns and reads back created_at in the same
// transaction.
func (r *SQLRepository) Update(ctx context.Context, c *Contact) (*Contact, error) {
	update := r.dialect.rebind(
		`UPDATE contacts
		 SET name = ?, surname = ?, phone_number = ?, email = ?
		 WHERE id = ?`)
	selectCreated := r.dialect.rebind(
		`SELECT created_at FROM contacts WHERE id = ?`)

	out := *c
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, update, c.Name, c.Surname, c.PhoneNumber, c.Email, c.ID)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if err := mustAffect(res); err != nil {
			return err
		}

		var created int64
		if err := tx.QueryRowContext(ctx, selectCreated, c.ID).Scan(&created); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}
		out.CreatedAt = time.Unix(0, created).UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := r.dialect.rebind(`DELETE FROM contacts WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return mustAffect(res)
}

func mustAffect(res sql.Result) error {
	err := dbx.RequireAffected(res)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dbx.ErrNoRowsAffected):
		return common.ErrorNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}
