// Package sqlite reads table metadata from a live SQLite database using the
// pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-formkit/pkg/schema"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Catalog implements schema.Catalog over a SQLite connection.
type Catalog struct {
	db *sql.DB
}

var _ schema.Catalog = (*Catalog)(nil)

// New wraps an open database.
func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// Open opens dsn with the sqlite driver, limited to a single connection so
// in-memory databases are shared by every query.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Table implements schema.Catalog. Columns are returned in declaration order.
func (c *Catalog) Table(ctx context.Context, name string) (schema.Table, error) {
	var count int
	err := c.db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`, name,
	).Scan(&count)
	if err != nil {
		return schema.Table{}, fmt.Errorf("sqlite: lookup table %q: %w", name, err)
	}
	if count == 0 {
		return schema.Table{}, fmt.Errorf("%w: %q", schema.ErrNoSuchTable, name)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT name, type, "notnull", pk FROM pragma_table_info(?) ORDER BY cid`, name)
	if err != nil {
		return schema.Table{}, fmt.Errorf("sqlite: table info %q: %w", name, err)
	}
	defer rows.Close()

	table := schema.Table{Name: name}
	for rows.Next() {
		var (
			column  schema.Column
			notNull bool
			pk      int
		)
		if err := rows.Scan(&column.Name, &column.DBType, &notNull, &pk); err != nil {
			return schema.Table{}, fmt.Errorf("sqlite: scan column of %q: %w", name, err)
		}
		column.PrimaryKey = pk > 0
		column.Nullable = !notNull && !column.PrimaryKey
		column.Type = schema.InferType(column.DBType)
		table.Columns = append(table.Columns, column)
	}
	if err := rows.Err(); err != nil {
		return schema.Table{}, fmt.Errorf("sqlite: read columns of %q: %w", name, err)
	}
	return table, nil
}

// TableNames lists user tables in name order.
func (c *Catalog) TableNames(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite: scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
