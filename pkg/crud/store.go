package crud

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("crud: row not found")

// Store reads and writes the rows of one table.
type Store interface {
	Select(ctx context.Context, columns []string) ([]Row, error)
	Find(ctx context.Context, id string) (Row, error)
	Insert(ctx context.Context, row Row) error
	Update(ctx context.Context, id string, row Row) error
	Delete(ctx context.Context, id string) error
}

// Placeholder renders the n-th (1-based) bind parameter.
type Placeholder func(n int) string

// QuestionPlaceholder is the "?" style used by SQLite and MySQL.
func QuestionPlaceholder(int) string { return "?" }

// DollarPlaceholder is the "$n" style used by PostgreSQL.
func DollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

// SQLStore implements Store with plain SQL over database/sql.
type SQLStore struct {
	db          *sql.DB
	table       string
	primaryKey  string
	placeholder Placeholder
}

// StoreOption configures an SQLStore.
type StoreOption func(*SQLStore)

// WithPrimaryKey sets the id column; the default is "id".
func WithPrimaryKey(column string) StoreOption {
	return func(s *SQLStore) {
		if column != "" {
			s.primaryKey = column
		}
	}
}

// WithPlaceholder sets the bind parameter style.
func WithPlaceholder(p Placeholder) StoreOption {
	return func(s *SQLStore) {
		if p != nil {
			s.placeholder = p
		}
	}
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore returns a Store for table.
func NewSQLStore(db *sql.DB, table string, opts ...StoreOption) *SQLStore {
	s := &SQLStore{
		db:          db,
		table:       table,
		primaryKey:  "id",
		placeholder: QuestionPlaceholder,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Select returns every row, projected to columns when given, ordered by the
// primary key. Each row also carries the primary key.
func (s *SQLStore) Select(ctx context.Context, columns []string) ([]Row, error) {
	projection := "*"
	if len(columns) > 0 {
		cols := columns
		if !Contains(cols, s.primaryKey) {
			cols = append([]string{s.primaryKey}, cols...)
		}
		projection = quoteAll(cols)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", projection, quote(s.table), quote(s.primaryKey))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("crud: select %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("crud: select %s: %w", s.table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("crud: select %s: %w", s.table, err)
	}
	return out, nil
}

// Find returns the row whose primary key equals id.
func (s *SQLStore) Find(ctx context.Context, id string) (Row, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = %s", quote(s.table), quote(s.primaryKey), s.placeholder(1))
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("crud: find %s %q: %w", s.table, id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("crud: find %s %q: %w", s.table, id, err)
		}
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, s.table, id)
	}
	row, err := scanRow(rows)
	if err != nil {
		return nil, fmt.Errorf("crud: find %s %q: %w", s.table, id, err)
	}
	return row, nil
}

// Insert writes row as a new record. Columns are written in name order.
func (s *SQLStore) Insert(ctx context.Context, row Row) error {
	columns := sortedKeys(row)
	if len(columns) == 0 {
		query := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES", quote(s.table))
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("crud: insert %s: %w", s.table, err)
		}
		return nil
	}

	marks := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		marks[i] = s.placeholder(i + 1)
		args[i] = row[column]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quote(s.table), quoteAll(columns), strings.Join(marks, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("crud: insert %s: %w", s.table, err)
	}
	return nil
}

// Update writes the columns present in row to the record identified by id.
func (s *SQLStore) Update(ctx context.Context, id string, row Row) error {
	columns := sortedKeys(row)
	if len(columns) == 0 {
		return nil
	}

	sets := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		sets[i] = quote(column) + " = " + s.placeholder(i+1)
		args = append(args, row[column])
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		quote(s.table), strings.Join(sets, ", "), quote(s.primaryKey), s.placeholder(len(args)))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("crud: update %s %q: %w", s.table, id, err)
	}
	return expectOne(res, s.table, id)
}

// Delete removes the record identified by id.
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", quote(s.table), quote(s.primaryKey), s.placeholder(1))
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("crud: delete %s %q: %w", s.table, id, err)
	}
	return expectOne(res, s.table, id)
}

func expectOne(res sql.Result, table, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %q", ErrNotFound, table, id)
	}
	return nil
}

func scanRow(rows *sql.Rows) (Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	targets := make([]any, len(columns))
	for i := range values {
		targets[i] = &values[i]
	}
	if err := rows.Scan(targets...); err != nil {
		return nil, err
	}

	row := make(Row, len(columns))
	for i, column := range columns {
		if raw, ok := values[i].([]byte); ok {
			row[column] = string(raw)
			continue
		}
		row[column] = values[i]
	}
	return row, nil
}

func sortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func quoteAll(idents []string) string {
	quoted := make([]string, len(idents))
	for i, ident := range idents {
		quoted[i] = quote(ident)
	}
	return strings.Join(quoted, ", ")
}
