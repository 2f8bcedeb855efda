package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNoSuchTable is returned by catalogs that do not know a table.
var ErrNoSuchTable = errors.New("schema: no such table")

// LogicalType classifies a column independently of the SQL dialect.
type LogicalType string

const (
	TypeUnknown  LogicalType = ""
	TypeInteger  LogicalType = "integer"
	TypeString   LogicalType = "string"
	TypeBlob     LogicalType = "blob"
	TypeFloat    LogicalType = "float"
	TypeDecimal  LogicalType = "decimal"
	TypeDate     LogicalType = "date"
	TypeDatetime LogicalType = "datetime"
	TypeTime     LogicalType = "time"
	TypeBoolean  LogicalType = "boolean"
)

// Column describes one table column. DBType keeps the declared type with its
// size arguments, e.g. "varchar(32)".
type Column struct {
	Name       string      `yaml:"name" json:"name"`
	Type       LogicalType `yaml:"type,omitempty" json:"type,omitempty"`
	DBType     string      `yaml:"db_type,omitempty" json:"db_type,omitempty"`
	PrimaryKey bool        `yaml:"primary_key,omitempty" json:"primary_key,omitempty"`
	Nullable   bool        `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

// Table is a named, ordered column list.
type Table struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Column looks up a column by name.
func (t Table) Column(name string) (Column, bool) {
	for _, column := range t.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return Column{}, false
}

// Has reports whether the table declares name.
func (t Table) Has(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, column := range t.Columns {
		names = append(names, column.Name)
	}
	return names
}

// PrimaryKey returns the first primary key column, falling back to a column
// named "id".
func (t Table) PrimaryKey() (Column, bool) {
	for _, column := range t.Columns {
		if column.PrimaryKey {
			return column, true
		}
	}
	return t.Column("id")
}

// Catalog resolves table metadata by name.
type Catalog interface {
	Table(ctx context.Context, name string) (Table, error)
}

// Tables is an in-memory Catalog keyed by table name.
type Tables map[string]Table

// Table implements Catalog.
func (ts Tables) Table(ctx context.Context, name string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	table, ok := ts[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrNoSuchTable, name)
	}
	return table, nil
}

// Names returns the sorted table names.
func (ts Tables) Names() []string {
	names := make([]string, 0, len(ts))
	for name := range ts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add stores table, filling missing column types from their declared type.
func (ts Tables) Add(table Table) {
	for i := range table.Columns {
		if table.Columns[i].Type == TypeUnknown {
			table.Columns[i].Type = InferType(table.Columns[i].DBType)
		}
	}
	ts[table.Name] = table
}
