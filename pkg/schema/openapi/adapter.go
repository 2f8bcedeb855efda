// Package openapi derives table catalogs from the component schemas of an
// OpenAPI 3 document. Each object schema becomes a table named after the
// pluralised, underscored schema name ("LineItem" gives "line_items").
//
// Extensions tune the mapping:
//
//	x-table:       table name override (schema level)
//	x-db-type:     declared SQL type override (property level)
//	x-primary-key: marks a primary key column (property level)
//
// Without x-primary-key a property named "id" is the primary key.
package openapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/inflect"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formkit/pkg/schema"
)

const (
	extTable      = "x-table"
	extDBType     = "x-db-type"
	extPrimaryKey = "x-primary-key"
)

// Adapter implements schema.Adapter for OpenAPI 3 documents.
type Adapter struct {
	validate bool
}

// Option configures the Adapter.
type Option func(*Adapter)

// WithValidation validates the document before conversion.
func WithValidation() Option {
	return func(a *Adapter) {
		a.validate = true
	}
}

var _ schema.Adapter = (*Adapter)(nil)

// New returns an OpenAPI adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

func (a *Adapter) Name() string { return "openapi" }

// Detect looks for a top-level "openapi" version key.
func (a *Adapter) Detect(doc schema.Document) bool {
	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(doc.Raw(), &probe); err != nil {
		return false
	}
	_, ok := probe["openapi"]
	return ok
}

// Tables converts the component schemas of doc.
func (a *Adapter) Tables(ctx context.Context, doc schema.Document) (schema.Tables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if a.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document declares no component schemas")
	}

	order, err := propertyOrder(raw)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	tables := schema.Tables{}
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil || !ref.Value.Type.Is(openapi3.TypeObject) {
			continue
		}
		table := convertTable(name, ref.Value, order[name])
		if _, dup := tables[table.Name]; dup {
			return nil, fmt.Errorf("openapi: table %q produced by more than one schema", table.Name)
		}
		tables.Add(table)
	}
	if len(tables) == 0 {
		return nil, errors.New("openapi: no object schemas to convert")
	}
	return tables, nil
}

// TableName returns the table a component schema maps to by default.
func TableName(schemaName string) string {
	return inflect.Pluralize(inflect.Underscore(schemaName))
}

func convertTable(name string, src *openapi3.Schema, order []string) schema.Table {
	table := schema.Table{Name: TableName(name)}
	if override, ok := src.Extensions[extTable].(string); ok && override != "" {
		table.Name = override
	}

	required := make(map[string]bool, len(src.Required))
	for _, field := range src.Required {
		required[field] = true
	}

	explicitPK := false
	for _, prop := range src.Properties {
		if prop != nil && prop.Value != nil && isTrue(prop.Value.Extensions[extPrimaryKey]) {
			explicitPK = true
			break
		}
	}

	for _, field := range orderedProperties(src.Properties, order) {
		prop := src.Properties[field].Value
		column := schema.Column{
			Name:     field,
			DBType:   dbType(prop),
			Nullable: prop.Nullable || !required[field],
		}
		if explicitPK {
			column.PrimaryKey = isTrue(prop.Extensions[extPrimaryKey])
		} else {
			column.PrimaryKey = field == "id"
		}
		if column.PrimaryKey {
			column.Nullable = false
		}
		table.Columns = append(table.Columns, column)
	}
	return table
}

// orderedProperties lists property names in document order; names the raw
// document did not reveal follow in lexical order.
func orderedProperties(props openapi3.Schemas, order []string) []string {
	out := make([]string, 0, len(props))
	seen := make(map[string]bool, len(props))
	for _, name := range order {
		if ref, ok := props[name]; ok && ref != nil && ref.Value != nil && !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	var rest []string
	for name, ref := range props {
		if !seen[name] && ref != nil && ref.Value != nil {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func dbType(prop *openapi3.Schema) string {
	if override, ok := prop.Extensions[extDBType].(string); ok && override != "" {
		return override
	}
	switch {
	case prop.Type.Is(openapi3.TypeInteger):
		if prop.Format == "int64" {
			return "bigint"
		}
		return "integer"
	case prop.Type.Is(openapi3.TypeNumber):
		if prop.Format == "float" || prop.Format == "double" {
			return "double"
		}
		return "decimal"
	case prop.Type.Is(openapi3.TypeBoolean):
		return "boolean"
	case prop.Type.Is(openapi3.TypeString):
		switch prop.Format {
		case "date":
			return "date"
		case "date-time":
			return "datetime"
		case "time":
			return "time"
		case "binary", "byte":
			return "blob"
		}
		if prop.MaxLength != nil {
			return fmt.Sprintf("varchar(%d)", *prop.MaxLength)
		}
		return "varchar"
	}
	return ""
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// propertyOrder recovers the declaration order of each component schema's
// properties, which the decoded document does not keep.
func propertyOrder(raw []byte) (map[string][]string, error) {
	var doc struct {
		Components struct {
			Schemas yaml.Node `yaml:"schemas"`
		} `yaml:"components"`
	}
	if err := yaml.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("openapi: read property order: %w", err)
	}

	order := make(map[string][]string)
	schemas := doc.Components.Schemas
	if schemas.Kind != yaml.MappingNode {
		return order, nil
	}
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		name := schemas.Content[i].Value
		props := mappingValue(schemas.Content[i+1], "properties")
		if props == nil {
			continue
		}
		for j := 0; j+1 < len(props.Content); j += 2 {
			order[name] = append(order[name], props.Content[j].Value)
		}
	}
	return order, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}
