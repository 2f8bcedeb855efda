package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// catalogDocument is the YAML layout read by ParseYAML:
//
//	tables:
//	  - name: coltypes
//	    columns:
//	      - {name: id, db_type: integer, primary_key: true}
//	      - {name: name, db_type: varchar(32)}
type catalogDocument struct {
	Tables []Table `yaml:"tables"`
}

// ParseYAML decodes a catalog document. JSON input is accepted as well since
// it is valid YAML. Column types missing from the document are inferred from
// db_type.
func ParseYAML(raw []byte) (Tables, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode catalog: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, errors.New("schema: catalog declares no tables")
	}

	tables := make(Tables, len(doc.Tables))
	for _, table := range doc.Tables {
		if table.Name == "" {
			return nil, errors.New("schema: catalog table without name")
		}
		if _, dup := tables[table.Name]; dup {
			return nil, fmt.Errorf("schema: table %q declared twice", table.Name)
		}
		for i, column := range table.Columns {
			if column.Name == "" {
				return nil, fmt.Errorf("schema: table %q column %d without name", table.Name, i)
			}
		}
		tables.Add(table)
	}
	return tables, nil
}

// YAMLAdapter reads catalogs written in the ParseYAML layout.
type YAMLAdapter struct{}

// NewYAMLAdapter returns the adapter for native catalog documents.
func NewYAMLAdapter() YAMLAdapter { return YAMLAdapter{} }

func (YAMLAdapter) Name() string { return "yaml" }

// Detect looks for a top-level "tables" key.
func (YAMLAdapter) Detect(doc Document) bool {
	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(doc.raw, &probe); err != nil {
		return false
	}
	_, ok := probe["tables"]
	return ok
}

func (YAMLAdapter) Tables(ctx context.Context, doc Document) (Tables, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseYAML(doc.raw)
}
