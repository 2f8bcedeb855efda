package openapi_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/schema/openapi"
)

func loadFixture(t *testing.T) schema.Document {
	t.Helper()
	path := filepath.Join("testdata", "petstore.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return schema.MustNewDocument(schema.SourceFromFile(path), raw)
}

func TestAdapterConvertsComponentSchemas(t *testing.T) {
	tables, err := openapi.New().Tables(context.Background(), loadFixture(t))
	if err != nil {
		t.Fatalf("tables: %v", err)
	}

	if diff := cmp.Diff([]string{"coltypes", "ledger", "line_items"}, tables.Names()); diff != "" {
		t.Fatalf("table names mismatch (-want +got):\n%s", diff)
	}

	want := []schema.Column{
		{Name: "id", Type: schema.TypeInteger, DBType: "integer", PrimaryKey: true},
		{Name: "name", Type: schema.TypeString, DBType: "varchar(32)"},
		{Name: "notes", Type: schema.TypeString, DBType: "text", Nullable: true},
		{Name: "price", Type: schema.TypeDecimal, DBType: "decimal", Nullable: true},
		{Name: "ratio", Type: schema.TypeFloat, DBType: "double", Nullable: true},
		{Name: "born_on", Type: schema.TypeDate, DBType: "date", Nullable: true},
		{Name: "active", Type: schema.TypeBoolean, DBType: "boolean", Nullable: true},
		{Name: "created_at", Type: schema.TypeDatetime, DBType: "datetime", Nullable: true},
	}
	if diff := cmp.Diff(want, tables["coltypes"].Columns); diff != "" {
		t.Fatalf("coltypes columns mismatch (-want +got):\n%s", diff)
	}

	items := tables["line_items"]
	pk, ok := items.PrimaryKey()
	if !ok || pk.Name != "sku" {
		t.Fatalf("expected sku primary key from extension, got %+v", pk)
	}
	if quantity, _ := items.Column("quantity"); quantity.DBType != "bigint" || quantity.PrimaryKey {
		t.Fatalf("unexpected quantity column %+v", quantity)
	}

	if payload, _ := tables["ledger"].Column("payload"); payload.Type != schema.TypeBlob {
		t.Fatalf("expected binary string to map to blob, got %+v", payload)
	}
}

func TestAdapterDetect(t *testing.T) {
	adapter := openapi.New()
	if !adapter.Detect(loadFixture(t)) {
		t.Fatalf("expected OpenAPI document to be detected")
	}
	native := schema.MustNewDocument(schema.SourceInline(""), []byte("tables: []\n"))
	if adapter.Detect(native) {
		t.Fatalf("expected catalog document not to be detected")
	}
}

func TestAdapterThroughRegistry(t *testing.T) {
	registry := schema.NewRegistry()
	registry.MustRegister(openapi.New(openapi.WithValidation()))
	registry.MustRegister(schema.NewYAMLAdapter())

	tables, err := registry.Tables(context.Background(), loadFixture(t))
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	if _, err := tables.Table(context.Background(), "coltypes"); err != nil {
		t.Fatalf("expected coltypes table: %v", err)
	}
}

func TestAdapterRejectsDocumentsWithoutObjects(t *testing.T) {
	raw := []byte("openapi: 3.0.3\ninfo: {title: x, version: '1'}\npaths: {}\n")
	doc := schema.MustNewDocument(schema.SourceInline(""), raw)
	if _, err := openapi.New().Tables(context.Background(), doc); err == nil {
		t.Fatalf("expected document without components to fail")
	}
}

func TestTableName(t *testing.T) {
	cases := map[string]string{
		"Coltype":  "coltypes",
		"LineItem": "line_items",
		"person":   "people",
	}
	for in, want := range cases {
		if got := openapi.TableName(in); got != want {
			t.Fatalf("TableName(%q) = %q, want %q", in, got, want)
		}
	}
}
