package formkit_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formkit"
	"github.com/goliatone/go-formkit/pkg/flash"
	"github.com/goliatone/go-formkit/pkg/forms"
	"github.com/goliatone/go-formkit/pkg/scaffold"
	"github.com/goliatone/go-formkit/pkg/schema"
)

type account struct {
	Username string
	Password string
}

func TestFormForShowsFlashedErrors(t *testing.T) {
	store := flash.NewMemory()
	ctx := flash.WithStore(context.Background(), store)

	if !formkit.RegisterError(ctx, "username", "is taken") {
		t.Fatalf("expected the flash store to accept the error")
	}

	form, err := formkit.FormFor(ctx, account{Username: "mrfoo"}, func(f *forms.Form) {
		f.Text("Username", "username")
	}, forms.WithMethod("post"))
	if err != nil {
		t.Fatalf("form for: %v", err)
	}
	out := form.String()
	if !strings.Contains(out, "is taken") {
		t.Fatalf("expected flashed error in %q", out)
	}
	if !strings.Contains(out, `value="mrfoo"`) {
		t.Fatalf("expected data value in %q", out)
	}
}

func TestRegisterErrorWithoutStore(t *testing.T) {
	if formkit.RegisterError(context.Background(), "username", "is taken") {
		t.Fatalf("expected RegisterError to report a missing store")
	}
	errs := formkit.Errors(context.Background())
	errs.Register("username", "is taken")
	if errs.All()["username"] != "is taken" {
		t.Fatalf("expected local accumulator to keep the error")
	}
}

func TestLoadCatalogDetectsFormats(t *testing.T) {
	dir := t.TempDir()
	native := filepath.Join(dir, "catalog.yaml")
	spec := filepath.Join(dir, "api.yaml")
	mustWrite(t, native, "tables:\n  - name: birds\n    columns:\n      - {name: id, db_type: integer, primary_key: true}\n")
	mustWrite(t, spec, `openapi: 3.0.3
info: {title: birds, version: "1"}
paths: {}
components:
  schemas:
    Bird:
      type: object
      properties:
        id: {type: integer}
        name: {type: string, maxLength: 40}
`)

	for _, path := range []string{native, spec} {
		tables, err := formkit.LoadCatalog(context.Background(), schema.SourceFromFile(path))
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if _, err := tables.Table(context.Background(), "birds"); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
	}

	if got := formkit.NewSchemaRegistry().List(); len(got) != 2 {
		t.Fatalf("expected two default adapters, got %v", got)
	}
}

func TestBuildControllerFacade(t *testing.T) {
	tables := schema.Tables{}
	tables.Add(schema.Table{Name: "birds", Columns: []schema.Column{
		{Name: "id", DBType: "integer", PrimaryKey: true},
		{Name: "name", DBType: "varchar(32)"},
	}})

	src, err := formkit.BuildController(context.Background(), tables, scaffold.Request{Model: "bird"}, scaffold.WithPackage("admin"))
	if err != nil {
		t.Fatalf("build controller: %v", err)
	}
	if !strings.HasPrefix(src, "// Code generated by formkit-scaffold. DO NOT EDIT.") || !strings.Contains(src, "package admin") {
		t.Fatalf("unexpected source header:\n%s", src)
	}

	_, err = formkit.BuildController(context.Background(), tables, scaffold.Request{Model: "parrot"})
	if !errors.Is(err, schema.ErrNoSuchTable) {
		t.Fatalf("expected ErrNoSuchTable, got %v", err)
	}
}

func mustWrite(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
