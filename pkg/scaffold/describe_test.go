package scaffold_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/scaffold"
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/testsupport"
)

func TestDescribeClassifiesColumns(t *testing.T) {
	tables := testsupport.LoadCatalog(t, filepath.Join("testdata", "coltypes.yaml"))

	type field struct {
		Width   int
		Control scaffold.Control
	}
	want := map[string]field{
		"id":         {11, scaffold.ControlNumber},
		"int11":      {11, scaffold.ControlNumber},
		"vc255":      {32, scaffold.ControlText},
		"vc50":       {50, scaffold.ControlText},
		"c255":       {32, scaffold.ControlText},
		"c50":        {50, scaffold.ControlText},
		"text":       {32, scaffold.ControlTextarea},
		"blob":       {80, scaffold.ControlTextarea},
		"fixnum":     {11, scaffold.ControlNumber},
		"bignum":     {20, scaffold.ControlNumber},
		"dblflt":     {16, scaffold.ControlText},
		"bigdec":     {10, scaffold.ControlText},
		"big6dec":    {6, scaffold.ControlText},
		"big10dec2":  {10, scaffold.ControlText},
		"justdate":   {10, scaffold.ControlDate},
		"datetime":   {17, scaffold.ControlDatetime},
		"justtime":   {17, scaffold.ControlDatetime},
		"timeonly":   {8, scaffold.ControlTime},
		"numeric":    {12, scaffold.ControlText},
		"booltrue":   {0, scaffold.ControlCheckbox},
		"boolfalse":  {0, scaffold.ControlCheckbox},
		"created_at": {17, scaffold.ControlDatetime},
		"updated_at": {17, scaffold.ControlDatetime},
	}

	got := make(map[string]field)
	for _, column := range tables["coltypes"].Columns {
		desc := scaffold.Describe(column)
		got[column.Name] = field{desc.Width, desc.Control}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestDescribeDefaultsUnknownTypesToText(t *testing.T) {
	cases := []schema.Column{
		{Name: "shape", DBType: "geometry"},
		{Name: "blank"},
		{Name: "broken", DBType: "varchar("},
	}
	for _, column := range cases {
		desc := scaffold.Describe(column)
		if desc.Control != scaffold.ControlText || desc.Width != 32 {
			t.Fatalf("%s: expected 32 wide text, got %+v", column.Name, desc)
		}
	}
}

func TestDescribeKeepsDeclaredLogicalType(t *testing.T) {
	desc := scaffold.Describe(schema.Column{Name: "flag", Type: schema.TypeBoolean, DBType: "integer"})
	if desc.Control != scaffold.ControlCheckbox {
		t.Fatalf("expected checkbox from declared type, got %+v", desc)
	}
}
