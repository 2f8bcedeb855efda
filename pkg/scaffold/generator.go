package scaffold

import (
	"context"
	"errors"
	"fmt"
	"go/format"
	gotoken "go/token"
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-formkit/pkg/crud"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// ErrNoSuchColumn is returned when a requested column is not in the table.
var ErrNoSuchColumn = errors.New("scaffold: no such column")

const (
	defaultPackage    = "controllers"
	defaultImportPath = "github.com/goliatone/go-formkit"

	timestampCreated = "created_at"
	timestampUpdated = "updated_at"
)

// Generator emits CRUD controller source for tables of a catalog.
type Generator struct {
	catalog    schema.Catalog
	pkg        string
	importPath string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackage sets the package clause of generated files.
func WithPackage(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.pkg = name
		}
	}
}

// WithImportPath sets the module path generated code imports pkg/crud and
// pkg/markup from.
func WithImportPath(path string) Option {
	return func(g *Generator) {
		if path != "" {
			g.importPath = strings.TrimSuffix(path, "/")
		}
	}
}

// New returns a Generator reading table metadata from catalog.
func New(catalog schema.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog:    catalog,
		pkg:        defaultPackage,
		importPath: defaultImportPath,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Request selects the model and the columns each action shows. A nil column
// list means every column of the table, in declaration order.
type Request struct {
	// Model is the singular, lower case model name, e.g. "coltype".
	Model string
	// Table overrides the pluralised model as the table name.
	Table string

	IndexColumns []string
	NewColumns   []string
	ShowColumns  []string
	EditColumns  []string
}

// TableName returns the table the request reads.
func (r Request) TableName() string {
	if r.Table != "" {
		return r.Table
	}
	return inflect.Pluralize(r.Model)
}

// BuildController reads the request's table once and returns gofmt'ed Go
// source for its controller. Unknown tables and columns fail before any
// source is emitted.
func (g *Generator) BuildController(ctx context.Context, req Request) (string, error) {
	if g.catalog == nil {
		return "", errors.New("scaffold: catalog is required")
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		return "", errors.New("scaffold: model is required")
	}
	if !gotoken.IsIdentifier(inflect.Camelize(model)) {
		return "", fmt.Errorf("scaffold: model %q does not form a Go identifier", model)
	}
	if !gotoken.IsIdentifier(g.pkg) {
		return "", fmt.Errorf("scaffold: invalid package name %q", g.pkg)
	}
	req.Model = model

	table, err := g.catalog.Table(ctx, req.TableName())
	if err != nil {
		return "", fmt.Errorf("scaffold: %w", err)
	}
	if len(table.Columns) == 0 {
		return "", fmt.Errorf("scaffold: table %q has no columns", table.Name)
	}

	e := &emitter{
		gen:   g,
		model: model,
		table: table,
		descs: make(map[string]FieldDescriptor, len(table.Columns)),
	}
	for _, column := range table.Columns {
		e.descs[column.Name] = Describe(column)
	}
	e.columns = table.ColumnNames()
	for _, list := range []struct {
		dst *[]string
		src []string
	}{
		{&e.index, req.IndexColumns},
		{&e.create, req.NewColumns},
		{&e.show, req.ShowColumns},
		{&e.edit, req.EditColumns},
	} {
		if list.src == nil {
			*list.dst = e.columns
			continue
		}
		for _, name := range list.src {
			if !table.Has(name) {
				return "", fmt.Errorf("%w: %q in table %q", ErrNoSuchColumn, name, table.Name)
			}
		}
		*list.dst = list.src
	}
	e.pk = "id"
	if pk, ok := table.PrimaryKey(); ok {
		e.pk = pk.Name
	}

	var out strings.Builder
	e.walk(&out, controllerTemplate)

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return "", fmt.Errorf("scaffold: format generated source: %w", err)
	}
	return string(src), nil
}

// emitter holds the precomputed substitutions for one controller.
type emitter struct {
	gen     *Generator
	model   string
	table   schema.Table
	descs   map[string]FieldDescriptor
	pk      string
	columns []string
	index   []string
	create  []string
	show    []string
	edit    []string
}

func (e *emitter) walk(out *strings.Builder, tokens []token) {
	for _, tok := range tokens {
		switch tok.kind {
		case tokenLiteral:
			out.WriteString(tok.text)
		case tokenEOL:
			out.WriteByte('\n')
		case tokenPlaceholder:
			out.WriteString(e.substitute(tok.ph))
		case tokenFields:
			for _, name := range e.fieldColumns(tok.mode) {
				e.walk(out, fieldTokens(tok.mode, e.descs[name]))
			}
		}
	}
}

func (e *emitter) fieldColumns(mode fieldMode) []string {
	switch mode {
	case modeNew:
		return e.create
	case modeShow:
		return e.show
	default:
		return e.edit
	}
}

func (e *emitter) substitute(ph placeholder) string {
	switch ph {
	case phPackage:
		return e.gen.pkg
	case phImportPath:
		return e.gen.importPath
	case phTimeImport:
		if e.table.Has(timestampCreated) || e.table.Has(timestampUpdated) {
			return "\t\"time\""
		}
		return ""
	case phModel:
		return e.model
	case phModelCamel:
		return inflect.Camelize(e.model)
	case phModelsCamel:
		return inflect.Camelize(inflect.Pluralize(e.model))
	case phVar:
		return inflect.CamelizeDownFirst(e.model)
	case phTable:
		return e.table.Name
	case phPrimaryKey:
		return strconv.Quote(e.pk)
	case phColumns:
		return listLiteral(e.columns)
	case phIndexColumns:
		return listLiteral(e.index)
	case phNewColumns:
		return listLiteral(e.create)
	case phShowColumns:
		return listLiteral(e.show)
	case phEditColumns:
		return listLiteral(e.edit)
	case phStampNew:
		return e.stamps(timestampCreated, timestampUpdated)
	case phStampEdit, phStampEditView:
		return e.stamps(timestampUpdated)
	}
	return ""
}

// stamps emits assignments of the current time for the given columns that
// exist in the table.
func (e *emitter) stamps(columns ...string) string {
	var present []string
	for _, column := range columns {
		if e.table.Has(column) {
			present = append(present, column)
		}
	}
	if len(present) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\tnow := time.Now()\n")
	for _, column := range present {
		fmt.Fprintf(&b, "\trow[%s] = now\n", strconv.Quote(column))
	}
	return b.String()
}

func listLiteral(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// fieldTokens renders the table row editing one column.
func fieldTokens(mode fieldMode, desc FieldDescriptor) []token {
	name := strconv.Quote(desc.Name)
	id := strconv.Quote("form_" + desc.Name)
	width := strconv.Quote(strconv.Itoa(desc.Width))
	disabled := ""
	if mode == modeShow {
		disabled = `, "disabled", "disabled"`
	}

	block := lines(
		line("\tg.Tr(func(g *markup.Builder) {"),
		line("\t\tg.Td(func(g *markup.Builder) { g.Tag(\"strong\", ", strconv.Quote(crud.Humanize(desc.Name)), ") })"),
		line("\t\tg.Td(func(g *markup.Builder) {"),
	)

	input := func(kind, value string) []token {
		return line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"", kind, "\", \"name\", ", name,
			", \"value\", ", value, ", \"size\", ", width, ", \"id\", ", id, disabled, "))")
	}
	formatted := func(layout string) string {
		return "row.Format(" + name + ", " + strconv.Quote(layout) + ")"
	}

	switch desc.Control {
	case ControlCheckbox:
		block = lines(block,
			line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"hidden\", \"name\", ", name, ", \"value\", \"0\"))"),
			line("\t\t\topts := markup.A(\"type\", \"checkbox\", \"name\", ", name, ", \"id\", ", id, ", \"value\", \"1\"", disabled, ")"),
			line("\t\t\tif row.Bool(", name, ") {"),
			line("\t\t\t\topts.Set(\"checked\", \"checked\")"),
			line("\t\t\t}"),
			line("\t\t\tg.Tag(\"input\", opts)"),
		)
	case ControlNumber:
		block = lines(block, input("number", "row.String("+name+")"))
	case ControlDate:
		block = lines(block, input("text", formatted("2006-01-02")))
	case ControlDatetime:
		block = lines(block, input("text", formatted("2006-01-02 15:04:05")))
	case ControlTime:
		block = lines(block, input("text", formatted("15:04:05")))
	case ControlTextarea:
		block = lines(block,
			line("\t\t\tg.Tag(\"textarea\", row.String(", name, "), markup.A(\"name\", ", name,
				", \"rows\", \"5\", \"cols\", ", width, ", \"id\", ", id, disabled, "))"),
		)
	default:
		block = lines(block, input("text", "row.String("+name+")"))
	}

	return lines(block,
		line("\t\t})"),
		line("\t})"),
	)
}
