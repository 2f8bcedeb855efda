package scaffold

type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenPlaceholder
	tokenEOL
	tokenFields
)

type placeholder string

const (
	phPackage       placeholder = "package"
	phImportPath    placeholder = "import_path"
	phTimeImport    placeholder = "time_import"
	phModel         placeholder = "model"
	phModelCamel    placeholder = "model_camel"
	phModelsCamel   placeholder = "models_camel"
	phVar           placeholder = "var"
	phTable         placeholder = "table"
	phPrimaryKey    placeholder = "primary_key"
	phColumns       placeholder = "columns"
	phIndexColumns  placeholder = "index_columns"
	phNewColumns    placeholder = "new_columns"
	phShowColumns   placeholder = "show_columns"
	phEditColumns   placeholder = "edit_columns"
	phStampNew      placeholder = "stamp_new"
	phStampEdit     placeholder = "stamp_edit"
	phStampEditView placeholder = "stamp_edit_view"
)

type fieldMode string

const (
	modeNew  fieldMode = "new"
	modeShow fieldMode = "show"
	modeEdit fieldMode = "edit"
)

type token struct {
	kind tokenKind
	text string
	ph   placeholder
	mode fieldMode
}

var eol = token{kind: tokenEOL}

// line turns strings into literals, placeholders into substitutions and a
// fieldMode into a per-column expansion, then ends the line.
func line(parts ...any) []token {
	out := make([]token, 0, len(parts)+1)
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			out = append(out, token{kind: tokenLiteral, text: v})
		case placeholder:
			out = append(out, token{kind: tokenPlaceholder, ph: v})
		case fieldMode:
			out = append(out, token{kind: tokenFields, mode: v})
		}
	}
	return append(out, eol)
}

func lines(groups ...[]token) []token {
	var out []token
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

var controllerTemplate = lines(
	line("// Code generated by formkit-scaffold. DO NOT EDIT."),
	line(),
	line("package ", phPackage),
	line(),
	line("import ("),
	line("\t\"database/sql\""),
	line("\t\"net/http\""),
	line("\t\"net/url\""),
	line(phTimeImport),
	line(),
	line("\t\"github.com/go-chi/chi/v5\""),
	line(),
	line("\t\"", phImportPath, "/pkg/crud\""),
	line("\t\"", phImportPath, "/pkg/markup\""),
	line(")"),
	line(),
	line("var ("),
	line("\t", phVar, "Columns = ", phColumns),
	line("\t", phVar, "IndexColumns = ", phIndexColumns),
	line("\t", phVar, "NewColumns = ", phNewColumns),
	line("\t", phVar, "ShowColumns = ", phShowColumns),
	line("\t", phVar, "EditColumns = ", phEditColumns),
	line(")"),
	line(),
	line("// ", phModelCamel, "Controller serves development CRUD pages for the ", phTable, " table."),
	line("// It performs no access control."),
	line("type ", phModelCamel, "Controller struct {"),
	line("\tstore crud.Store"),
	line("}"),
	line(),
	line("// New", phModelCamel, "Controller returns a controller backed by store."),
	line("func New", phModelCamel, "Controller(store crud.Store) *", phModelCamel, "Controller {"),
	line("\treturn &", phModelCamel, "Controller{store: store}"),
	line("}"),
	line(),
	line("// New", phModelCamel, "Store returns a crud.Store over the ", phTable, " table."),
	line("func New", phModelCamel, "Store(db *sql.DB, opts ...crud.StoreOption) crud.Store {"),
	line("\topts = append([]crud.StoreOption{crud.WithPrimaryKey(", phPrimaryKey, ")}, opts...)"),
	line("\treturn crud.NewSQLStore(db, \"", phTable, "\", opts...)"),
	line("}"),
	line(),
	line("// Columns lists every column of the ", phTable, " table."),
	line("func (c *", phModelCamel, "Controller) Columns() []string {"),
	line("\treturn append([]string(nil), ", phVar, "Columns...)"),
	line("}"),
	line(),
	line("// Routes mounts the controller actions under /", phModel, "."),
	line("func (c *", phModelCamel, "Controller) Routes(r chi.Router) {"),
	line("\tr.Route(\"/", phModel, "\", func(r chi.Router) {"),
	line("\t\tr.Get(\"/\", c.Index)"),
	line("\t\tr.Get(\"/index\", c.Index)"),
	line("\t\tr.Get(\"/new\", c.New)"),
	line("\t\tr.Get(\"/show\", c.Show)"),
	line("\t\tr.Get(\"/edit\", c.Edit)"),
	line("\t\tr.Post(\"/save_new\", c.SaveNew)"),
	line("\t\tr.Post(\"/save_show\", c.SaveShow)"),
	line("\t\tr.Post(\"/save_edit\", c.SaveEdit)"),
	line("\t})"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) Index(w http.ResponseWriter, r *http.Request) {"),
	line("\trows, err := c.store.Select(r.Context(), ", phVar, "IndexColumns)"),
	line("\tif err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line("\ttitle := \"List of ", phModelsCamel, "\""),
	line("\tg := markup.New()"),
	line("\tg.Tag(\"scaffolding\", func(g *markup.Builder) {"),
	line("\t\tg.Tag(\"h3\", title)"),
	line("\t\tg.P(func(g *markup.Builder) {"),
	line("\t\t\tg.Tag(\"a\", \"new\", markup.A(\"href\", \"/", phModel, "/new\"))"),
	line("\t\t})"),
	line("\t\tg.Table(func(g *markup.Builder) {"),
	line("\t\t\tg.Tr(func(g *markup.Builder) {"),
	line("\t\t\t\tfor _, col := range ", phVar, "IndexColumns {"),
	line("\t\t\t\t\tg.Td(func(g *markup.Builder) {"),
	line("\t\t\t\t\t\tg.Tag(\"strong\", crud.Titleize(col))"),
	line("\t\t\t\t\t})"),
	line("\t\t\t\t}"),
	line("\t\t\t})"),
	line("\t\t\tfor _, row := range rows {"),
	line("\t\t\t\tid := url.QueryEscape(row.String(", phPrimaryKey, "))"),
	line("\t\t\t\tg.Tr(func(g *markup.Builder) {"),
	line("\t\t\t\t\tfor _, col := range ", phVar, "IndexColumns {"),
	line("\t\t\t\t\t\tg.Td(row.String(col))"),
	line("\t\t\t\t\t}"),
	line("\t\t\t\t\tg.Td(func(g *markup.Builder) {"),
	line("\t\t\t\t\t\tg.Tag(\"a\", \"show\", markup.A(\"href\", \"/", phModel, "/show?id=\"+id))"),
	line("\t\t\t\t\t\tg.Append(\" | \")"),
	line("\t\t\t\t\t\tg.Tag(\"a\", \"edit\", markup.A(\"href\", \"/", phModel, "/edit?id=\"+id))"),
	line("\t\t\t\t\t\tg.Append(\" | \")"),
	line("\t\t\t\t\t\tg.Tag(\"a\", \"delete\", markup.A(\"href\", \"/", phModel, "/show?id=\"+id+\"&delete\"))"),
	line("\t\t\t\t\t})"),
	line("\t\t\t\t})"),
	line("\t\t\t}"),
	line("\t\t})"),
	line("\t})"),
	line("\tcrud.Write(w, g)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) New(w http.ResponseWriter, r *http.Request) {"),
	line("\ttitle := \"New ", phModelCamel, "\""),
	line("\trow := crud.Row{}"),
	line("\tg := markup.New()"),
	line("\tg.Tag(\"scaffolding\", func(g *markup.Builder) {"),
	line("\t\tg.Tag(\"h3\", title)"),
	line("\t\tg.Tag(\"form\", markup.A(\"method\", \"post\", \"action\", \"/", phModel, "/save_new\"), func(g *markup.Builder) {"),
	line("\t\t\tg.Table(func(g *markup.Builder) {"),
	line("\t\t\t\t", phVar, "NewFields(g, row)"),
	line("\t\t\t})"),
	line("\t\t\tg.Tag(\"br\")"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Back\"))"),
	line("\t\t\tg.Append(\"&nbsp;\")"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Save\"))"),
	line("\t\t})"),
	line("\t})"),
	line("\tcrud.Write(w, g)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) Show(w http.ResponseWriter, r *http.Request) {"),
	line("\ttitle := \"Show ", phModelCamel, "\""),
	line("\tquery := r.URL.Query()"),
	line("\trow, err := c.store.Find(r.Context(), query.Get(\"id\"))"),
	line("\tif err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line("\tg := markup.New()"),
	line("\tg.Tag(\"scaffolding\", func(g *markup.Builder) {"),
	line("\t\tg.Tag(\"h3\", title)"),
	line("\t\tg.Tag(\"form\", markup.A(\"method\", \"post\", \"action\", \"/", phModel, "/save_show\"), func(g *markup.Builder) {"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"hidden\", \"name\", \"id\", \"value\", row.String(", phPrimaryKey, ")))"),
	line("\t\t\tg.Table(func(g *markup.Builder) {"),
	line("\t\t\t\t", phVar, "ShowFields(g, row)"),
	line("\t\t\t})"),
	line("\t\t\tg.Tag(\"br\")"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Back\"))"),
	line("\t\t\tif query.Has(\"delete\") {"),
	line("\t\t\t\tg.Append(\"&nbsp;\")"),
	line("\t\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Delete\"))"),
	line("\t\t\t}"),
	line("\t\t})"),
	line("\t})"),
	line("\tcrud.Write(w, g)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) Edit(w http.ResponseWriter, r *http.Request) {"),
	line("\ttitle := \"Edit ", phModelCamel, "\""),
	line("\trow, err := c.store.Find(r.Context(), r.URL.Query().Get(\"id\"))"),
	line("\tif err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line(phStampEditView),
	line("\tg := markup.New()"),
	line("\tg.Tag(\"scaffolding\", func(g *markup.Builder) {"),
	line("\t\tg.Tag(\"h3\", title)"),
	line("\t\tg.Tag(\"form\", markup.A(\"method\", \"post\", \"action\", \"/", phModel, "/save_edit\"), func(g *markup.Builder) {"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"hidden\", \"name\", \"id\", \"value\", row.String(", phPrimaryKey, ")))"),
	line("\t\t\tg.Table(func(g *markup.Builder) {"),
	line("\t\t\t\t", phVar, "EditFields(g, row)"),
	line("\t\t\t})"),
	line("\t\t\tg.Tag(\"br\")"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Back\"))"),
	line("\t\t\tg.Append(\"&nbsp;\")"),
	line("\t\t\tg.Tag(\"input\", markup.A(\"type\", \"submit\", \"id\", \"goto\", \"name\", \"goto\", \"value\", \"Save\"))"),
	line("\t\t})"),
	line("\t})"),
	line("\tcrud.Write(w, g)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) SaveNew(w http.ResponseWriter, r *http.Request) {"),
	line("\tif err := r.ParseForm(); err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line("\tif r.PostForm.Get(\"goto\") == \"Save\" {"),
	line("\t\trow := crud.Row{}"),
	line("\t\tcrud.SetFields(row, r.PostForm, ", phVar, "NewColumns)"),
	line("\t\tdelete(row, ", phPrimaryKey, ")"),
	line(phStampNew),
	line("\t\tif err := c.store.Insert(r.Context(), row); err != nil {"),
	line("\t\t\tcrud.Fail(w, err)"),
	line("\t\t\treturn"),
	line("\t\t}"),
	line("\t}"),
	line("\thttp.Redirect(w, r, \"/", phModel, "/index\", http.StatusSeeOther)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) SaveShow(w http.ResponseWriter, r *http.Request) {"),
	line("\tif err := r.ParseForm(); err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line("\tif r.PostForm.Get(\"goto\") == \"Delete\" {"),
	line("\t\tif err := c.store.Delete(r.Context(), r.PostForm.Get(\"id\")); err != nil {"),
	line("\t\t\tcrud.Fail(w, err)"),
	line("\t\t\treturn"),
	line("\t\t}"),
	line("\t}"),
	line("\thttp.Redirect(w, r, \"/", phModel, "/index\", http.StatusSeeOther)"),
	line("}"),
	line(),
	line("func (c *", phModelCamel, "Controller) SaveEdit(w http.ResponseWriter, r *http.Request) {"),
	line("\tif err := r.ParseForm(); err != nil {"),
	line("\t\tcrud.Fail(w, err)"),
	line("\t\treturn"),
	line("\t}"),
	line("\tif r.PostForm.Get(\"goto\") == \"Save\" {"),
	line("\t\trow := crud.Row{}"),
	line("\t\tcrud.SetFields(row, r.PostForm, ", phVar, "EditColumns)"),
	line("\t\tdelete(row, ", phPrimaryKey, ")"),
	line(phStampEdit),
	line("\t\tif err := c.store.Update(r.Context(), r.PostForm.Get(\"id\"), row); err != nil {"),
	line("\t\t\tcrud.Fail(w, err)"),
	line("\t\t\treturn"),
	line("\t\t}"),
	line("\t}"),
	line("\thttp.Redirect(w, r, \"/", phModel, "/index\", http.StatusSeeOther)"),
	line("}"),
	line(),
	line("func ", phVar, "NewFields(g *markup.Builder, row crud.Row) {"),
	line(modeNew, "}"),
	line(),
	line("func ", phVar, "ShowFields(g *markup.Builder, row crud.Row) {"),
	line(modeShow, "}"),
	line(),
	line("func ", phVar, "EditFields(g *markup.Builder, row crud.Row) {"),
	line(modeEdit, "}"),
)
