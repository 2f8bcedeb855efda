package forms

import (
	"maps"
	"strings"

	"github.com/goliatone/go-formkit/pkg/markup"
)

// wrapFunc renders fn inside a wrapper element, or inline when the wrapper
// is empty for the current arrangement.
type wrapFunc func(fn func(*markup.Builder))

// Form emits labelled controls for a data object into its own builder.
// A Form is built once per render and is not safe for concurrent use.
type Form struct {
	data    any
	cfg     config
	g       *markup.Builder
	errors  ErrorMap
	err     error
	built   bool
	wrapper struct {
		table, paragraph, label, input, hidden wrapFunc
	}
}

// New returns a form bound to data, which may be nil.
func New(data any, opts ...Option) *Form {
	cfg := config{
		arrangement: ArrangementParagraph,
		classes:     DefaultClasses(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	f := &Form{
		data:   data,
		cfg:    cfg,
		g:      markup.New(),
		errors: make(ErrorMap),
	}
	f.arrange()
	return f
}

func (f *Form) arrange() {
	inline := func(fn func(*markup.Builder)) { fn(f.g) }
	f.wrapper.table, f.wrapper.paragraph = inline, inline
	f.wrapper.label, f.wrapper.input, f.wrapper.hidden = inline, inline, inline

	switch f.cfg.arrangement {
	case ArrangementTable:
		f.wrapper.table = f.wrapWith("table", "")
		f.wrapper.paragraph = f.wrapWith("tr", f.cfg.classes.Field)
		f.wrapper.label = f.wrapWith("th", "")
		f.wrapper.input = f.wrapWith("td", "")
	case ArrangementParagraph:
		f.wrapper.paragraph = f.wrapWith("p", f.cfg.classes.Field)
	}
}

func (f *Form) wrapWith(tag, class string) wrapFunc {
	emit := f.g.Method(tag)
	return func(fn func(*markup.Builder)) {
		if class != "" {
			emit(markup.A("class", class), fn)
			return
		}
		emit(fn)
	}
}

// Arrangement reports the layout in use.
func (f *Form) Arrangement() Arrangement {
	return f.cfg.arrangement
}

// Build merges errs into the form's pending errors, opens the <form>
// element and runs fn inside the arrangement's outer wrapper. It returns the
// first field error recorded so far.
func (f *Form) Build(errs ErrorMap, fn func(*Form)) error {
	for field, message := range errs {
		f.errors[field] = message
	}

	f.g.Tag("form", f.cfg.attrs, func(*markup.Builder) {
		if fn == nil {
			return
		}
		f.wrapper.table(func(*markup.Builder) { fn(f) })
	})
	f.built = true
	return f.err
}

// Err returns the first error recorded by a field call.
func (f *Form) Err() error {
	return f.err
}

func (f *Form) fail(err error) error {
	if err != nil && f.err == nil {
		f.err = err
	}
	return err
}

// PendingErrors returns the errors that no field has displayed yet.
func (f *Form) PendingErrors() ErrorMap {
	return maps.Clone(f.errors)
}

// takeError removes and returns the pending error for name.
func (f *Form) takeError(name string) (string, bool) {
	message, ok := f.errors[name]
	if ok {
		delete(f.errors, name)
	}
	return message, ok && message != ""
}

// idFor derives the id of a field: "{form name}_{field}", or "form_{field}"
// for unnamed forms, lowercased with dashes turned into underscores.
func (f *Form) idFor(name string) (string, error) {
	if name == "" {
		return "", ErrMissingName
	}
	prefix := "form"
	if formName, ok := f.cfg.attrs.Get("name"); ok && formName != "" {
		prefix = formName
	}
	return strings.ReplaceAll(strings.ToLower(prefix+"_"+name), "-", "_"), nil
}

// G exposes the underlying builder for markup the field API does not cover.
func (f *Form) G() *markup.Builder {
	return f.g
}

// Legend emits a <legend>.
func (f *Form) Legend(text string) {
	f.g.Tag("legend", text)
}

// Fieldset emits a <fieldset> and runs fn inside it.
func (f *Form) Fieldset(fn func(*Form)) {
	f.g.Tag("fieldset", func(*markup.Builder) {
		if fn != nil {
			fn(f)
		}
	})
}

// String returns the compact markup, or "" before Build.
func (f *Form) String() string {
	if !f.built {
		return ""
	}
	return f.g.String()
}

// PrettyString returns the indented markup, or "" before Build.
func (f *Form) PrettyString() string {
	if !f.built {
		return ""
	}
	return f.g.PrettyString()
}
