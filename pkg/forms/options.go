package forms

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/markup"
)

// Arrangement selects how fields are wrapped.
type Arrangement string

const (
	// ArrangementParagraph wraps each field in a <p>.
	ArrangementParagraph Arrangement = "paragraph"
	// ArrangementTable wraps the form in a <table>, each field in a <tr> with
	// <th> label and <td> input cells.
	ArrangementTable Arrangement = "table"
	// ArrangementNone emits fields without wrappers.
	ArrangementNone Arrangement = "none"
)

// ParseArrangement normalises value, falling back to ArrangementParagraph
// for anything it does not recognise.
func ParseArrangement(value string) Arrangement {
	switch Arrangement(strings.ToLower(strings.TrimSpace(value))) {
	case ArrangementTable:
		return ArrangementTable
	case ArrangementNone:
		return ArrangementNone
	default:
		return ArrangementParagraph
	}
}

// Option configures a Form.
type Option func(*config)

type config struct {
	attrs       markup.Attrs
	arrangement Arrangement
	classes     Classes
}

// WithMethod sets the form method attribute.
func WithMethod(method string) Option {
	return WithAttr("method", method)
}

// WithAction sets the form action attribute.
func WithAction(action string) Option {
	return WithAttr("action", action)
}

// WithName sets the form name attribute. The name also prefixes generated
// field ids.
func WithName(name string) Option {
	return WithAttr("name", name)
}

// WithAttr sets an arbitrary attribute on the <form> element.
func WithAttr(key, value string) Option {
	return func(cfg *config) {
		if key == "" {
			return
		}
		cfg.attrs.Set(key, value)
	}
}

// WithAttrs sets several <form> attributes, keeping their order.
func WithAttrs(attrs markup.Attrs) Option {
	return func(cfg *config) {
		cfg.attrs = cfg.attrs.Merge(attrs)
	}
}

// WithArrangement picks the layout by name; see ParseArrangement.
func WithArrangement(arrangement string) Option {
	return func(cfg *config) {
		cfg.arrangement = ParseArrangement(arrangement)
	}
}

// WithClasses overrides the non-empty fields of the default classes.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.merge(classes)
	}
}

// WithTheme derives classes from a go-theme selection.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.merge(ClassesFromTheme(selection))
	}
}

// FieldOption configures a single field call.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	attrs      markup.Attrs
	id         string
	value      any
	hasValue   bool
	values     any
	hasValues  bool
	checked    any
	hasChecked bool
	showValue  bool
	showLabel  bool
	spanClass  string
	multiple   bool
	size       int
}

func newFieldConfig(opts []FieldOption) fieldConfig {
	cfg := fieldConfig{showValue: true, showLabel: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Attr sets an attribute on the control element.
func Attr(key, value string) FieldOption {
	return func(cfg *fieldConfig) {
		if key == "" {
			return
		}
		cfg.attrs.Set(key, value)
	}
}

// Attrs sets several control attributes.
func Attrs(attrs markup.Attrs) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.attrs = cfg.attrs.Merge(attrs)
	}
}

// ID overrides the generated id. For choice groups it only changes the
// label's for attribute; each control keeps its indexed id.
func ID(id string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.id = id
	}
}

// Value sets an explicit value, taking precedence over the data object.
func Value(value any) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.value = value
		cfg.hasValue = true
	}
}

// Values sets the options of a choice group or select: a sequence, Choices,
// or a map (label→value for choice groups, value→label for selects).
func Values(values any) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.values = values
		cfg.hasValues = true
	}
}

// Checked marks choice group values as checked; a scalar or a sequence.
func Checked(checked any) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.checked = checked
		cfg.hasChecked = present(checked)
	}
}

// Selected marks select options as selected; a scalar or a sequence.
func Selected(selected any) FieldOption {
	return Checked(selected)
}

// ShowValue toggles the value text rendered after each choice control.
func ShowValue(show bool) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.showValue = show
	}
}

// ShowLabel toggles the group label of a choice group.
func ShowLabel(show bool) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.showLabel = show
	}
}

// SpanClass wraps the control in a <span> with class. Choice groups always
// wrap each control and use this to replace the themed default.
func SpanClass(class string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.spanClass = class
	}
}

// Multiple turns a select into a multi-select named "{name}[]".
func Multiple() FieldOption {
	return func(cfg *fieldConfig) {
		cfg.multiple = true
	}
}

// Size sets the visible rows of a select.
func Size(size int) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.size = size
	}
}
