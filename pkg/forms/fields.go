package forms

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-formkit/pkg/markup"
)

// Kind names a control family. Input kinds map to the HTML type attribute.
type Kind string

const (
	KindText     Kind = "text"
	KindPassword Kind = "password"
	KindEmail    Kind = "email"
	KindURL      Kind = "url"
	KindNumber   Kind = "number"
	KindRange    Kind = "range"
	KindColor    Kind = "color"
	KindFile     Kind = "file"
	KindDate     Kind = "date"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
	KindHidden   Kind = "hidden"
	KindSubmit   Kind = "submit"
	KindReset    Kind = "reset"
	KindButton   Kind = "button"
	KindImage    Kind = "image"
)

// Field emits a control of kind. Label is ignored by buttons and hidden
// fields; an empty label emits no <label>. Errors are also recorded on the
// form and returned by Build.
func (f *Form) Field(kind Kind, name, label string, opts ...FieldOption) error {
	cfg := newFieldConfig(opts)

	var err error
	switch kind {
	case KindText, KindPassword, KindEmail, KindURL, KindNumber,
		KindRange, KindColor, KindFile, KindDate:
		err = f.input(kind, name, label, cfg)
	case KindCheckbox, KindRadio:
		err = f.choice(kind, name, label, cfg)
	case KindSelect:
		err = f.selectField(name, label, cfg)
	case KindTextarea:
		err = f.textarea(name, label, cfg)
	case KindHidden:
		err = f.hidden(name, cfg)
	case KindSubmit, KindReset, KindButton, KindImage:
		f.button(kind, name, cfg)
	default:
		err = fmt.Errorf("%w: html5 type %q", ErrUnsupportedControl, kind)
	}
	return f.fail(err)
}

// Text emits a text input.
func (f *Form) Text(label, name string, opts ...FieldOption) {
	_ = f.Field(KindText, name, label, opts...)
}

// Password emits a password input.
func (f *Form) Password(label, name string, opts ...FieldOption) {
	_ = f.Field(KindPassword, name, label, opts...)
}

// Email emits an email input.
func (f *Form) Email(label, name string, opts ...FieldOption) {
	_ = f.Field(KindEmail, name, label, opts...)
}

// URL emits a url input.
func (f *Form) URL(label, name string, opts ...FieldOption) {
	_ = f.Field(KindURL, name, label, opts...)
}

// Number emits a number input.
func (f *Form) Number(label, name string, opts ...FieldOption) {
	_ = f.Field(KindNumber, name, label, opts...)
}

// Range emits a range input.
func (f *Form) Range(label, name string, opts ...FieldOption) {
	_ = f.Field(KindRange, name, label, opts...)
}

// Color emits a color input.
func (f *Form) Color(label, name string, opts ...FieldOption) {
	_ = f.Field(KindColor, name, label, opts...)
}

// File emits a file input.
func (f *Form) File(label, name string, opts ...FieldOption) {
	_ = f.Field(KindFile, name, label, opts...)
}

// Date emits a date input.
func (f *Form) Date(label, name string, opts ...FieldOption) {
	_ = f.Field(KindDate, name, label, opts...)
}

// Checkbox emits a checkbox group named "{name}[]".
func (f *Form) Checkbox(label, name string, opts ...FieldOption) {
	_ = f.Field(KindCheckbox, name, label, opts...)
}

// Radio emits a radio group named name.
func (f *Form) Radio(label, name string, opts ...FieldOption) {
	_ = f.Field(KindRadio, name, label, opts...)
}

// Select emits a <select>.
func (f *Form) Select(label, name string, opts ...FieldOption) {
	_ = f.Field(KindSelect, name, label, opts...)
}

// Dropdown emits a single-row <select>.
func (f *Form) Dropdown(label, name string, opts ...FieldOption) {
	_ = f.Field(KindSelect, name, label, append(opts, Size(1))...)
}

// Textarea emits a <textarea> holding the value as its body.
func (f *Form) Textarea(label, name string, opts ...FieldOption) {
	_ = f.Field(KindTextarea, name, label, opts...)
}

// Hidden emits a hidden input outside any field wrapper.
func (f *Form) Hidden(name string, opts ...FieldOption) {
	_ = f.Field(KindHidden, name, "", opts...)
}

// Submit emits a submit button. An empty value leaves the browser default.
func (f *Form) Submit(value string, opts ...FieldOption) {
	f.buttonWithValue(KindSubmit, value, opts)
}

// Reset emits a reset button.
func (f *Form) Reset(value string, opts ...FieldOption) {
	f.buttonWithValue(KindReset, value, opts)
}

// Button emits a plain button input.
func (f *Form) Button(value string, opts ...FieldOption) {
	f.buttonWithValue(KindButton, value, opts)
}

// Image emits an image submit button for src.
func (f *Form) Image(src string, opts ...FieldOption) {
	if src != "" {
		opts = append([]FieldOption{Attr("src", src)}, opts...)
	}
	_ = f.Field(KindImage, "", "", opts...)
}

func (f *Form) buttonWithValue(kind Kind, value string, opts []FieldOption) {
	if value != "" {
		opts = append([]FieldOption{Value(value)}, opts...)
	}
	_ = f.Field(kind, "", "", opts...)
}

func (f *Form) input(kind Kind, name, label string, cfg fieldConfig) error {
	id, err := f.fieldID(name, cfg)
	if err != nil {
		return fmt.Errorf("%w: %s field", err, kind)
	}

	attrs := cfg.attrs.Clone()
	attrs.Set("type", string(kind))
	attrs.SetDefault("name", name)
	attrs.SetDefault("id", id)
	if value, ok := f.fieldValue(name, cfg); ok {
		attrs.SetDefault("value", value)
	}
	if f.cfg.classes.Input != "" {
		attrs.SetDefault("class", f.cfg.classes.Input)
	}
	message, hasError := f.takeError(name)

	f.wrapper.paragraph(func(*markup.Builder) {
		f.label(label, attrs)
		f.wrapper.input(func(g *markup.Builder) {
			f.spanned(cfg.spanClass, func(g *markup.Builder) {
				g.Tag("input", attrs)
			})
		})
		if hasError {
			f.errorSpan(message)
		}
	})
	return nil
}

func (f *Form) textarea(name, label string, cfg fieldConfig) error {
	id, err := f.fieldID(name, cfg)
	if err != nil {
		return fmt.Errorf("%w: textarea field", err)
	}

	attrs := cfg.attrs.Clone()
	attrs.SetDefault("name", name)
	attrs.SetDefault("id", id)
	if f.cfg.classes.Input != "" {
		attrs.SetDefault("class", f.cfg.classes.Input)
	}
	body, _ := f.fieldValue(name, cfg)
	message, hasError := f.takeError(name)

	f.wrapper.paragraph(func(*markup.Builder) {
		f.label(label, attrs)
		f.wrapper.input(func(*markup.Builder) {
			f.spanned(cfg.spanClass, func(g *markup.Builder) {
				g.Tag("textarea", body, attrs)
			})
		})
		if hasError {
			f.errorSpan(message)
		}
	})
	return nil
}

func (f *Form) hidden(name string, cfg fieldConfig) error {
	if name == "" {
		return fmt.Errorf("%w: hidden field", ErrMissingName)
	}
	attrs := cfg.attrs.Clone()
	attrs.Set("type", string(KindHidden))
	attrs.SetDefault("name", name)
	if value, ok := f.fieldValue(name, cfg); ok {
		attrs.SetDefault("value", value)
	}
	if cfg.id != "" {
		attrs.Set("id", cfg.id)
	}

	f.wrapper.hidden(func(g *markup.Builder) {
		g.Tag("input", attrs)
	})
	return nil
}

func (f *Form) button(kind Kind, name string, cfg fieldConfig) {
	attrs := cfg.attrs.Clone()
	attrs.Set("type", string(kind))
	if name != "" {
		attrs.SetDefault("name", name)
	}
	if cfg.hasValue {
		attrs.SetDefault("value", stringify(cfg.value))
	}
	if cfg.id != "" {
		attrs.Set("id", cfg.id)
	}

	f.wrapper.paragraph(func(*markup.Builder) {
		f.wrapper.input(func(g *markup.Builder) {
			g.Tag("input", attrs)
		})
	})
}

func (f *Form) choice(kind Kind, name, label string, cfg fieldConfig) error {
	base, err := f.idFor(name)
	if err != nil {
		return fmt.Errorf("%w: %s field", err, kind)
	}

	values, checked := f.resolveOptions(name, cfg, labelToValue)
	spanClass := cfg.spanClass
	if spanClass == "" {
		spanClass = f.cfg.classes.Checkbox
		if kind == KindRadio {
			spanClass = f.cfg.classes.Radio
		}
	}
	controlName := name
	if kind == KindCheckbox {
		controlName = name + "[]"
	}
	labelFor := base + "_0"
	if cfg.id != "" {
		labelFor = cfg.id
	}
	message, hasError := f.takeError(name)

	f.wrapper.paragraph(func(*markup.Builder) {
		if cfg.showLabel {
			f.label(label, markup.A("id", labelFor))
		}
		f.wrapper.input(func(g *markup.Builder) {
			for index, option := range values {
				attrs := cfg.attrs.Clone()
				attrs.Set("type", string(kind))
				attrs.Set("name", controlName)
				attrs.Set("id", base+"_"+strconv.Itoa(index))
				if _, ok := checked[option.Value]; ok {
					attrs.Set("checked", "checked")
				}
				attrs.Set("value", option.Value)

				g.Tag("span", markup.A("class", spanClass), func(g *markup.Builder) {
					g.Tag("input", attrs)
					if cfg.showValue {
						g.Text(" " + option.Label)
					}
				})
			}
		})
		if hasError {
			f.errorSpan(message)
		}
	})
	return nil
}

func (f *Form) selectField(name, label string, cfg fieldConfig) error {
	id, err := f.fieldID(name, cfg)
	if err != nil {
		return fmt.Errorf("%w: select field", err)
	}

	values, selected := f.resolveOptions(name, cfg, valueToLabel)
	size := cfg.size
	if size <= 0 {
		size = max(len(values), 1)
	}
	controlName := name
	if cfg.multiple {
		controlName = name + "[]"
	}

	attrs := cfg.attrs.Clone()
	attrs.Set("id", id)
	attrs.Set("size", strconv.Itoa(size))
	attrs.Set("name", controlName)
	if cfg.multiple {
		attrs.Set("multiple", "multiple")
	}
	if f.cfg.classes.Input != "" {
		attrs.SetDefault("class", f.cfg.classes.Input)
	}
	message, hasError := f.takeError(name)

	f.wrapper.paragraph(func(*markup.Builder) {
		f.label(label, attrs)
		f.wrapper.input(func(g *markup.Builder) {
			g.Select(attrs, func(g *markup.Builder) {
				for _, option := range values {
					optionAttrs := markup.A("value", option.Value)
					if _, ok := selected[option.Value]; ok {
						optionAttrs.Set("selected", "selected")
					}
					g.Tag("option", option.Label, optionAttrs)
				}
			})
		})
		if hasError {
			f.errorSpan(message)
		}
	})
	return nil
}

// resolveOptions picks the option list and the checked set. With explicit
// values the checked set comes from the explicit option or the data object;
// without them the data object supplies the values and nothing is checked
// unless requested explicitly.
func (f *Form) resolveOptions(name string, cfg fieldConfig, order mapOrder) (Choices, map[string]struct{}) {
	var values, checked any
	if cfg.hasValues {
		values = cfg.values
		if cfg.hasChecked {
			checked = cfg.checked
		} else {
			checked, _ = lookupValue(f.data, name)
		}
	} else {
		values, _ = lookupValue(f.data, name)
		if cfg.hasChecked {
			checked = cfg.checked
		}
	}
	return toChoices(values, order), selectionSet(checked)
}

func (f *Form) fieldID(name string, cfg fieldConfig) (string, error) {
	if name == "" {
		return "", ErrMissingName
	}
	if cfg.id != "" {
		return cfg.id, nil
	}
	return f.idFor(name)
}

// fieldValue resolves the value of a control: explicit Value first, then
// the data object.
func (f *Form) fieldValue(name string, cfg fieldConfig) (string, bool) {
	if cfg.hasValue {
		return stringify(cfg.value), true
	}
	value, ok := lookupValue(f.data, name)
	if !ok || !present(value) {
		return "", false
	}
	return stringify(value), true
}

func (f *Form) label(text string, attrs markup.Attrs) {
	if text == "" {
		return
	}
	labelAttrs := markup.Attrs{}
	if id, ok := attrs.Get("id"); ok {
		labelAttrs.Set("for", id)
	}
	if f.cfg.classes.Label != "" {
		labelAttrs.Set("class", f.cfg.classes.Label)
	}
	f.wrapper.label(func(g *markup.Builder) {
		g.Tag("label", text, labelAttrs)
	})
}

func (f *Form) errorSpan(message string) {
	f.wrapper.label(func(g *markup.Builder) {
		g.Tag("span", markup.A("class", f.cfg.classes.Error), func(g *markup.Builder) {
			g.Append("&nbsp;")
			g.Text(message)
		})
	})
}

func (f *Form) spanned(class string, fn func(*markup.Builder)) {
	if class == "" {
		fn(f.g)
		return
	}
	f.g.Tag("span", markup.A("class", class), fn)
}
