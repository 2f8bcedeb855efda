package forms

import (
	theme "github.com/goliatone/go-theme"
)

// Theme token keys read by ClassesFromTheme.
const (
	TokenFieldClass    = "forms.field-class"
	TokenLabelClass    = "forms.label-class"
	TokenInputClass    = "forms.input-class"
	TokenErrorClass    = "forms.error-class"
	TokenCheckboxClass = "forms.checkbox-class"
	TokenRadioClass    = "forms.radio-class"
)

// Classes holds the CSS classes a form stamps on the markup it emits. Empty
// Field, Label and Input classes emit no class attribute.
type Classes struct {
	Field    string
	Label    string
	Input    string
	Error    string
	Checkbox string
	Radio    string
}

// DefaultClasses returns the classes used when no theme is configured.
func DefaultClasses() Classes {
	return Classes{
		Error:    "error",
		Checkbox: "checkbox_wrap",
		Radio:    "radio_wrap",
	}
}

// merge overlays the non-empty fields of other onto c.
func (c Classes) merge(other Classes) Classes {
	pick := func(base, override string) string {
		if override != "" {
			return override
		}
		return base
	}
	return Classes{
		Field:    pick(c.Field, other.Field),
		Label:    pick(c.Label, other.Label),
		Input:    pick(c.Input, other.Input),
		Error:    pick(c.Error, other.Error),
		Checkbox: pick(c.Checkbox, other.Checkbox),
		Radio:    pick(c.Radio, other.Radio),
	}
}

// ClassesFromTheme resolves form classes from a go-theme selection. Manifest
// tokens apply first, then the tokens of the selected variant. Missing
// tokens keep their DefaultClasses value.
func ClassesFromTheme(selection *theme.Selection) Classes {
	classes := DefaultClasses()
	if selection == nil || selection.Manifest == nil {
		return classes
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	return classes.merge(Classes{
		Field:    tokens[TokenFieldClass],
		Label:    tokens[TokenLabelClass],
		Input:    tokens[TokenInputClass],
		Error:    tokens[TokenErrorClass],
		Checkbox: tokens[TokenCheckboxClass],
		Radio:    tokens[TokenRadioClass],
	})
}
