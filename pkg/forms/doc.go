// Package forms maps a data object and a field error map onto labelled HTML
// form controls rendered through pkg/markup.
//
//	form, err := forms.FormFor(errs, user, func(f *forms.Form) {
//		f.Text("Username", "username")
//		f.Password("Password", "password")
//		f.Checkbox("Roles", "roles", forms.Values([]string{"admin", "editor"}))
//		f.Submit("Save")
//	}, forms.WithMethod("post"), forms.WithArrangement("table"))
//
// Values come from an explicit Value option first, then from the data object
// (a ValueSource, a camelised method or field, or a string-keyed map entry).
// Each pending error is displayed by the first field that renders it and is
// then dropped; PendingErrors returns what remains.
package forms
