package forms

import (
	"errors"
	"maps"
	"reflect"
	"strings"

	"github.com/goliatone/go-formkit/pkg/flash"
)

var (
	// ErrUnsupportedControl is returned for control kinds the form cannot render.
	ErrUnsupportedControl = errors.New("forms: unsupported control")
	// ErrMissingName is returned when a control that needs a field name gets none.
	ErrMissingName = errors.New("forms: field name is required")
)

// ErrorMap maps field names to a single message.
type ErrorMap map[string]string

// ErrorMapFrom converts an arbitrary map into an ErrorMap. Keys of any kind
// are stringified; list values contribute their first element; error and
// fmt.Stringer values their text. Entries that resolve to an empty message
// are dropped. Non-map inputs yield nil.
func ErrorMapFrom(src any) ErrorMap {
	switch typed := src.(type) {
	case nil:
		return nil
	case ErrorMap:
		return maps.Clone(typed)
	case map[string]string:
		return ErrorMap(maps.Clone(typed))
	}

	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map {
		return nil
	}

	out := make(ErrorMap, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		message, ok := firstMessage(iter.Value())
		if !ok {
			continue
		}
		out[stringify(iter.Key().Interface())] = message
	}
	return out
}

func firstMessage(rv reflect.Value) (string, bool) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		if err, ok := rv.Interface().(error); ok {
			return nonEmpty(err.Error())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", false
		}
		return firstMessage(rv.Index(0))
	default:
		return nonEmpty(stringify(rv.Interface()))
	}
}

func nonEmpty(message string) (string, bool) {
	message = strings.TrimSpace(message)
	return message, message != ""
}

// Errors accumulates field errors for one request. With a flash store the
// errors are kept under flash.FormErrorsKey so they survive a redirect;
// without one they live in a local map owned by the accumulator, which also
// holds the errors imported from a model.
type Errors struct {
	store flash.Store
	local ErrorMap
}

// NewErrors returns an accumulator backed by store, or by a local map when
// store is nil.
func NewErrors(store flash.Store) *Errors {
	return &Errors{store: store, local: make(ErrorMap)}
}

// Register records message for field, replacing any earlier message.
func (e *Errors) Register(field, message string) {
	if e.store != nil {
		current := e.store.Get(flash.FormErrorsKey)
		if current == nil {
			current = make(map[string]string)
		}
		current[field] = message
		e.store.Set(flash.FormErrorsKey, current)
		return
	}
	e.local[field] = message
}

// All returns a copy of every registered error. Errors imported from a
// model override flashed errors for the same field.
func (e *Errors) All() ErrorMap {
	if e.store == nil {
		return maps.Clone(e.local)
	}
	flashed := e.store.Get(flash.FormErrorsKey)
	if len(flashed) == 0 && len(e.local) == 0 {
		return nil
	}
	out := make(ErrorMap, len(flashed)+len(e.local))
	maps.Copy(out, flashed)
	maps.Copy(out, e.local)
	return out
}

// Clear drops every registered error.
func (e *Errors) Clear() {
	if e.store != nil {
		e.store.Set(flash.FormErrorsKey, nil)
	}
	clear(e.local)
}

// ImportFromModel adds the errors exposed by obj through an Errors method
// or field. A "%s" in a message is replaced with the field name. Imported
// errors stay local to the accumulator and are never written to the flash
// store. Objects without such an accessor, or whose accessor is not a map,
// are ignored.
func (e *Errors) ImportFromModel(obj any) {
	raw, ok := modelErrors(obj)
	if !ok {
		return
	}
	for field, message := range ErrorMapFrom(raw) {
		e.local[field] = strings.ReplaceAll(message, "%s", field)
	}
}

func modelErrors(obj any) (any, bool) {
	if !present(obj) {
		return nil, false
	}
	if value, ok := callAccessor(reflect.ValueOf(obj), "Errors"); ok {
		return value, present(value)
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	field := rv.FieldByName("Errors")
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}
	value := field.Interface()
	return value, present(value)
}

// FormFor imports the errors of data into errs and builds a form for data.
// A nil errs uses a throwaway local accumulator.
func FormFor(errs *Errors, data any, fn func(*Form), opts ...Option) (*Form, error) {
	if errs == nil {
		errs = NewErrors(nil)
	}
	errs.ImportFromModel(data)

	form := New(data, opts...)
	return form, form.Build(errs.All(), fn)
}
