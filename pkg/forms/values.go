package forms

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/inflect"
)

// ValueSource lets a data object answer field lookups itself instead of
// going through reflection.
type ValueSource interface {
	FormValue(name string) (any, bool)
}

// lookupValue resolves name against data. It tries, in order: ValueSource,
// a zero-argument method named after the camelised field, a string-keyed map
// entry, then an exported struct field matched by `form` tag or name.
func lookupValue(data any, name string) (any, bool) {
	if !present(data) || name == "" {
		return nil, false
	}
	if src, ok := data.(ValueSource); ok {
		return src.FormValue(name)
	}

	rv := reflect.ValueOf(data)
	camel := inflect.Camelize(name)
	if value, ok := callAccessor(rv, camel); ok {
		return value, true
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entry := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		return structField(rv, name, camel)
	default:
		return nil, false
	}
}

func callAccessor(rv reflect.Value, method string) (any, bool) {
	if !rv.IsValid() || method == "" {
		return nil, false
	}
	fn := rv.MethodByName(method)
	if !fn.IsValid() {
		return nil, false
	}
	typ := fn.Type()
	if typ.NumIn() != 0 {
		return nil, false
	}
	switch typ.NumOut() {
	case 1:
		return fn.Call(nil)[0].Interface(), true
	case 2:
		if typ.Out(1).Kind() != reflect.Bool {
			return nil, false
		}
		out := fn.Call(nil)
		return out[0].Interface(), out[1].Bool()
	default:
		return nil, false
	}
}

func structField(rv reflect.Value, name, camel string) (any, bool) {
	var fallback reflect.Value
	for _, field := range reflect.VisibleFields(rv.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		if tag, ok := field.Tag.Lookup("form"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName == name {
				value, err := rv.FieldByIndexErr(field.Index)
				if err != nil {
					return nil, false
				}
				return value.Interface(), true
			}
			if tagName != "" {
				continue
			}
		}
		if !fallback.IsValid() && strings.EqualFold(field.Name, camel) {
			value, err := rv.FieldByIndexErr(field.Index)
			if err == nil {
				fallback = value
			}
		}
	}
	if fallback.IsValid() {
		return fallback.Interface(), true
	}
	return nil, false
}

// present reports whether v carries a value worth rendering. Nil pointers,
// maps, slices and interfaces count as absent.
func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// stringify renders a field value for an attribute or text node.
func stringify(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	case bool:
		return strconv.FormatBool(typed)
	case time.Time:
		if typed.IsZero() {
			return ""
		}
		return typed.Format(time.RFC3339)
	case *time.Time:
		if typed == nil {
			return ""
		}
		return stringify(*typed)
	case fmt.Stringer:
		return typed.String()
	case error:
		return typed.Error()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return stringify(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
