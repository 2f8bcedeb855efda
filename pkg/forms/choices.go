package forms

import (
	"fmt"
	"reflect"
	"sort"
)

// Choice is one option of a checkbox/radio group or select.
type Choice struct {
	Label string
	Value string
}

// Choices is an ordered option list. Use it when the display order matters;
// plain maps are rendered sorted by key.
type Choices []Choice

// C builds Choices from alternating label/value strings.
func C(pairs ...string) Choices {
	out := make(Choices, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		choice := Choice{Label: pairs[i], Value: pairs[i]}
		if i+1 < len(pairs) {
			choice.Value = pairs[i+1]
		}
		out = append(out, choice)
	}
	return out
}

// mapOrder says how a map source is read: choice groups map label→value,
// selects map value→label.
type mapOrder int

const (
	labelToValue mapOrder = iota
	valueToLabel
)

// toChoices normalises a values source. Sequences produce choices whose
// label equals the value; maps are read according to order; any other
// non-nil value becomes a single choice.
func toChoices(src any, order mapOrder) Choices {
	switch typed := src.(type) {
	case nil:
		return nil
	case Choices:
		return typed
	case []Choice:
		return Choices(typed)
	case []string:
		out := make(Choices, 0, len(typed))
		for _, value := range typed {
			out = append(out, Choice{Label: value, Value: value})
		}
		return out
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return toChoices(rv.Elem().Interface(), order)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make(Choices, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			value := stringify(rv.Index(i).Interface())
			out = append(out, Choice{Label: value, Value: value})
		}
		return out
	case reflect.Map:
		entries := mapEntries(rv)
		out := make(Choices, 0, len(entries))
		for _, entry := range entries {
			if order == labelToValue {
				out = append(out, Choice{Label: entry.key, Value: entry.value})
			} else {
				out = append(out, Choice{Label: entry.value, Value: entry.key})
			}
		}
		return out
	default:
		value := stringify(src)
		return Choices{{Label: value, Value: value}}
	}
}

type mapEntry struct {
	key   string
	value string
}

func mapEntries(rv reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{
			key:   fmt.Sprint(iter.Key().Interface()),
			value: stringify(iter.Value().Interface()),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}

// selectionSet turns a checked/selected source into a membership set.
// Sequences contribute each element, maps their keys, scalars themselves.
func selectionSet(src any) map[string]struct{} {
	set := make(map[string]struct{})
	if !present(src) {
		return set
	}
	switch typed := src.(type) {
	case string:
		set[typed] = struct{}{}
		return set
	case []string:
		for _, value := range typed {
			set[value] = struct{}{}
		}
		return set
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return selectionSet(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			set[stringify(rv.Index(i).Interface())] = struct{}{}
		}
	case reflect.Map:
		for _, entry := range mapEntries(rv) {
			set[entry.key] = struct{}{}
		}
	default:
		set[stringify(src)] = struct{}{}
	}
	return set
}
