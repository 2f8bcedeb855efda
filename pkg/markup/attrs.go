package markup

import (
	"fmt"
	"sort"
	"strings"
)

// Attr is a single attribute key/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Keys keep the position of their first
// insertion, so rendering is deterministic and follows the order callers
// declared them in.
type Attrs []Attr

// A builds an Attrs list from alternating key/value strings. A trailing key
// without a value receives an empty value.
func A(pairs ...string) Attrs {
	out := make(Attrs, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		out.Set(pairs[i], value)
	}
	return out
}

// Get returns the value stored under key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set replaces the value of key in place or appends it.
func (a *Attrs) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// SetDefault stores value only when key is absent.
func (a *Attrs) SetDefault(key, value string) {
	if !a.Has(key) {
		a.Set(key, value)
	}
}

// Del removes key, preserving the order of the remaining attributes.
func (a *Attrs) Del(key string) {
	out := (*a)[:0]
	for _, attr := range *a {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	*a = out
}

// Clone returns a copy that can be mutated without touching the receiver.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	return append(Attrs(nil), a...)
}

// Merge returns a copy of a with every entry of other set on top of it.
func (a Attrs) Merge(other Attrs) Attrs {
	out := a.Clone()
	for _, attr := range other {
		out.Set(attr.Key, attr.Value)
	}
	return out
}

func (a Attrs) render() string {
	if len(a) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, attr := range a {
		if attr.Key == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr.Key)
		builder.WriteString(`="`)
		builder.WriteString(Escape(attr.Value))
		builder.WriteByte('"')
	}
	return builder.String()
}

// toAttrs reports whether v is one of the accepted attribute-map shapes.
// Plain maps are rendered in key order since Go maps carry no ordering.
func toAttrs(v any) (Attrs, bool) {
	switch typed := v.(type) {
	case Attrs:
		return typed, true
	case []Attr:
		return Attrs(typed), true
	case map[string]string:
		keys := sortedKeys(typed)
		out := make(Attrs, 0, len(keys))
		for _, key := range keys {
			out = append(out, Attr{Key: key, Value: typed[key]})
		}
		return out, true
	case map[string]any:
		keys := sortedKeys(typed)
		out := make(Attrs, 0, len(keys))
		for _, key := range keys {
			out = append(out, Attr{Key: key, Value: textOf(typed[key])})
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func textOf(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
