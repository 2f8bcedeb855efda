package crud

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Row is one table row keyed by column name.
type Row map[string]any

// timeLayouts are tried, in order, when a time column arrives as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// String renders the column value as display text; nil renders as "".
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("2006-01-02 15:04:05")
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprint(v)
	}
}

// Bool reports whether the column holds a truthy value: true, a non-zero
// number, or one of "1", "t", "true", "on", "yes".
func (r Row) Bool(column string) bool {
	switch v := r[column].(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	switch strings.ToLower(strings.TrimSpace(r.String(column))) {
	case "1", "t", "true", "on", "yes":
		return true
	}
	return false
}

// Format renders a time column with layout. Missing values and text that is
// not a recognised timestamp render as "".
func (r Row) Format(column, layout string) string {
	switch v := r[column].(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case nil:
		return ""
	}
	raw := r.String(column)
	for _, candidate := range timeLayouts {
		if t, err := time.Parse(candidate, raw); err == nil {
			return t.Format(layout)
		}
	}
	return ""
}

// Int parses the column as an integer, returning 0 when it is not one.
func (r Row) Int(column string) int64 {
	if v, ok := r[column].(int64); ok {
		return v
	}
	n, _ := strconv.ParseInt(r.String(column), 10, 64)
	return n
}

// SetFields copies the submitted values of columns into row. Columns absent
// from form are skipped. When a column was submitted more than once, as a
// hidden input followed by a checkbox, the last value wins.
func SetFields(row Row, form url.Values, columns []string) {
	for _, column := range columns {
		values, ok := form[column]
		if !ok || len(values) == 0 {
			continue
		}
		row[column] = values[len(values)-1]
	}
}

// Contains reports whether columns lists column.
func Contains(columns []string, column string) bool {
	return slices.Contains(columns, column)
}
