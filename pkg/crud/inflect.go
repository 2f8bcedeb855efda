package crud

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Humanize turns a column name into a sentence-case label:
// "created_at" gives "Created at".
func Humanize(column string) string {
	words := strings.TrimSpace(strings.ReplaceAll(column, "_", " "))
	if words == "" {
		return ""
	}
	return inflect.Capitalize(words)
}

// Titleize capitalises every word of a column name:
// "created_at" gives "Created At".
func Titleize(column string) string {
	words := strings.Fields(strings.ReplaceAll(column, "_", " "))
	for i, word := range words {
		words[i] = inflect.Capitalize(word)
	}
	return strings.Join(words, " ")
}
