package crud

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-formkit/pkg/markup"
)

// Write sends the builder's markup as an HTML response.
func Write(w http.ResponseWriter, g *markup.Builder) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = g.WriteTo(w)
}

// Fail maps err to a plain-text error response: 404 for ErrNotFound, 500
// otherwise.
func Fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	http.Error(w, http.StatusText(status)+": "+err.Error(), status)
}
