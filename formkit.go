package formkit

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/flash"
	"github.com/goliatone/go-formkit/pkg/forms"
	"github.com/goliatone/go-formkit/pkg/scaffold"
	"github.com/goliatone/go-formkit/pkg/schema"
)

// Form aliases forms.Form so callers of the root package can name it.
type Form = forms.Form

// FormOption aliases forms.Option.
type FormOption = forms.Option

// Errors returns an error accumulator for the request behind ctx. When
// flash.Middleware (or flash.WithStore) attached a store, errors survive a
// redirect; otherwise they are local to the returned value.
func Errors(ctx context.Context) *forms.Errors {
	store, _ := flash.FromContext(ctx)
	return forms.NewErrors(store)
}

// RegisterError stores message for field in the request's flash store. It
// reports false when ctx carries no store.
func RegisterError(ctx context.Context, field, message string) bool {
	store, ok := flash.FromContext(ctx)
	if !ok {
		return false
	}
	forms.NewErrors(store).Register(field, message)
	return true
}

// FormFor builds a form for data, showing the errors registered on the
// request and those exposed by data itself.
func FormFor(ctx context.Context, data any, fn func(*forms.Form), opts ...forms.Option) (*forms.Form, error) {
	return forms.FormFor(Errors(ctx), data, fn, opts...)
}

// BuildController generates controller source for req from catalog.
func BuildController(ctx context.Context, catalog schema.Catalog, req scaffold.Request, opts ...scaffold.Option) (string, error) {
	return scaffold.New(catalog, opts...).BuildController(ctx, req)
}
