package formkit

import (
	"context"

	"github.com/goliatone/go-formkit/internal/loader"
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/schema/openapi"
)

// NewSchemaLoader constructs a catalog document loader while keeping the
// concrete type hidden from consumers.
func NewSchemaLoader(options ...schema.LoaderOption) schema.Loader {
	return loader.New(schema.NewLoaderOptions(options...))
}

// NewSchemaRegistry returns a registry detecting OpenAPI documents first and
// native YAML catalogs second.
func NewSchemaRegistry() *schema.Registry {
	registry := schema.NewRegistry()
	registry.MustRegister(openapi.New())
	registry.MustRegister(schema.NewYAMLAdapter())
	return registry
}

// LoadCatalog loads src and converts it with the default registry.
func LoadCatalog(ctx context.Context, src schema.Source, options ...schema.LoaderOption) (schema.Tables, error) {
	doc, err := NewSchemaLoader(options...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return NewSchemaRegistry().Tables(ctx, doc)
}
