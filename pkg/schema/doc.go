// Package schema describes database tables for code generation. A Catalog
// resolves a table name to its ordered columns; catalogs come from YAML
// documents (ParseYAML), OpenAPI components (package schema/openapi) or a
// live SQLite database (package schema/sqlite). InferType classifies each
// declared SQL type into a LogicalType the scaffold generator understands.
package schema
