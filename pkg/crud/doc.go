// Package crud is the runtime support library for controllers emitted by
// pkg/scaffold: a row type, a table store over database/sql and small HTTP
// helpers. Generated controllers carry no access control and are meant for
// development databases.
package crud
